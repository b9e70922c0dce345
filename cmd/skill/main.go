package main

import (
	"bitbucket.org/sotavant/mr-bus-skill/internal/logger"
	"bitbucket.org/sotavant/mr-bus-skill/internal/routes"
	"bitbucket.org/sotavant/mr-bus-skill/internal/skill"
	"bitbucket.org/sotavant/mr-bus-skill/internal/tracker"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"net/http"
	"time"
)

func main() {
	if err := parseFlags(); err != nil {
		panic(err)
	}
	if err := run(); err != nil {
		panic(err)
	}
}

func run() error {
	if err := logger.Initialize(flagLogLevel); err != nil {
		return err
	}

	bucket, err := tracker.ParseBucket(flagKeyBucket)
	if err != nil {
		return err
	}

	allow, err := routes.Default()
	if err != nil {
		return err
	}

	client := tracker.NewClient(tracker.Config{
		URL:     flagTrackerURL,
		Bucket:  bucket,
		Timeout: flagTrackerTimeout,
		Secret:  tracker.SecretFromEnv("API_KEY"),
	})

	appInstance := newApp(skill.New(client, allow))

	logger.Log.Info("Running server",
		zap.String("address", flagRunAddr),
		zap.String("tracker", flagTrackerURL),
		zap.Strings("stops", allow.StopIDs()),
	)

	return http.ListenAndServe(flagRunAddr, newRouter(appInstance, flagRateLimit))
}

func newRouter(a *app, rateLimit int) http.Handler {
	r := chi.NewRouter()

	webhook := http.Handler(logger.RequestLogger(gzipMiddleware(a.webhook)))
	if rateLimit > 0 {
		webhook = httprate.Limit(rateLimit, time.Minute)(webhook)
	}

	r.Handle("/", webhook)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("ok"))
	})

	return r
}
