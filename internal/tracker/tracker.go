package tracker

//go:generate mockgen -destination=mock/tracker.go -package=mock . Tracker

import (
	"bitbucket.org/sotavant/mr-bus-skill/internal/logger"
	"bitbucket.org/sotavant/mr-bus-skill/internal/models"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"strconv"
	"time"
)

const DefaultURL = "http://ws.mybustracker.co.uk/"

type Tracker interface {
	BusTimes(ctx context.Context, stopIDs []string) ([]models.BusTimes, error)
}

type Config struct {
	URL     string
	Bucket  Bucket
	Timeout time.Duration
	// Secret is asked for on every call.
	Secret func() (string, error)
	Now    func() time.Time
}

type Client struct {
	http   *resty.Client
	url    string
	bucket Bucket
	secret func() (string, error)
	now    func() time.Time
}

func NewClient(cfg Config) *Client {
	c := &Client{
		http:   resty.New().SetLogger(logger.Log.Sugar()),
		url:    cfg.URL,
		bucket: cfg.Bucket,
		secret: cfg.Secret,
		now:    cfg.Now,
	}

	if c.url == "" {
		c.url = DefaultURL
	}
	if c.bucket == "" {
		c.bucket = BucketMinute
	}
	if c.secret == nil {
		c.secret = SecretFromEnv("API_KEY")
	}
	if c.now == nil {
		c.now = time.Now
	}
	if cfg.Timeout > 0 {
		c.http.SetTimeout(cfg.Timeout)
	}

	return c
}

func (c *Client) BusTimes(ctx context.Context, stopIDs []string) ([]models.BusTimes, error) {
	secret, err := c.secret()
	if err != nil {
		requestsTotal.WithLabelValues(resultNoSecret).Inc()
		return nil, err
	}

	bucket := TimeBucket(c.now(), c.bucket)
	key := Key(secret, bucket)

	logger.Log.Debug("requesting bus times",
		zap.String("time", bucket),
		zap.String("key", key),
		zap.Strings("stops", stopIDs),
	)

	req := c.http.R().
		SetContext(ctx).
		SetQueryParam("module", "json").
		SetQueryParam("function", "getBusTimes").
		SetQueryParam("key", key)
	for i, id := range stopIDs {
		req.SetQueryParam("stopId"+strconv.Itoa(i+1), id)
	}

	resp, err := req.Get(c.url)
	if err != nil {
		requestsTotal.WithLabelValues(resultUnavailable).Inc()
		return nil, &FetchError{Sentinel: ErrUnavailable, Op: "getBusTimes", Err: err}
	}

	if !resp.IsSuccess() {
		requestsTotal.WithLabelValues(resultBadStatus).Inc()
		return nil, &FetchError{Sentinel: ErrBadStatus, Op: "getBusTimes", Status: resp.StatusCode()}
	}

	logger.Log.Debug("got bus times response", zap.Int("size", len(resp.Body())))

	var result models.BusTimesResult
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		requestsTotal.WithLabelValues(resultBadResponse).Inc()
		return nil, &FetchError{Sentinel: ErrBadResponse, Op: "getBusTimes", Status: resp.StatusCode(), Err: err}
	}

	if result.FaultCode != "" {
		requestsTotal.WithLabelValues(resultBadResponse).Inc()
		return nil, &FetchError{
			Sentinel: ErrBadResponse,
			Op:       "getBusTimes",
			Status:   resp.StatusCode(),
			Err:      fmt.Errorf("fault %s: %s", result.FaultCode, result.FaultString),
		}
	}

	if result.BusTimes == nil {
		requestsTotal.WithLabelValues(resultBadResponse).Inc()
		return nil, &FetchError{
			Sentinel: ErrBadResponse,
			Op:       "getBusTimes",
			Status:   resp.StatusCode(),
			Err:      errors.New("no busTimes in body"),
		}
	}

	requestsTotal.WithLabelValues(resultSuccess).Inc()
	return *result.BusTimes, nil
}
