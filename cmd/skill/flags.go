package main

import (
	"bitbucket.org/sotavant/mr-bus-skill/internal/tracker"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"
)

var flagRunAddr string
var flagLogLevel string
var flagTrackerURL string
var flagKeyBucket string
var flagTrackerTimeout time.Duration
var flagRateLimit int

func parseFlags() error {
	flag.StringVar(&flagRunAddr, "a", ":8080", "address and port")
	flag.StringVar(&flagLogLevel, "l", "debug", "log level")
	flag.StringVar(&flagTrackerURL, "u", tracker.DefaultURL, "bus tracker base URL")
	flag.StringVar(&flagKeyBucket, "b", string(tracker.BucketMinute), "tracker key time bucket (minute|hour)")
	flag.DurationVar(&flagTrackerTimeout, "t", 0, "tracker request timeout, 0 for none")
	flag.IntVar(&flagRateLimit, "r", 0, "max webhook requests per minute, 0 for no limit")
	flag.Parse()

	return parseEnv()
}

func parseEnv() error {
	if envRunAddr := os.Getenv("RUN_ADDR"); envRunAddr != "" {
		flagRunAddr = envRunAddr
	}

	if envLogLevel := os.Getenv("LOG_LEVEL"); envLogLevel != "" {
		flagLogLevel = envLogLevel
	}

	if envTrackerURL := os.Getenv("TRACKER_URL"); envTrackerURL != "" {
		flagTrackerURL = envTrackerURL
	}

	if envKeyBucket := os.Getenv("KEY_BUCKET"); envKeyBucket != "" {
		flagKeyBucket = envKeyBucket
	}

	if envTimeout := os.Getenv("TRACKER_TIMEOUT"); envTimeout != "" {
		d, err := time.ParseDuration(envTimeout)
		if err != nil {
			return fmt.Errorf("TRACKER_TIMEOUT: %w", err)
		}
		flagTrackerTimeout = d
	}

	if envRateLimit := os.Getenv("RATE_LIMIT"); envRateLimit != "" {
		n, err := strconv.Atoi(envRateLimit)
		if err != nil {
			return fmt.Errorf("RATE_LIMIT: %w", err)
		}
		flagRateLimit = n
	}

	return nil
}
