package tracker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultSuccess     = "success"
	resultUnavailable = "unavailable"
	resultBadStatus   = "bad_status"
	resultBadResponse = "bad_response"
	resultNoSecret    = "missing_secret"
)

var requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "busskill_tracker_requests_total",
	Help: "Outcome of getBusTimes calls to the tracking service",
}, []string{"result"})
