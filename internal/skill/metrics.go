package skill

import (
	"bitbucket.org/sotavant/mr-bus-skill/internal/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var invocationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "busskill_invocations_total",
	Help: "Handled skill events, by request type and result (ok|error)",
}, []string{"request_type", "result"})

func observeInvocation(requestType string, err error) {
	switch requestType {
	case models.TypeLaunchRequest, models.TypeIntentRequest, models.TypeSessionEndedRequest:
	default:
		requestType = "other"
	}

	result := "ok"
	if err != nil {
		result = "error"
	}
	invocationsTotal.WithLabelValues(requestType, result).Inc()
}
