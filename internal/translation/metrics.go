package translation

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	providerRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "glossarygateway_provider_requests_total",
			Help: "Total number of requests sent to the translation provider",
		},
		[]string{"operation", "status"},
	)

	providerRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "glossarygateway_provider_request_duration_seconds",
			Help:    "Duration of translation provider requests in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1.0, 2.0, 5.0, 10.0, 30.0},
		},
		[]string{"operation"},
	)

	translateOutcomesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "glossarygateway_translate_outcomes_total",
			Help: "Total number of translate calls by outcome",
		},
		[]string{"outcome"},
	)

	translateTextsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "glossarygateway_translate_texts_total",
			Help: "Total number of text fields sent for translation",
		},
	)
)

// recordProviderRequest records one provider round trip. statusCode 0 means no response was received.
func recordProviderRequest(operation string, statusCode int, duration time.Duration) {
	status := "error"
	if statusCode > 0 {
		status = strconv.Itoa(statusCode)
	}
	providerRequestsTotal.WithLabelValues(operation, status).Inc()
	providerRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

func recordTranslateOutcome(outcome Outcome, texts int) {
	translateOutcomesTotal.WithLabelValues(outcome.String()).Inc()
	translateTextsTotal.Add(float64(texts))
}
