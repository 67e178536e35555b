package off

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "off_client",
			Name:      "requests_total",
			Help:      "API requests issued, by endpoint.",
		},
		[]string{"endpoint"},
	)

	requestErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "off_client",
			Name:      "request_errors_total",
			Help:      "API requests that failed before a response arrived.",
		},
		[]string{"endpoint"},
	)
)

// observe counts one request and, when err is non-nil, one failure.
// Non-2xx responses are not failures; only URL and transport errors are.
func observe(endpoint string, err error) {
	requestsTotal.WithLabelValues(endpoint).Inc()
	if err != nil {
		requestErrorsTotal.WithLabelValues(endpoint).Inc()
	}
}
