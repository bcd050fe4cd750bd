package shortio

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeSuccess        = "success"
	outcomeTransportError = "transport_error"
	outcomeAPIError       = "api_error"
	outcomeDecodeError    = "decode_error"
)

var (
	// RequestTotal число запросов к API по исходу
	RequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shortyio_api_requests_total",
			Help: "Total number of short.io API requests",
		},
		[]string{"outcome"},
	)

	// RequestDuration длительность запросов к API
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "shortyio_api_request_duration_seconds",
			Help:    "short.io API request duration in seconds",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"outcome"},
	)
)
