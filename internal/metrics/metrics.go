package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MessagesRouted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agrobot_messages_routed_total",
			Help: "Total messages handled, by resolved intent",
		},
		[]string{"intent"},
	)

	UpstreamFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agrobot_upstream_failures_total",
			Help: "Failed calls to external dependencies",
		},
		[]string{"dependency"},
	)

	HandleDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "agrobot_handle_duration_seconds",
			Help: "End-to-end message handling duration",
		},
		[]string{"intent"},
	)
)
