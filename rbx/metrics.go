package rbx

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "rbxcloud",
			Name:      "requests_total",
			Help:      "Open Cloud requests that received a response, by family and status.",
		},
		[]string{"family", "status"},
	)

	requestFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "rbxcloud",
			Name:      "request_failures_total",
			Help:      "Open Cloud requests that failed before a response was read.",
		},
		[]string{"family"},
	)
)
