package gateway

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tripplanner_client",
			Name:      "requests_total",
			Help:      "HTTP requests issued through the gateway, by method and status class.",
		},
		[]string{"method", "status_class"},
	)

	unauthorizedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "tripplanner_client",
			Name:      "unauthorized_teardowns_total",
			Help:      "Responses that forced a global session teardown.",
		},
	)
)
