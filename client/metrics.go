package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	plansRequestedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "tripplanner_client",
			Name:      "plans_requested_total",
			Help:      "Planning submissions that passed local validation.",
		},
	)

	plansFallbackTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "tripplanner_client",
			Name:      "plans_fallback_total",
			Help:      "Itineraries synthesized locally because the planner was unreachable.",
		},
	)
)
