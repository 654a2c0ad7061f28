package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skadix_http_requests_total",
		Help: "HTTP requests served, by method and path.",
	}, []string{"method", "path"})

	scoresComputed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "skadix_scores_computed_total",
		Help: "Scenario score comparisons computed.",
	})

	scenariosSaved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "skadix_scenarios_saved_total",
		Help: "Scenarios persisted to the store.",
	})
)
