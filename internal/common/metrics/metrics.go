package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weatherwear_recommendations_total",
			Help: "Total number of recommendation requests by outcome",
		},
		[]string{"outcome"},
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "weatherwear_recommendation_duration_seconds",
			Help: "Duration of recommendation processing in seconds",
		},
	)

	UpstreamCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weatherwear_upstream_calls_total",
			Help: "Total number of upstream provider calls by provider and outcome",
		},
		[]string{"provider", "outcome"},
	)

	ComposerStage = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weatherwear_composer_stage_total",
			Help: "Recommendation composer outcomes by stage (primary, retry, fallback)",
		},
		[]string{"stage"},
	)
)
