package recommender

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	SuggestionRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "suggestion_requests_total",
			Help: "Count of basket suggestion requests by outcome (matched / no_match).",
		},
		[]string{"outcome"},
	)

	SuggestionResultCount = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "suggestion_result_count",
			Help:    "Number of suggestions returned per request.",
			Buckets: []float64{0, 1, 2, 3},
		},
	)
)

func init() {
	prometheus.MustRegister(SuggestionRequestsTotal, SuggestionResultCount)
}
