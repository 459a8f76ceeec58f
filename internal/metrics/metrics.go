// Package metrics holds the service's prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RecommendationRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "trusttravel_recommendation_requests_total",
		Help: "Recommendation requests by outcome (ok, invalid, error).",
	}, []string{"outcome"})

	RecommendationResults = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "trusttravel_recommendation_results",
		Help:    "Number of places returned per recommendation request.",
		Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
	})

	ReviewsSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "trusttravel_reviews_submitted_total",
		Help: "Reviews accepted by the API.",
	})

	ChatTurns = promauto.NewCounter(prometheus.CounterOpts{
		Name: "trusttravel_chat_turns_total",
		Help: "Scripted chat turns handled.",
	})
)
