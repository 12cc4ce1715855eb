package notification

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EventsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parcel_events_published_total",
			Help: "Total number of domain events published to Kafka",
		},
		[]string{"topic", "type", "outcome"},
	)

	EventPublishDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "parcel_event_publish_duration_seconds",
			Help:    "Duration of Kafka publish calls",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"topic", "type"},
	)
)
