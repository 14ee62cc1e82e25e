package producer

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	outboxPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "outbox_events_published_total",
		Help: "Outbox events delivered to Kafka.",
	}, []string{"event_type"})

	outboxFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "outbox_events_failed_total",
		Help: "Outbox events whose delivery attempt failed.",
	}, []string{"event_type"})

	outboxBatchSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "outbox_batch_size",
		Help:    "Pending events picked up per poll.",
		Buckets: []float64{0, 1, 5, 10, 25, 50},
	})
)
