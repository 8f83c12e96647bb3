package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	noteSavesEnqueuedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "frly_client",
			Name:      "note_saves_enqueued_total",
			Help:      "Note saves accepted into the shard executor.",
		},
		[]string{"shard"},
	)

	noteSavesFailedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "frly_client",
			Name:      "note_save_failures_total",
			Help:      "Note saves whose async job gave up: conflict, 4xx, or retries exhausted.",
		},
	)
)
