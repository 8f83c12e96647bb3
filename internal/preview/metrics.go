package preview

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sectionFetchFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "frly_client",
			Subsystem: "preview",
			Name:      "section_fetch_failures_total",
			Help:      "Preview fetches that failed and were omitted from the batch.",
		},
		[]string{"section_type"},
	)

	batchesSuperseded = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "frly_client",
			Subsystem: "preview",
			Name:      "batches_superseded_total",
			Help:      "Completed batches discarded because a newer refresh was dispatched.",
		},
	)

	batchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "frly_client",
			Subsystem: "preview",
			Name:      "batch_duration_seconds",
			Help:      "Wall time from batch dispatch until all fetches settled.",
			Buckets:   prometheus.DefBuckets,
		},
	)
)
