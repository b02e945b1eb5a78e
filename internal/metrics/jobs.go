package metrics

import "github.com/prometheus/client_golang/prometheus"

// Offline job record counters.
var (
	IngestRecordsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ingest_records_total",
			Help:      "Pose records processed by ingestion",
		},
		[]string{"result"}, // stored, failed
	)

	DescribeRecordsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "describe_records_total",
			Help:      "Pose records processed by description generation",
		},
		[]string{"result"}, // generated, skipped, failed
	)
)
