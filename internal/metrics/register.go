package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var registerOnce sync.Once

// Register adds the provider and job collectors to the default registry.
// HTTP collectors register themselves on import. Safe to call more than once.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			ProviderCallsTotal,
			ProviderCallDuration,
			EmbeddingTokensTotal,
			EmbeddingCacheTotal,
			IngestRecordsTotal,
			DescribeRecordsTotal,
		)
	})
}
