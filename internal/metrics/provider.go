// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "posedex"

// Capabilities reported in the "capability" label.
const (
	CapEmbedding  = "embedding"
	CapGeneration = "generation"
	CapSpeech     = "speech"
)

// Model provider calls, one series per provider, capability and model.
var (
	ProviderCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_calls_total",
			Help:      "Model provider calls by outcome",
		},
		[]string{"provider", "capability", "model", "outcome"},
	)

	ProviderCallDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "provider_call_duration_seconds",
			Help:      "Latency of successful model provider calls",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"provider", "capability", "model"},
	)

	EmbeddingTokensTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "embedding_tokens_total",
			Help:      "Tokens billed for embeddings",
		},
		[]string{"provider", "model", "type"},
	)

	EmbeddingCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "embedding_cache_total",
			Help:      "Query embedding cache lookups",
		},
		[]string{"result"},
	)
)

// ProviderCall labels one outgoing call. Finish it exactly once.
type ProviderCall struct {
	provider   string
	capability string
	model      string
	start      time.Time
}

// StartProviderCall begins timing a call.
func StartProviderCall(provider, capability, model string) ProviderCall {
	return ProviderCall{provider: provider, capability: capability, model: model, start: time.Now()}
}

// Succeeded counts the call and observes its latency, which it also returns.
func (c ProviderCall) Succeeded() time.Duration {
	elapsed := time.Since(c.start)
	ProviderCallsTotal.WithLabelValues(c.provider, c.capability, c.model, "success").Inc()
	ProviderCallDuration.WithLabelValues(c.provider, c.capability, c.model).Observe(elapsed.Seconds())
	return elapsed
}

// Failed counts the call under outcome, e.g. "api_error" or "empty_response".
func (c ProviderCall) Failed(outcome string) {
	ProviderCallsTotal.WithLabelValues(c.provider, c.capability, c.model, outcome).Inc()
}
