package health

import "context"

// Pinger is the vector store. Search cannot work without it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ProviderChecker is the embedding provider. Losing it degrades search.
type ProviderChecker interface {
	HealthCheck(ctx context.Context) error
}
