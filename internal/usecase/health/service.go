// Package health reports readiness of the store and the model providers.
package health

import (
	"context"
	"time"
)

// Status is the aggregated health status.
type Status string

const (
	// Healthy means every check passed.
	Healthy Status = "ok"
	// Degraded means the store is up but a provider check failed.
	Degraded Status = "degraded"
	// Unhealthy means the store is unreachable, so neither search nor ingest can work.
	Unhealthy Status = "error"
)

// CheckResult is a single check outcome.
type CheckResult string

const (
	CheckOK    CheckResult = "ok"
	CheckError CheckResult = "error"
)

const (
	checkDatabase  = "database"
	checkEmbedding = "embedding"

	defaultCheckTimeout = 3 * time.Second
)

// Report aggregates check results.
type Report struct {
	Status Status                 `json:"status"`
	Checks map[string]CheckResult `json:"checks"`
}

// Service runs health checks.
type Service struct {
	db        Pinger
	embedding ProviderChecker
	timeout   time.Duration
}

// New creates a Service. embedding may be nil.
func New(db Pinger, embedding ProviderChecker) *Service {
	return &Service{db: db, embedding: embedding, timeout: defaultCheckTimeout}
}

// WithTimeout bounds each individual check.
func (s *Service) WithTimeout(d time.Duration) *Service {
	if d > 0 {
		s.timeout = d
	}
	return s
}

// Check runs every configured check.
func (s *Service) Check(ctx context.Context) Report {
	checks := map[string]CheckResult{
		checkDatabase: s.run(ctx, s.db.Ping),
	}
	if s.embedding != nil {
		checks[checkEmbedding] = s.run(ctx, s.embedding.HealthCheck)
	}

	status := Healthy
	switch {
	case checks[checkDatabase] == CheckError:
		status = Unhealthy
	case checks[checkEmbedding] == CheckError:
		status = Degraded
	}

	return Report{Status: status, Checks: checks}
}

func (s *Service) run(ctx context.Context, fn func(context.Context) error) CheckResult {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := fn(ctx); err != nil {
		return CheckError
	}
	return CheckOK
}
