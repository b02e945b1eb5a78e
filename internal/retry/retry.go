// Package retry runs an operation with bounded exponential backoff.
package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// Policy configures retry behavior.
type Policy struct {
	// MaxAttempts is the total number of calls, the first one included.
	// Default: 5
	MaxAttempts int

	// InitialInterval is the wait before the second attempt.
	// Default: 4 seconds
	InitialInterval time.Duration

	// Multiplier grows the wait after every failed attempt.
	// Default: 2
	Multiplier float64

	// MaxInterval caps a single wait.
	// Default: 2 minutes
	MaxInterval time.Duration
}

// DefaultPolicy returns 5 attempts with waits of 4s, 8s, 16s and 32s.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts:     5,
		InitialInterval: 4 * time.Second,
		Multiplier:      2,
		MaxInterval:     2 * time.Minute,
	}
}

// ApplyDefaults sets default values for unset fields.
func (p *Policy) ApplyDefaults() {
	d := DefaultPolicy()
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = d.MaxAttempts
	}
	if p.InitialInterval <= 0 {
		p.InitialInterval = d.InitialInterval
	}
	if p.Multiplier < 1 {
		p.Multiplier = d.Multiplier
	}
	if p.MaxInterval <= 0 {
		p.MaxInterval = d.MaxInterval
	}
}

// Notify is called after a failed attempt with the error and the wait before the next one.
type Notify func(err error, next time.Duration)

// Do calls op until it succeeds, returns a Permanent error, the attempts run out or ctx ends.
// The last error is returned after exhaustion. Waits are deterministic (no jitter).
func Do[T any](ctx context.Context, p Policy, op func(ctx context.Context) (T, error), notify Notify) (T, error) {
	p.ApplyDefaults()

	b := &backoff.ExponentialBackOff{
		InitialInterval:     p.InitialInterval,
		RandomizationFactor: 0,
		Multiplier:          p.Multiplier,
		MaxInterval:         p.MaxInterval,
	}

	opts := []backoff.RetryOption{
		backoff.WithBackOff(b),
		backoff.WithMaxTries(uint(p.MaxAttempts)),
		backoff.WithMaxElapsedTime(0),
	}
	if notify != nil {
		opts = append(opts, backoff.WithNotify(backoff.Notify(notify)))
	}

	return backoff.Retry(ctx, func() (T, error) { return op(ctx) }, opts...)
}

// Permanent marks err as not worth retrying; Do returns it immediately.
func Permanent(err error) error {
	return backoff.Permanent(err)
}
