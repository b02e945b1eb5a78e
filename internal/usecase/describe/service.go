// Package describe enriches the raw pose dataset with generated descriptions.
package describe

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/kailas-cloud/posedex/internal/dataset"
	"github.com/kailas-cloud/posedex/internal/domain"
	"github.com/kailas-cloud/posedex/internal/domain/pose"
	"github.com/kailas-cloud/posedex/internal/metrics"
	"github.com/kailas-cloud/posedex/internal/retry"
)

// DefaultDelay spaces generation calls to stay under provider quotas.
const DefaultDelay = 30 * time.Second

// Report summarizes a description run.
type Report struct {
	Total     int `json:"total"`
	Generated int `json:"generated"`
	Skipped   int `json:"skipped"`
	Failed    int `json:"failed"`
}

// Options tune pacing and retries.
type Options struct {
	// Delay is the minimum spacing between generation calls. 0 disables pacing.
	Delay  time.Duration
	Policy retry.Policy
}

// Service generates pose descriptions one record at a time.
type Service struct {
	gen     Generator
	policy  retry.Policy
	limiter *rate.Limiter
	logger  *zap.Logger
}

// New creates a description service.
func New(gen Generator, opts Options, logger *zap.Logger) *Service {
	limit := rate.Inf
	if opts.Delay > 0 {
		limit = rate.Every(opts.Delay)
	}
	opts.Policy.ApplyDefaults()

	return &Service{
		gen:     gen,
		policy:  opts.Policy,
		limiter: rate.NewLimiter(limit, 1),
		logger:  logger,
	}
}

// DescribeFile reads the dataset at in, describes every pose and writes the result to out.
// Nothing is written when reading fails or the run is interrupted.
func (s *Service) DescribeFile(ctx context.Context, in, out string) (Report, error) {
	poses, err := dataset.Load(in)
	if err != nil {
		return Report{}, err
	}

	described, rep, err := s.Describe(ctx, poses)
	if err != nil {
		return rep, err
	}

	if err := dataset.Save(out, described); err != nil {
		return rep, fmt.Errorf("save dataset: %w", err)
	}
	s.logger.Info("Descriptions saved", zap.String("path", out))
	return rep, nil
}

// Describe returns a copy of poses with Description filled in, in input order.
// Sentinel records get "" without a generation call. A record whose generation still
// fails after retries gets "" and counts as failed.
func (s *Service) Describe(ctx context.Context, poses []pose.Pose) ([]pose.Pose, Report, error) {
	out := make([]pose.Pose, len(poses))
	copy(out, poses)
	rep := Report{Total: len(poses)}

	for i := range out {
		p := &out[i]
		start := time.Now()

		if p.IsSentinel() {
			p.Description = ""
			rep.Skipped++
			metrics.DescribeRecordsTotal.WithLabelValues("skipped").Inc()
			s.logProgress(i, len(out), p.Name, start)
			continue
		}

		if err := s.limiter.Wait(ctx); err != nil {
			return nil, rep, fmt.Errorf("describe interrupted at record %d: %w", i, err)
		}

		text, err := s.generate(ctx, p)
		if err != nil {
			if ctx.Err() != nil {
				return nil, rep, fmt.Errorf("describe interrupted at record %d: %w", i, ctx.Err())
			}
			s.logger.Error("Failed to generate description",
				zap.Int("index", i),
				zap.String("name", p.Name),
				zap.Error(err),
			)
			p.Description = ""
			rep.Failed++
			metrics.DescribeRecordsTotal.WithLabelValues("failed").Inc()
			continue
		}

		p.Description = text
		rep.Generated++
		metrics.DescribeRecordsTotal.WithLabelValues("generated").Inc()
		s.logProgress(i, len(out), p.Name, start)
	}

	return out, rep, nil
}

func (s *Service) generate(ctx context.Context, p *pose.Pose) (string, error) {
	prompt := buildPrompt(p)
	attempt := 0
	return retry.Do(ctx, s.policy, func(ctx context.Context) (string, error) {
		attempt++
		text, err := s.gen.Generate(ctx, prompt)
		if errors.Is(err, domain.ErrProviderRejected) {
			return "", retry.Permanent(err)
		}
		return text, err
	}, func(err error, next time.Duration) {
		s.logger.Info("Generation attempt failed",
			zap.String("name", p.Name),
			zap.Int("attempt", attempt),
			zap.Int("retries_left", s.policy.MaxAttempts-attempt),
			zap.Duration("wait", next),
			zap.Error(err),
		)
	})
}

func (s *Service) logProgress(i, total int, name string, start time.Time) {
	s.logger.Info("Processed pose",
		zap.Int("done", i+1),
		zap.Int("total", total),
		zap.String("name", name),
		zap.Duration("took", time.Since(start)),
	)
}
