package main

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kailas-cloud/posedex/internal/retry"
	describeuc "github.com/kailas-cloud/posedex/internal/usecase/describe"
)

var (
	describeIn    string
	describeOut   string
	describeDelay time.Duration
)

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Generate a short description for every pose in the raw dataset",
	Long: `Calls the text generation model once per pose, pacing calls to respect provider
quotas and retrying failures with exponential backoff. A pose that still fails gets an
empty description. Placeholder records named " Pose" are never sent to the model.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		delay := current.cfg.Describe.Delay()
		if cmd.Flags().Changed("delay") {
			delay = describeDelay
		}
		return runDescribe(cmd.Context(), &current, describeIn, describeOut, delay)
	},
}

func init() {
	describeCmd.Flags().StringVar(&describeIn, "in", "data/yoga_poses.json", "raw pose dataset")
	describeCmd.Flags().StringVar(&describeOut, "out", "data/yoga_poses_with_descriptions.json", "output dataset")
	describeCmd.Flags().DurationVar(&describeDelay, "delay", 30*time.Second,
		"minimum spacing between generation calls (0 disables, default from config)")
}

func runDescribe(ctx context.Context, a *app, in, out string, delay time.Duration) error {
	cfg, logger := &a.cfg, a.logger

	svc := describeuc.New(buildGenerator(cfg, logger), describeuc.Options{
		Delay: delay,
		Policy: retry.Policy{
			MaxAttempts:     cfg.Describe.MaxAttempts,
			InitialInterval: time.Duration(cfg.Describe.InitialIntervalSec) * time.Second,
			Multiplier:      cfg.Describe.Multiplier,
		},
	}, logger)

	logger.Info("Generating descriptions",
		zap.String("in", in),
		zap.String("out", out),
		zap.Duration("delay", delay),
		zap.String("model", cfg.Generation.Model),
	)

	rep, err := svc.DescribeFile(ctx, in, out)
	if err != nil {
		return err
	}
	return printJSON(os.Stdout, rep)
}
