// Command posedex serves natural-language yoga pose search and runs the offline
// ingestion and description jobs.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kailas-cloud/posedex/internal/config"
	logpkg "github.com/kailas-cloud/posedex/internal/logger"
	"github.com/kailas-cloud/posedex/internal/metrics"
	"github.com/kailas-cloud/posedex/internal/version"
)

// app carries what every subcommand needs after the root pre-run.
type app struct {
	env    string
	cfg    config.Config
	logger *zap.Logger
}

var current app

var rootCmd = &cobra.Command{
	Use:           "posedex",
	Short:         "Natural-language yoga pose search",
	Version:       version.String(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		// A missing .env is fine; the environment may already be populated.
		_ = godotenv.Load()

		env := config.GetEnv()
		cfg, err := config.Load(env)
		if err != nil {
			return err
		}

		logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
		if err != nil {
			return err
		}

		metrics.Register()

		current = app{env: env, cfg: cfg, logger: logger}
		return nil
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if current.logger != nil {
			_ = current.logger.Sync()
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, ingestCmd, searchCmd, describeCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if current.logger != nil {
			current.logger.Error("Command failed", zap.Error(err))
		} else {
			_, _ = os.Stderr.WriteString("posedex: " + err.Error() + "\n")
		}
		stop()
		os.Exit(1)
	}
}
