package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	searchrepo "github.com/kailas-cloud/posedex/internal/repository/search"
	chiTransport "github.com/kailas-cloud/posedex/internal/transport/chi"
	healthuc "github.com/kailas-cloud/posedex/internal/usecase/health"
	searchuc "github.com/kailas-cloud/posedex/internal/usecase/search"
	speechuc "github.com/kailas-cloud/posedex/internal/usecase/speech"
	"github.com/kailas-cloud/posedex/internal/version"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runServe(cmd.Context(), &current)
	},
}

func runServe(ctx context.Context, a *app) error {
	cfg, logger := &a.cfg, a.logger

	logger.Info("Starting posedex server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", a.env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("collection", cfg.Storage.Collection),
		zap.Int("top_k", cfg.Search.TopK),
	)

	store, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	providerEmbedder, queryEmbedder := buildEmbedder(cfg, store, logger)

	searchSvc := searchuc.New(
		searchrepo.New(store, cfg.Storage.Namespace),
		queryEmbedder,
		cfg.Storage.Collection,
		cfg.Embedding.Dimensions,
	)
	speechSvc := speechuc.New(buildSpeaker(cfg, logger))
	healthSvc := healthuc.New(store, providerEmbedder).
		WithTimeout(time.Duration(cfg.HTTP.HealthCheckSec) * time.Second)

	server := chiTransport.NewServer(searchSvc, speechSvc, healthSvc, cfg.Search.TopK, logger)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      chiTransport.NewRouter(server, logger),
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Info("Received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("Server stopped gracefully")
	return nil
}
