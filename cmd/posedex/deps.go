package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/posedex/internal/config"
	"github.com/kailas-cloud/posedex/internal/db"
	dbRedis "github.com/kailas-cloud/posedex/internal/db/redis"
	dbValkey "github.com/kailas-cloud/posedex/internal/db/valkey"
	"github.com/kailas-cloud/posedex/internal/domain"
	"github.com/kailas-cloud/posedex/internal/metrics"
	documentrepo "github.com/kailas-cloud/posedex/internal/repository/document"
	"github.com/kailas-cloud/posedex/internal/repository/embcache"
	openaiTransport "github.com/kailas-cloud/posedex/internal/transport/openai"
)

// openStore connects to the configured driver and waits until it answers.
func openStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (db.Store, error) {
	var (
		store db.Store
		err   error
	)
	switch cfg.Database.Driver {
	case config.DriverRedis:
		store, err = dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Database.Addrs,
			Password: cfg.Database.Password,
		})
	default:
		store, err = dbValkey.NewStore(dbValkey.Config{
			Addrs:    cfg.Database.Addrs,
			Password: cfg.Database.Password,
		})
	}
	if err != nil {
		return nil, fmt.Errorf("create %s store: %w", cfg.Database.Driver, err)
	}

	timeout := time.Duration(cfg.Database.ReadinessTimeout) * time.Second
	if err := store.WaitForReady(ctx, timeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("database not ready: %w", err)
	}

	logger.Info("Connected to database",
		zap.String("driver", cfg.Database.Driver),
		zap.Strings("addrs", cfg.Database.Addrs),
	)
	return store, nil
}

// providerConfig returns the endpoint settings shared by all model clients.
// Without an explicit base URL, a configured GCP project routes calls to Vertex AI.
func providerConfig(cfg *config.Config, logger *zap.Logger) openaiTransport.Config {
	baseURL := cfg.Provider.BaseURL
	provider := "openai"
	if baseURL == "" && cfg.Provider.ProjectID != "" {
		baseURL = openaiTransport.VertexBaseURL(cfg.Provider.ProjectID, cfg.Provider.Location)
		provider = "vertex"
	}
	return openaiTransport.Config{
		APIKey:   cfg.Provider.APIKey,
		BaseURL:  baseURL,
		Provider: provider,
		Logger:   logger,
	}
}

// buildEmbedder returns the provider embedder and the chain to use for queries.
// The chain adds the key-value cache when embedding.cache_ttl_sec is set.
func buildEmbedder(
	cfg *config.Config, store db.Store, logger *zap.Logger,
) (*openaiTransport.Embedder, domain.Embedder) {
	pc := providerConfig(cfg, logger)
	pc.Model = cfg.Embedding.Model
	pc.Dimensions = cfg.Embedding.Dimensions
	base := openaiTransport.NewEmbedder(&pc)

	if cfg.Embedding.CacheTTLSec <= 0 || store == nil {
		return base, base
	}
	cached := embcache.New(base, store, embcache.Options{
		Namespace:  cfg.Storage.Namespace,
		Model:      cfg.Embedding.Model,
		Dimensions: cfg.Embedding.Dimensions,
		TTL:        time.Duration(cfg.Embedding.CacheTTLSec) * time.Second,
		Lookups:    metrics.EmbeddingCacheTotal,
	}, logger)
	return base, cached
}

func buildGenerator(cfg *config.Config, logger *zap.Logger) *openaiTransport.Generator {
	pc := providerConfig(cfg, logger)
	pc.Model = cfg.Generation.Model
	pc.MaxTokens = cfg.Generation.MaxTokens
	return openaiTransport.NewGenerator(&pc)
}

func buildSpeaker(cfg *config.Config, logger *zap.Logger) *openaiTransport.Speaker {
	pc := speechConfig(cfg, logger)
	return openaiTransport.NewSpeaker(&pc)
}

// speechConfig resolves the speech endpoint. speech.base_url and speech.api_key
// win; otherwise the shared provider is used unless it is Vertex AI, which has
// no speech route, in which case the OpenAI API is called.
func speechConfig(cfg *config.Config, logger *zap.Logger) openaiTransport.Config {
	pc := providerConfig(cfg, logger)
	switch {
	case cfg.Speech.BaseURL != "":
		pc.BaseURL = cfg.Speech.BaseURL
		pc.Provider = "openai"
	case pc.Provider == "vertex":
		pc.BaseURL = ""
		pc.Provider = "openai"
	}
	if cfg.Speech.APIKey != "" {
		pc.APIKey = cfg.Speech.APIKey
	}
	pc.Model = cfg.Speech.Model
	pc.Voice = cfg.Speech.Voice
	return pc
}

func buildDocumentRepo(cfg *config.Config, store db.Store) *documentrepo.Repo {
	return documentrepo.New(store, cfg.Storage.Namespace, cfg.Embedding.Dimensions).
		WithHNSW(documentrepo.HNSWConfig{
			M:           cfg.Index.HNSWM,
			EFConstruct: cfg.Index.HNSWEFConstruct,
		})
}
