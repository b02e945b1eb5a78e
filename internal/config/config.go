// Package config loads the posedex YAML configuration.
package config

import "time"

const (
	DriverValkey = "valkey"
	DriverRedis  = "redis"

	defaultDescribeDelaySec = 30
	maxTopK                 = 100
)

// Config is the whole of config/<env>.yaml.
type Config struct {
	HTTP       HTTPConfig       `yaml:"http"`
	Database   DatabaseConfig   `yaml:"database"`
	Storage    StorageConfig    `yaml:"storage"`
	Index      IndexConfig      `yaml:"index"`
	Search     SearchConfig     `yaml:"search"`
	Provider   ProviderConfig   `yaml:"provider"`
	Embedding  EmbeddingConfig  `yaml:"embedding"`
	Generation GenerationConfig `yaml:"generation"`
	Speech     SpeechConfig     `yaml:"speech"`
	Describe   DescribeConfig   `yaml:"describe"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// LoggingConfig overrides the environment's default log level.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// HTTPConfig configures the web server.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
	HealthCheckSec  int `yaml:"health_check_timeout_sec"` // per check behind /healthz
}

// DatabaseConfig selects and reaches the vector store.
type DatabaseConfig struct {
	Driver           string   `yaml:"driver"`
	Addrs            []string `yaml:"addrs"`
	Password         string   `yaml:"password"`
	ReadinessTimeout int      `yaml:"readiness_timeout_sec"`
}

// StorageConfig names where pose documents live.
type StorageConfig struct {
	Namespace  string `yaml:"namespace"`  // key prefix, the logical database
	Collection string `yaml:"collection"` // pose collection within the namespace
}

// IndexConfig tunes the HNSW graph built by ingestion.
type IndexConfig struct {
	HNSWM           int `yaml:"hnsw_m"`
	HNSWEFConstruct int `yaml:"hnsw_ef_construction"`
}

// SearchConfig bounds result sets.
type SearchConfig struct {
	TopK int `yaml:"top_k"`
}

// ProviderConfig holds the OpenAI-compatible endpoint shared by embedding, generation and speech.
// When BaseURL is empty and ProjectID and Location are set, the Vertex AI endpoint is used.
type ProviderConfig struct {
	APIKey    string `yaml:"api_key"`
	BaseURL   string `yaml:"base_url"`
	ProjectID string `yaml:"project_id"`
	Location  string `yaml:"location"`
}

// EmbeddingConfig names the embedding model. Ingest and serve must agree on it.
type EmbeddingConfig struct {
	Model       string `yaml:"model"`
	Dimensions  int    `yaml:"dimensions"`
	CacheTTLSec int    `yaml:"cache_ttl_sec"` // 0 disables the query embedding cache
}

// GenerationConfig names the model that writes pose descriptions.
type GenerationConfig struct {
	Model     string `yaml:"model"`
	MaxTokens int    `yaml:"max_tokens"`
}

// SpeechConfig picks the text-to-speech model and voice. BaseURL and APIKey
// point speech at its own endpoint; Vertex AI serves no speech route, so a
// Vertex provider falls back to the OpenAI API here.
type SpeechConfig struct {
	Model   string `yaml:"model"`
	Voice   string `yaml:"voice"`
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
}

// DescribeConfig paces and retries the describe job.
type DescribeConfig struct {
	DelaySec           *int    `yaml:"delay_sec"` // nil means default, 0 disables pacing
	MaxAttempts        int     `yaml:"max_attempts"`
	InitialIntervalSec int     `yaml:"initial_interval_sec"`
	Multiplier         float64 `yaml:"multiplier"`
}

// Delay returns the minimum spacing between generation calls.
func (d DescribeConfig) Delay() time.Duration {
	if d.DelaySec == nil {
		return defaultDescribeDelaySec * time.Second
	}
	return time.Duration(*d.DelaySec) * time.Second
}
