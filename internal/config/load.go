package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// GetEnv reads ENV, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// Load reads config/<env>.yaml, substitutes ${VAR} and ${VAR:-default}
// from the process environment, applies defaults and validates.
func Load(env string) (Config, error) {
	path := locate(env + ".yaml")
	raw, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(expandEnvVars(raw), &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// locate prefers ./config, then the repository's config dir so tests run
// from any package directory still find it.
func locate(name string) string {
	local := filepath.Join("config", name)
	if _, err := os.Stat(local); err == nil {
		return local
	}
	_, self, _, _ := runtime.Caller(0)
	repo := filepath.Join(filepath.Dir(self), "..", "..", "config", name)
	if _, err := os.Stat(repo); err == nil {
		return repo
	}
	return local
}

var placeholder = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(in []byte) []byte {
	return placeholder.ReplaceAllFunc(in, func(m []byte) []byte {
		name, fallback, hasFallback := strings.Cut(string(m[2:len(m)-1]), ":-")
		if v := os.Getenv(name); v != "" || !hasFallback {
			return []byte(v)
		}
		return []byte(fallback)
	})
}
