package config

import (
	"errors"
	"fmt"
	"regexp"
)

// keyPartPattern is the index name alphabet without ':', which separates key parts.
var keyPartPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Validate checks structure only. Model names and credentials are left to
// the first provider call to reject.
func (c *Config) Validate() error {
	if p := c.HTTP.Port; p < 1 || p > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", p)
	}
	if d := c.Database.Driver; d != DriverValkey && d != DriverRedis {
		return fmt.Errorf("database.driver must be %q or %q, got %q", DriverValkey, DriverRedis, d)
	}
	if len(c.Database.Addrs) == 0 || c.Database.Addrs[0] == "" {
		return errors.New("database.addrs is required")
	}
	if err := keyPart("storage.namespace", c.Storage.Namespace); err != nil {
		return err
	}
	if err := keyPart("storage.collection", c.Storage.Collection); err != nil {
		return err
	}
	if k := c.Search.TopK; k < 1 || k > maxTopK {
		return fmt.Errorf("search.top_k must be between 1 and %d, got %d", maxTopK, k)
	}
	if c.Embedding.Dimensions < 1 {
		return fmt.Errorf("embedding.dimensions must be positive, got %d", c.Embedding.Dimensions)
	}
	if c.Embedding.CacheTTLSec < 0 {
		return fmt.Errorf("embedding.cache_ttl_sec must not be negative, got %d", c.Embedding.CacheTTLSec)
	}
	if c.Describe.Delay() < 0 {
		return errors.New("describe.delay_sec must not be negative")
	}
	return nil
}

// keyPart rejects values that would break the <namespace>:<collection>:<id> key
// layout or the <namespace>:<collection>:idx index name.
func keyPart(field, v string) error {
	if !keyPartPattern.MatchString(v) {
		return fmt.Errorf("%s must contain only letters, digits, '_' or '-', got %q", field, v)
	}
	return nil
}
