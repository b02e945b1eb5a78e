package config

import "github.com/kailas-cloud/posedex/internal/domain"

// ApplyDefaults fills unset fields. Port, TopK and Dimensions are defaulted only
// when zero so a negative value still reaches Validate.
func (c *Config) ApplyDefaults() {
	ifZero(&c.HTTP.Port, 8080)
	ifNonPositive(&c.HTTP.ReadTimeoutSec, 10)
	ifNonPositive(&c.HTTP.WriteTimeoutSec, 60)
	ifNonPositive(&c.HTTP.ShutdownSec, 10)
	ifNonPositive(&c.HTTP.HealthCheckSec, 3)

	ifEmpty(&c.Database.Driver, DriverValkey)
	ifNonPositive(&c.Database.ReadinessTimeout, 10)

	ifEmpty(&c.Storage.Namespace, "posedex")
	ifEmpty(&c.Storage.Collection, "poses")
	ifNonPositive(&c.Index.HNSWM, 16)
	ifNonPositive(&c.Index.HNSWEFConstruct, 200)
	ifZero(&c.Search.TopK, 3)

	ifZero(&c.Embedding.Dimensions, domain.DefaultEmbeddingDimensions)
	ifEmpty(&c.Speech.Model, "tts-1")
	ifEmpty(&c.Speech.Voice, "alloy")

	ifNonPositive(&c.Describe.MaxAttempts, 5)
	ifNonPositive(&c.Describe.InitialIntervalSec, 4)
	if c.Describe.Multiplier <= 0 {
		c.Describe.Multiplier = 2
	}
}

func ifZero(p *int, v int) {
	if *p == 0 {
		*p = v
	}
}

func ifNonPositive(p *int, v int) {
	if *p <= 0 {
		*p = v
	}
}

func ifEmpty(p *string, v string) {
	if *p == "" {
		*p = v
	}
}
