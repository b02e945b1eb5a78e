// Package openai adapts OpenAI-compatible endpoints (Vertex AI, OpenAI, local gateways)
// to the domain Embedder, Generator and Speaker ports.
package openai

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/kailas-cloud/posedex/internal/domain"
)

// Config holds the settings shared by all OpenAI-compatible adapters.
// Fields that do not apply to an adapter are ignored.
type Config struct {
	APIKey   string
	BaseURL  string
	Model    string
	Provider string
	Logger   *zap.Logger

	Dimensions int    // embeddings
	User       string // embeddings
	MaxTokens  int    // generation
	Voice      string // speech
}

// VertexBaseURL returns the OpenAI-compatible endpoint of Vertex AI for a project and location.
func VertexBaseURL(projectID, location string) string {
	return fmt.Sprintf(
		"https://%s-aiplatform.googleapis.com/v1/projects/%s/locations/%s/endpoints/openapi",
		location, projectID, location,
	)
}

func newClient(cfg *Config) *openai.Client {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	return openai.NewClientWithConfig(clientCfg)
}

func loggerOrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}

// parseAPIError extracts a human-readable error from the API response and wraps it with the
// provider sentinel so callers can map it with errors.Is. Client-side rejections (bad request,
// auth, unknown model) additionally wrap domain.ErrProviderRejected.
func parseAPIError(kind string, err, wrap error) error {
	var (
		status int
		detail string
		reqErr *openai.RequestError
		apiErr *openai.APIError
	)
	switch {
	case errors.As(err, &reqErr):
		status = reqErr.HTTPStatusCode
		detail = extractDetail(reqErr.Body)
		if detail == "" {
			detail = string(reqErr.Body)
		}
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatusCode
		detail = apiErr.Message
	default:
		return fmt.Errorf("%s request failed: %w: %w", kind, err, wrap)
	}

	if isRejected(status) {
		return fmt.Errorf("%s API error %d: %s: %w: %w", kind, status, detail, wrap, domain.ErrProviderRejected)
	}
	return fmt.Errorf("%s API error %d: %s: %w", kind, status, detail, wrap)
}

// isRejected reports statuses that will not change on retry. 408 and 429 are retryable.
func isRejected(status int) bool {
	switch status {
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden,
		http.StatusNotFound, http.StatusUnprocessableEntity:
		return true
	}
	return false
}

// extractDetail extracts the "detail" field from a JSON error body.
func extractDetail(body []byte) string {
	var parsed struct {
		Detail string `json:"detail"`
	}
	if json.Unmarshal(body, &parsed) == nil && parsed.Detail != "" {
		return parsed.Detail
	}
	return ""
}
