// Package speech turns pose descriptions into spoken audio.
package speech

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/kailas-cloud/posedex/internal/domain"
)

// Service converts a description into WAV bytes.
type Service struct {
	speaker Speaker
}

// New creates a speech service.
func New(speaker Speaker) *Service {
	return &Service{speaker: speaker}
}

// Synthesize returns WAV audio for description. The description may arrive URL-escaped
// from the browser; text that is not valid escaping is spoken as is.
func (s *Service) Synthesize(ctx context.Context, description string) ([]byte, error) {
	if strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("description is required: %w", domain.ErrMissingInput)
	}

	audio, err := s.speaker.Synthesize(ctx, unescape(description))
	if err != nil {
		return nil, fmt.Errorf("synthesize: %w", err)
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("empty audio: %w", domain.ErrSpeechProviderError)
	}
	return audio, nil
}

// unescape decodes percent-escapes only. '+' stays literal.
func unescape(s string) string {
	decoded, err := url.PathUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}
