package openai

import (
	"context"
	"fmt"
	"io"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/kailas-cloud/posedex/internal/domain"
	"github.com/kailas-cloud/posedex/internal/metrics"
)

// Speaker synthesizes WAV audio through the OpenAI-compatible speech endpoint.
type Speaker struct {
	client   *openai.Client
	model    openai.SpeechModel
	voice    openai.SpeechVoice
	provider string
	logger   *zap.Logger
}

var _ domain.Speaker = (*Speaker)(nil)

// NewSpeaker creates an OpenAI-compatible speech synthesizer.
func NewSpeaker(cfg *Config) *Speaker {
	return &Speaker{
		client:   newClient(cfg),
		model:    openai.SpeechModel(cfg.Model),
		voice:    openai.SpeechVoice(cfg.Voice),
		provider: cfg.Provider,
		logger:   loggerOrNop(cfg.Logger),
	}
}

// Synthesize returns WAV bytes for text.
func (s *Speaker) Synthesize(ctx context.Context, text string) ([]byte, error) {
	req := openai.CreateSpeechRequest{
		Model:          s.model,
		Input:          text,
		Voice:          s.voice,
		ResponseFormat: openai.SpeechResponseFormatWav,
	}

	call := metrics.StartProviderCall(s.provider, metrics.CapSpeech, string(s.model))
	resp, err := s.client.CreateSpeech(ctx, req)
	if err != nil {
		call.Failed("api_error")
		return nil, parseAPIError("speech", err, domain.ErrSpeechProviderError)
	}
	defer resp.Close()

	audio, err := io.ReadAll(resp)
	if err != nil {
		call.Failed("read_error")
		return nil, fmt.Errorf("read speech response: %w: %w", err, domain.ErrSpeechProviderError)
	}
	elapsed := call.Succeeded()

	s.logger.Debug("Synthesized speech",
		zap.String("model", string(s.model)),
		zap.Int("bytes", len(audio)),
		zap.Duration("took", elapsed),
	)
	return audio, nil
}
