package openai

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/kailas-cloud/posedex/internal/domain"
	"github.com/kailas-cloud/posedex/internal/metrics"
)

// Generator produces text with a chat-completions model.
type Generator struct {
	client    *openai.Client
	model     string
	maxTokens int
	provider  string
	logger    *zap.Logger
}

var _ domain.Generator = (*Generator)(nil)

// NewGenerator creates an OpenAI-compatible text generator.
func NewGenerator(cfg *Config) *Generator {
	return &Generator{
		client:    newClient(cfg),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		provider:  cfg.Provider,
		logger:    loggerOrNop(cfg.Logger),
	}
}

// Generate sends prompt as a single user message and returns the first choice's text, trimmed.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:     g.model,
		MaxTokens: g.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	}

	call := metrics.StartProviderCall(g.provider, metrics.CapGeneration, g.model)
	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		call.Failed("api_error")
		return "", parseAPIError("generation", err, domain.ErrGenerationProviderError)
	}
	if len(resp.Choices) == 0 {
		call.Failed("empty_response")
		return "", fmt.Errorf("empty generation response: %w", domain.ErrGenerationProviderError)
	}
	elapsed := call.Succeeded()

	g.logger.Debug("Generated text",
		zap.String("model", g.model),
		zap.Int("total_tokens", resp.Usage.TotalTokens),
		zap.Duration("took", elapsed),
	)

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
