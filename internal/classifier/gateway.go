package classifier

import (
	"context"
	"fmt"
	"strings"

	"mailtriage/internal/models"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// Gateway is the boundary to the hosted model. A single attempt per call,
// no retry; callers decide whether a failed invocation is worth repeating.
type Gateway interface {
	Invoke(ctx context.Context, prompt string) (string, error)
}

type OpenAIGateway struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float64
	logger      *zap.Logger
}

func NewOpenAIGateway(apiKey, model string, maxTokens int, temperature float64, logger *zap.Logger) (*OpenAIGateway, error) {
	if apiKey == "" {
		return nil, models.ErrMissingAPIKey
	}

	return &OpenAIGateway{
		client:      openai.NewClient(apiKey),
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
		logger:      logger,
	}, nil
}

func (g *OpenAIGateway) Invoke(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: g.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens:   g.maxTokens,
			Temperature: float32(g.temperature),
		},
	)
	if err != nil {
		g.logger.Error("Model invocation failed", zap.Error(err), zap.String("model", g.model))
		return "", fmt.Errorf("%w: %v", models.ErrUpstream, err)
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("%w: resposta vazia do modelo", models.ErrUpstream)
	}

	return resp.Choices[0].Message.Content, nil
}
