package classifier

import (
	"context"
	"strings"

	"mailtriage/internal/models"
	"mailtriage/internal/normalize"
	"mailtriage/internal/sanitize"

	"go.uber.org/zap"
)

// Only the tail of the submitted text beyond this many characters is echoed
// back as extracted_text; shorter inputs are echoed whole.
const extractedTextOffset = 500

type Classifier interface {
	Classify(ctx context.Context, text string) (*models.ClassificationResult, error)
}

// Service runs the classification pipeline: sanitize, normalize the
// classification copy, build the prompt, invoke the model, parse the reply.
type Service struct {
	gateway Gateway
	logger  *zap.Logger
}

func NewService(gateway Gateway, logger *zap.Logger) *Service {
	return &Service{
		gateway: gateway,
		logger:  logger,
	}
}

func (s *Service) Classify(ctx context.Context, text string) (*models.ClassificationResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, models.ErrEmptyText
	}

	sanitized := sanitize.Sanitize(text)
	processed := normalize.Normalize(sanitized)
	prompt := buildPrompt(sanitized, processed)

	raw, err := s.gateway.Invoke(ctx, prompt)
	if err != nil {
		return nil, err
	}

	result := parseReply(raw)

	// Audit echo of what was submitted, deliberately from the original
	// un-sanitized input.
	runes := []rune(text)
	if len(runes) > extractedTextOffset {
		result.ExtractedText = string(runes[extractedTextOffset:])
	} else {
		result.ExtractedText = text
	}

	s.logger.Info("Classification completed",
		zap.String("category", string(result.Category)),
		zap.Bool("needs_review", result.NeedsReview),
		zap.Int("text_length", len(runes)))

	return &result, nil
}
