package classifier

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"mailtriage/internal/models"
)

type fakeGateway struct {
	reply      string
	err        error
	lastPrompt string
}

func (g *fakeGateway) Invoke(ctx context.Context, prompt string) (string, error) {
	g.lastPrompt = prompt
	if g.err != nil {
		return "", g.err
	}
	return g.reply, nil
}

func newTestService(gateway Gateway) *Service {
	return NewService(gateway, zap.NewNop())
}

func TestClassifyEmptyText(t *testing.T) {
	svc := newTestService(&fakeGateway{})

	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := svc.Classify(context.Background(), text)
		assert.ErrorIs(t, err, models.ErrEmptyText)
	}
}

func TestClassifyUpstreamErrorPropagates(t *testing.T) {
	svc := newTestService(&fakeGateway{err: models.ErrUpstream})

	_, err := svc.Classify(context.Background(), "preciso de ajuda com o sistema")
	assert.ErrorIs(t, err, models.ErrUpstream)
}

func TestClassifyParsesStructuredReply(t *testing.T) {
	gw := &fakeGateway{reply: `{"category":"Produtivo","confidence":0.9,"reply":"ok","needs_review":false}`}
	svc := newTestService(gw)

	result, err := svc.Classify(context.Background(), "preciso de suporte técnico urgente")
	require.NoError(t, err)

	assert.Equal(t, models.CategoryProductive, result.Category)
	require.NotNil(t, result.Confidence)
	assert.Equal(t, 0.9, *result.Confidence)
	assert.False(t, result.NeedsReview)
}

func TestClassifyPromptIsSanitized(t *testing.T) {
	gw := &fakeGateway{reply: `{"category":"Produtivo","needs_review":false}`}
	svc := newTestService(gw)

	_, err := svc.Classify(context.Background(), "meu email é joao@empresa.com e o cpf 123.456.789-00")
	require.NoError(t, err)

	assert.Contains(t, gw.lastPrompt, "[EMAIL]")
	assert.Contains(t, gw.lastPrompt, "[CPF]")
	assert.NotContains(t, gw.lastPrompt, "joao@empresa.com")
	assert.NotContains(t, gw.lastPrompt, "123.456.789-00")
}

func TestClassifyPromptCarriesBothVariants(t *testing.T) {
	gw := &fakeGateway{reply: `{"category":"Produtivo","needs_review":false}`}
	svc := newTestService(gw)

	_, err := svc.Classify(context.Background(), "Bom dia, o sistema apresentou um ERRO grave hoje!!!")
	require.NoError(t, err)

	// The sanitized original keeps the phrasing for the reply; the
	// pre-processed copy is lowercased with stop words removed.
	assert.Contains(t, gw.lastPrompt, "Bom dia, o sistema apresentou um ERRO grave hoje!!!")
	assert.Contains(t, gw.lastPrompt, "bom dia, sistema apresentou erro grave hoje.")
}

func TestClassifyExtractedTextLongInput(t *testing.T) {
	gw := &fakeGateway{reply: `{"category":"Produtivo","needs_review":false}`}
	svc := newTestService(gw)

	text := strings.Repeat("a", 500) + strings.Repeat("b", 100)
	result, err := svc.Classify(context.Background(), text)
	require.NoError(t, err)

	assert.Equal(t, strings.Repeat("b", 100), result.ExtractedText)
}

func TestClassifyExtractedTextShortInput(t *testing.T) {
	gw := &fakeGateway{reply: `{"category":"Produtivo","needs_review":false}`}
	svc := newTestService(gw)

	text := strings.Repeat("a", 300)
	result, err := svc.Classify(context.Background(), text)
	require.NoError(t, err)

	assert.Equal(t, text, result.ExtractedText)
}

func TestClassifyExtractedTextKeepsOriginalPII(t *testing.T) {
	gw := &fakeGateway{reply: `{"category":"Produtivo","needs_review":false}`}
	svc := newTestService(gw)

	text := "contato: joao@empresa.com"
	result, err := svc.Classify(context.Background(), text)
	require.NoError(t, err)

	// The audit echo deliberately shows what was submitted, not the
	// sanitized copy.
	assert.Equal(t, text, result.ExtractedText)
}

func TestClassifyFallbackReplyFlagsReview(t *testing.T) {
	gw := &fakeGateway{reply: "resposta sem estrutura nenhuma, mas Produtivo"}
	svc := newTestService(gw)

	result, err := svc.Classify(context.Background(), "qual o status do meu chamado?")
	require.NoError(t, err)

	assert.Equal(t, models.CategoryProductive, result.Category)
	assert.True(t, result.NeedsReview)
}
