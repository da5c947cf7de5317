package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"mailtriage/internal/models"
)

func TestNewOpenAIGatewayMissingKey(t *testing.T) {
	_, err := NewOpenAIGateway("", "gpt-4o-mini", 1024, 0.2, zap.NewNop())
	assert.ErrorIs(t, err, models.ErrMissingAPIKey)
}

func TestNewOpenAIGatewayWithKey(t *testing.T) {
	gw, err := NewOpenAIGateway("sk-test", "gpt-4o-mini", 1024, 0.2, zap.NewNop())
	assert.NoError(t, err)
	assert.NotNil(t, gw)
}
