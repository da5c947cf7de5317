package notify

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"mailtriage/internal/models"
)

// Telegram pings an operator chat when a classification comes back flagged
// for review or a user submits a correction. Send failures are logged and
// swallowed; notifications are best-effort.
type Telegram struct {
	api    *tgbotapi.BotAPI
	chatID int64
	logger *zap.Logger
}

func NewTelegram(token string, chatID int64, logger *zap.Logger) (*Telegram, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram client: %w", err)
	}

	return &Telegram{
		api:    api,
		chatID: chatID,
		logger: logger,
	}, nil
}

func (t *Telegram) ReviewNeeded(result *models.ClassificationResult) {
	confidence := "n/a"
	if result.Confidence != nil {
		confidence = fmt.Sprintf("%.2f", *result.Confidence)
	}

	text := fmt.Sprintf("⚠️ Classificação marcada para revisão\nCategoria: %s\nConfiança: %s",
		result.Category, confidence)
	t.send(text)
}

func (t *Telegram) FeedbackReceived(record *models.FeedbackRecord) {
	text := fmt.Sprintf("✏️ Correção recebida: %s → %s\nTrecho: %s",
		record.OriginalCategory, record.CorrectedCategory, record.TextPreview)
	t.send(text)
}

func (t *Telegram) send(text string) {
	msg := tgbotapi.NewMessage(t.chatID, text)
	if _, err := t.api.Send(msg); err != nil {
		t.logger.Error("Failed to send notification", zap.Error(err))
	}
}
