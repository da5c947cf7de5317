package notify

import "mailtriage/internal/models"

// Notifier alerts an operator about classifications that need human
// attention. Implementations must never surface failures to the API caller.
type Notifier interface {
	ReviewNeeded(result *models.ClassificationResult)
	FeedbackReceived(record *models.FeedbackRecord)
}

// Noop is used when no notification channel is configured.
type Noop struct{}

func (Noop) ReviewNeeded(*models.ClassificationResult) {}

func (Noop) FeedbackReceived(*models.FeedbackRecord) {}
