package storage

import (
	"context"

	"mailtriage/internal/models"
)

// FeedbackStore persists user corrections of automated classifications.
// Records are append-only; nothing ever mutates or deletes them.
type FeedbackStore interface {
	Append(ctx context.Context, record *models.FeedbackRecord) error
	List(ctx context.Context) ([]models.FeedbackRecord, error)
	Close() error
}
