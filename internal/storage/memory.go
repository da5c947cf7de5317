package storage

import (
	"context"
	"sync"

	"mailtriage/internal/models"
)

// MemoryStore holds feedback in memory. Used for tests and local runs
// without a data directory.
type MemoryStore struct {
	mu      sync.RWMutex
	records []models.FeedbackRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: []models.FeedbackRecord{},
	}
}

func (s *MemoryStore) Append(ctx context.Context, record *models.FeedbackRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, *record)
	return nil
}

func (s *MemoryStore) List(ctx context.Context) ([]models.FeedbackRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.FeedbackRecord, len(s.records))
	copy(out, s.records)
	return out, nil
}

func (s *MemoryStore) Close() error {
	return nil
}
