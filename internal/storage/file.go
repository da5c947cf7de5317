package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"mailtriage/internal/models"
)

// FileStore keeps feedback as a single JSON array on disk with
// read-everything, append-one, rewrite-everything semantics. A missing file
// counts as an empty array. The mutex serializes writers within this
// process; concurrent writers from other processes are not protected.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Append(ctx context.Context, record *models.FeedbackRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return err
	}

	records = append(records, *record)

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding feedback: %v", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("error writing feedback file: %v", err)
	}
	return nil
}

func (s *FileStore) List(ctx context.Context) ([]models.FeedbackRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) load() ([]models.FeedbackRecord, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []models.FeedbackRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading feedback file: %v", err)
	}

	var records []models.FeedbackRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("error decoding feedback file: %v", err)
	}
	return records, nil
}
