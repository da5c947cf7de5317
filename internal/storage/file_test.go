package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mailtriage/internal/models"
)

func newRecord(original, corrected string) *models.FeedbackRecord {
	return &models.FeedbackRecord{
		ID:                uuid.New().String(),
		Timestamp:         time.Now().UTC().Truncate(time.Second),
		OriginalCategory:  original,
		CorrectedCategory: corrected,
		TextPreview:       "preciso de ajuda com o sistema",
	}
}

func TestFileStoreMissingFileIsEmpty(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "feedback.json"))

	records, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestFileStoreAppendAndList(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "feedback.json"))
	ctx := context.Background()

	first := newRecord("Produtivo", "Improdutivo")
	require.NoError(t, store.Append(ctx, first))

	second := newRecord("Improdutivo", "Produtivo")
	require.NoError(t, store.Append(ctx, second))

	records, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, first.ID, records[0].ID)
	assert.Equal(t, "Produtivo", records[0].OriginalCategory)
	assert.Equal(t, "Improdutivo", records[0].CorrectedCategory)
	assert.Equal(t, second.ID, records[1].ID)
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feedback.json")
	ctx := context.Background()

	store := NewFileStore(path)
	require.NoError(t, store.Append(ctx, newRecord("Produtivo", "Improdutivo")))
	require.NoError(t, store.Close())

	reopened := NewFileStore(path)
	records, err := reopened.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestMemoryStoreAppendAndList(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, newRecord("Produtivo", "Improdutivo")))

	records, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Produtivo", records[0].OriginalCategory)
}

func TestMemoryStoreListReturnsCopy(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, newRecord("Produtivo", "Improdutivo")))

	records, _ := store.List(ctx)
	records[0].OriginalCategory = "alterado"

	fresh, _ := store.List(ctx)
	assert.Equal(t, "Produtivo", fresh[0].OriginalCategory)
}
