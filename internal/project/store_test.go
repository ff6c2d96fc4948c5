package project

import (
	"path/filepath"
	"testing"

	"mrahman/fcr-gen/internal/logging"
	"mrahman/fcr-gen/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "projects"), logging.NewMockLogger())
	require.NoError(t, err)
	return store
}

func sampleRecords() []models.OutputRecord {
	return []models.OutputRecord{
		{models.FieldIndex: "1", models.FieldFormattedText: "BOX ONE"},
		{models.FieldIndex: "2", models.FieldFormattedText: "BOX TWO"},
	}
}

func TestCreateAndGet(t *testing.T) {
	store := newTestStore(t)

	created, err := store.Create("Spring Shipment", 2024, sampleRecords())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.NotNil(t, created.Copied)
	assert.False(t, created.CreatedAt.IsZero())

	loaded, err := store.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Spring Shipment", loaded.Name)
	assert.Equal(t, 2024, loaded.Year)
	require.Len(t, loaded.Records, 2)
	assert.Equal(t, "BOX ONE", loaded.Records[0][models.FieldFormattedText])
}

func TestGetNotFound(t *testing.T) {
	store := newTestStore(t)
	_, err := store.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListOrderingAndArchiveFilter(t *testing.T) {
	store := newTestStore(t)

	first, err := store.Create("First", 2023, nil)
	require.NoError(t, err)
	second, err := store.Create("Second", 2024, nil)
	require.NoError(t, err)

	_, err = store.Archive(first.ID)
	require.NoError(t, err)

	visible, err := store.List(false)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, second.ID, visible[0].ID)

	all, err := store.List(true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUpdatePreservesUnsetFields(t *testing.T) {
	store := newTestStore(t)
	created, err := store.Create("Original", 2024, sampleRecords())
	require.NoError(t, err)

	updated, err := store.Update(created.ID, "Renamed", 0, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, 2024, updated.Year)
	assert.Len(t, updated.Records, 2)

	updated, err = store.Update(created.ID, "", 2025, nil, map[string]bool{"1": true})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, 2025, updated.Year)
	assert.True(t, updated.Copied["1"])
}

func TestSetCopiedAndTracking(t *testing.T) {
	store := newTestStore(t)
	created, err := store.Create("Tracked", 2024, sampleRecords())
	require.NoError(t, err)

	_, err = store.SetCopied(created.ID, "1", true)
	require.NoError(t, err)

	summary, err := store.Tracking(created.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 1, summary.Completed)
	assert.Equal(t, 1, summary.Remaining)
	assert.InDelta(t, 50.0, summary.Percentage, 0.01)
	assert.True(t, summary.Copied["1"])

	// Unsetting brings the progress back down.
	_, err = store.SetCopied(created.ID, "1", false)
	require.NoError(t, err)
	summary, err = store.Tracking(created.ID)
	require.NoError(t, err)
	assert.Zero(t, summary.Completed)
}

func TestDelete(t *testing.T) {
	store := newTestStore(t)
	created, err := store.Create("Doomed", 2024, nil)
	require.NoError(t, err)

	require.NoError(t, store.Delete(created.ID))
	_, err = store.Get(created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, store.Delete(created.ID), ErrNotFound)
}
