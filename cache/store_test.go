package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptlens/promptlens/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func statTempFile(t *testing.T, content string) (string, os.FileInfo) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	info, err := os.Stat(path)
	require.NoError(t, err)
	return path, info
}

func sampleRecords() []models.RawRecord {
	return []models.RawRecord{
		{Prompt: "cached", UserID: "usr_001", Timestamp: "2024-01-15T10:00:00",
			Model: "gpt-4", Category: "technology", TokensUsed: 10, ResponseQuality: 4},
	}
}

func TestStore_PutGet(t *testing.T) {
	store := newTestStore(t)
	path, info := statTempFile(t, "line\n")

	_, ok := store.Get(path, info)
	assert.False(t, ok)

	require.NoError(t, store.Put(path, info, sampleRecords()))

	records, ok := store.Get(path, info)
	require.True(t, ok)
	require.Len(t, records, 1)
	assert.Equal(t, "cached", records[0].Prompt)
}

func TestStore_InvalidatesOnFileChange(t *testing.T) {
	store := newTestStore(t)
	path, info := statTempFile(t, "line\n")
	require.NoError(t, store.Put(path, info, sampleRecords()))

	// Grow the file; the stored size no longer matches.
	require.NoError(t, os.WriteFile(path, []byte("line\nanother\n"), 0o644))
	newInfo, err := os.Stat(path)
	require.NoError(t, err)

	_, ok := store.Get(path, newInfo)
	assert.False(t, ok)

	// Same size, different mtime.
	future := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(path, future, future))
	touched, err := os.Stat(path)
	require.NoError(t, err)

	require.NoError(t, store.Put(path, newInfo, sampleRecords()))
	_, ok = store.Get(path, touched)
	assert.False(t, ok)
}

func TestStore_Clear(t *testing.T) {
	store := newTestStore(t)
	path, info := statTempFile(t, "line\n")
	require.NoError(t, store.Put(path, info, sampleRecords()))

	require.NoError(t, store.Clear())

	_, ok := store.Get(path, info)
	assert.False(t, ok)
}

func TestStore_Closed(t *testing.T) {
	store := newTestStore(t)
	path, info := statTempFile(t, "line\n")
	require.NoError(t, store.Close())

	_, ok := store.Get(path, info)
	assert.False(t, ok)
	assert.Error(t, store.Put(path, info, sampleRecords()))
	assert.NoError(t, store.Close())
}
