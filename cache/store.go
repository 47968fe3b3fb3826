// Package cache provides a BadgerDB-backed cache of parsed record files so
// repeated startups skip re-parsing unchanged JSONL sources. It accelerates
// load only; the in-memory dataset remains the sole source of truth.
package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/dgraph-io/badger/v3"

	"github.com/promptlens/promptlens/models"
)

// Store is a persistent cache of parsed records keyed by source file.
type Store struct {
	db     *badger.DB
	mu     sync.RWMutex
	closed bool
}

// entry is the cached payload for one source file. Size and ModTime identify
// the file version; a mismatch invalidates the entry.
type entry struct {
	Size    int64              `json:"size"`
	ModTime int64              `json:"mod_time"`
	Records []models.RawRecord `json:"records"`
}

// NewStore opens (or creates) the cache at dir.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dir = filepath.Join(homeDir, ".cache", "promptlens")
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	opts := badger.DefaultOptions(dir)
	opts = opts.WithLogger(nil)
	opts = opts.WithValueLogFileSize(64 * 1024 * 1024)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache at %s: %w", dir, err)
	}

	return &Store{db: db}, nil
}

// Get returns the cached records for path if the cached size and mtime still
// match the file on disk.
func (s *Store) Get(path string, info os.FileInfo) ([]models.RawRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, false
	}

	var cached entry
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(path))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return sonic.Unmarshal(val, &cached)
		})
	})
	if err != nil {
		return nil, false
	}

	if cached.Size != info.Size() || cached.ModTime != info.ModTime().UnixNano() {
		return nil, false
	}
	return cached.Records, true
}

// Put stores the parsed records for path under its current size and mtime.
func (s *Store) Put(path string, info os.FileInfo, records []models.RawRecord) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return fmt.Errorf("cache is closed")
	}

	payload, err := sonic.Marshal(entry{
		Size:    info.Size(),
		ModTime: info.ModTime().UnixNano(),
		Records: records,
	})
	if err != nil {
		return fmt.Errorf("failed to serialize cache entry: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(path), payload)
	})
}

// Clear removes all cached entries.
func (s *Store) Clear() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return fmt.Errorf("cache is closed")
	}
	return s.db.DropAll()
}

// Close closes the underlying database.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}
