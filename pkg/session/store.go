package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Store persists values blobs under caller-supplied keys. Load returns
// (nil, nil) when nothing is saved under the key; exactly one session owns a
// given key at a time, so implementations need no cross-key coordination.
type Store interface {
	Load(key string) ([]byte, error)
	Save(key string, blob []byte) error
	Delete(key string) error
}

// MemoryStore keeps blobs in process memory. Useful for tests and for hosts
// that snapshot values without durable persistence.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

// Load returns a copy of the stored blob, or nil when absent.
func (s *MemoryStore) Load(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	blob, ok := s.blobs[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), blob...), nil
}

// Save stores a copy of the blob under key.
func (s *MemoryStore) Save(key string, blob []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.blobs[key] = append([]byte(nil), blob...)
	return nil
}

// Delete removes the blob for key. Deleting an absent key is not an error.
func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.blobs, key)
	return nil
}

// FileStore writes each key to a JSON file under a base directory.
type FileStore struct {
	dir string
}

// NewFileStore creates the base directory if needed and returns a store
// rooted there.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, errors.New("session: file store requires a directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("session: create store directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Load reads the blob for key; a missing file means nothing saved.
func (s *FileStore) Load(key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("session: read blob %q: %w", key, err)
	}
	return data, nil
}

// Save writes the blob for key.
func (s *FileStore) Save(key string, blob []byte) error {
	if err := os.WriteFile(s.path(key), blob, 0o644); err != nil {
		return fmt.Errorf("session: write blob %q: %w", key, err)
	}
	return nil
}

// Delete removes the blob for key. A missing file is not an error.
func (s *FileStore) Delete(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("session: delete blob %q: %w", key, err)
	}
	return nil
}

func (s *FileStore) path(key string) string {
	// Keys become file names; flatten anything path-like.
	safe := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '.':
			return '_'
		}
		return r
	}, key)
	return filepath.Join(s.dir, safe+".json")
}
