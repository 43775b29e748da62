package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/kaanyld/tutorhub/internal/pkg/logger"
)

// Medium is the raw key/value persistence primitive backing the entity
// tables. Each logical table lives under its own key; Set fully overwrites
// the prior value for a key.
type Medium interface {
	// Get returns the payload stored under key. The second return value
	// reports whether the key exists at all.
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// FileMedium stores each key as a JSON file under a base directory.
type FileMedium struct {
	basePath string
}

// NewFileMedium creates a FileMedium rooted at basePath.
func NewFileMedium(basePath string) (*FileMedium, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Storage directory ensured")

	return &FileMedium{basePath: basePath}, nil
}

func (m *FileMedium) path(key string) string {
	return filepath.Join(m.basePath, key+".json")
}

// Get reads the payload for key. A missing file is reported as absent, not
// as an error.
func (m *FileMedium) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(m.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return data, true, nil
}

// Set overwrites the payload for key. The write goes through a temp file and
// a rename so a crash mid-write never leaves a truncated table behind.
func (m *FileMedium) Set(key string, value []byte) error {
	dst := m.path(key)
	tmp := dst + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	if err := os.Rename(tmp, dst); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to commit key %s: %w", key, err)
	}
	return nil
}

// Delete removes the payload for key. Deleting an absent key is not an error.
func (m *FileMedium) Delete(key string) error {
	if err := os.Remove(m.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}

// MemoryMedium keeps payloads in a map. Used by tests and ephemeral setups.
type MemoryMedium struct {
	mu   sync.Mutex
	data map[string][]byte
}

// NewMemoryMedium creates an empty in-memory medium.
func NewMemoryMedium() *MemoryMedium {
	return &MemoryMedium{data: make(map[string][]byte)}
}

func (m *MemoryMedium) Get(key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, true, nil
}

func (m *MemoryMedium) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := make([]byte, len(value))
	copy(stored, value)
	m.data[key] = stored
	return nil
}

func (m *MemoryMedium) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
