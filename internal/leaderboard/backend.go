package leaderboard

import (
	"sync"

	"github.com/vovakirdan/catchverse/internal/storage"
)

// Backend is a key/value blob store. storage.Store implements it.
// Get returns storage.ErrNotFound for a key that was never written.
type Backend interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
}

// History receives every finished play-through, including the level it
// reached. storage.Store implements it.
type History interface {
	SavePlay(name string, score, level int) (int64, error)
}

// MemoryBackend is a Backend that lives only as long as the process.
// Used when the database cannot be opened, and in tests.
type MemoryBackend struct {
	mu     sync.Mutex
	values map[string][]byte
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{values: make(map[string][]byte)}
}

// Get returns a copy of the value stored under key.
func (m *MemoryBackend) Get(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.values[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

// Put stores a copy of value under key.
func (m *MemoryBackend) Put(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = append([]byte(nil), value...)
	return nil
}
