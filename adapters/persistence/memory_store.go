package persistence

import (
	"context"
	"sync"

	"github.com/khoahotran/professional-ladder/internal/application/service"
)

type memoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryStore keeps values for the life of the process only.
func NewMemoryStore() service.KeyValueStore {
	return &memoryStore{data: make(map[string]string)}
}

func (s *memoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *memoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}
