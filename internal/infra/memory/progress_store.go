package memory

import (
	"context"
	"sync"
)

// ProgressStore is an in-memory implementation of app.ProgressStore,
// useful for tests and single-node demos.
type ProgressStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewProgressStore() *ProgressStore {
	return &ProgressStore{values: make(map[string]string)}
}

func (s *ProgressStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	return value, ok, nil
}

func (s *ProgressStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}
