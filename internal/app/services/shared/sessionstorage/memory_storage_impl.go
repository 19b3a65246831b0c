package sessionstorage

import (
	"pathlab-client/internal/app/contracts"
	"sync"
)

// memoryStorage is the fallback when no session file can be created, and
// the storage of choice in tests.
type memoryStorage struct {
	mu      sync.RWMutex
	entries map[string]string
}

func NewMemoryStorage() contracts.SessionStorage {
	return &memoryStorage{entries: map[string]string{}}
}

func (s *memoryStorage) Get(key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries[key], nil
}

func (s *memoryStorage) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = value
	return nil
}

func (s *memoryStorage) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}
