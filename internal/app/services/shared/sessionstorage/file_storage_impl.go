package sessionstorage

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"pathlab-client/internal/app/config"
	"pathlab-client/internal/app/contracts"
	"pathlab-client/internal/pkg/exceptions"
	"sync"

	"github.com/goccy/go-json"
)

const sessionFileName = "session.json"

// fileStorage keeps session entries in a single JSON object on disk,
// standing in for the browser's sessionStorage.
type fileStorage struct {
	path string
	mu   sync.Mutex
}

func NewFileStorage(internalConfig *config.InternalConfig) (contracts.SessionStorage, error) {
	dir := internalConfig.App.SessionDir
	if dir == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return nil, exceptions.ErrSessionStorageRead(err, sessionFileName)
		}
		dir = filepath.Join(configDir, "pathlab")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, exceptions.ErrSessionStorageWrite(err, sessionFileName)
	}
	return &fileStorage{path: filepath.Join(dir, sessionFileName)}, nil
}

func (s *fileStorage) Get(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return "", err
	}
	return entries[key], nil
}

func (s *fileStorage) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return err
	}
	entries[key] = value
	return s.store(entries)
}

func (s *fileStorage) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return exceptions.ErrSessionStorageDelete(err, key)
	}
	if _, ok := entries[key]; !ok {
		return nil
	}
	delete(entries, key)
	return s.store(entries)
}

func (s *fileStorage) load() (map[string]string, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, exceptions.ErrSessionStorageRead(err, s.path)
	}
	entries := map[string]string{}
	if err := json.Unmarshal(raw, &entries); err != nil {
		// An unreadable file is treated as empty; the next write replaces it.
		return map[string]string{}, nil
	}
	return entries, nil
}

func (s *fileStorage) store(entries map[string]string) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return exceptions.ErrSessionStorageWrite(err, s.path)
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return exceptions.ErrSessionStorageWrite(err, s.path)
	}
	return nil
}
