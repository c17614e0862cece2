package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Storage keys persisted between runs.
const (
	KeyAccessToken         = "educare_access_token"
	KeyUserID              = "educare_user_id"
	KeyQuizDataInitialized = "quiz_data_initialized"
)

// Storage is a small durable string map.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Remove(keys ...string) error
}

// MemoryStorage keeps values for the life of the process.
type MemoryStorage struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

func (m *MemoryStorage) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *MemoryStorage) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemoryStorage) Remove(keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.values, k)
	}
	return nil
}

// FileStorage persists the map as a JSON object. Every write replaces the file
// through a rename so a crash never leaves it half written.
type FileStorage struct {
	path string
	mem  *MemoryStorage
	mu   sync.Mutex
}

// OpenFileStorage loads path, or starts empty when it does not exist yet.
func OpenFileStorage(path string) (*FileStorage, error) {
	fs := &FileStorage{path: path, mem: NewMemoryStorage()}
	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return fs, nil
	case err != nil:
		return nil, err
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &fs.mem.values); err != nil {
			return nil, fmt.Errorf("read session file %s: %w", path, err)
		}
	}
	if fs.mem.values == nil {
		fs.mem.values = make(map[string]string)
	}
	return fs, nil
}

func (f *FileStorage) Get(key string) (string, bool) { return f.mem.Get(key) }

func (f *FileStorage) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	_ = f.mem.Set(key, value)
	return f.flush()
}

func (f *FileStorage) Remove(keys ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	_ = f.mem.Remove(keys...)
	return f.flush()
}

func (f *FileStorage) flush() error {
	f.mem.mu.RLock()
	raw, err := json.MarshalIndent(f.mem.values, "", "  ")
	f.mem.mu.RUnlock()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".session-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), f.path)
}
