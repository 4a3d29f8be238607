// Package store persists the watchlist as a versioned JSON envelope in a
// local key-value store.
package store

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// ErrNotFound is returned by KV.Read when nothing is stored under the key.
var ErrNotFound = errors.New("store: key not found")

// KV is a byte-oriented key-value store. It has no knowledge of what the
// values mean.
type KV interface {
	Read(key string) ([]byte, error)
	Write(key string, val []byte) error
	Erase(key string) error
}

func validKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("store: key required")
	}
	if strings.ContainsAny(key, `/\`) {
		return fmt.Errorf("store: invalid key %q", key)
	}
	return nil
}

// MemoryKV keeps values in process memory.
type MemoryKV struct {
	mu   sync.Mutex
	data map[string][]byte
}

// NewMemoryKV returns an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string][]byte)}
}

func (m *MemoryKV) Read(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (m *MemoryKV) Write(key string, val []byte) error {
	if err := validKey(key); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(val))
	copy(cp, val)
	m.data[key] = cp
	return nil
}

func (m *MemoryKV) Erase(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.data[key]; !ok {
		return ErrNotFound
	}
	delete(m.data, key)
	return nil
}
