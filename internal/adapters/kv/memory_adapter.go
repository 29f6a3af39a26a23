package kv

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/zatekoja/Hotelbookingdesign/backend/internal/domain/providers"
)

// MemoryAdapter implements the KVStore interface in process memory. It backs
// tests and the offline mode of the storefront; contents are lost on exit.
type MemoryAdapter struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryAdapter creates an empty in-memory key-value store
func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{
		data: make(map[string][]byte),
	}
}

// Get retrieves the value stored under key
func (a *MemoryAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	value, ok := a.data[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", providers.ErrKeyNotFound, key)
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Set stores value under key
func (a *MemoryAdapter) Set(ctx context.Context, key string, value []byte) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	stored := make([]byte, len(value))
	copy(stored, value)
	a.data[key] = stored
	return nil
}

// Delete removes the value stored under key
func (a *MemoryAdapter) Delete(ctx context.Context, key string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.data, key)
	return nil
}

// MultiRemove removes every given key
func (a *MemoryAdapter) MultiRemove(ctx context.Context, keys []string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, key := range keys {
		delete(a.data, key)
	}
	return nil
}

// Keys returns all keys beginning with prefix
func (a *MemoryAdapter) Keys(ctx context.Context, prefix string) ([]string, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	var keys []string
	for key := range a.data {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	return keys, nil
}

// Len reports the number of stored keys; test helper.
func (a *MemoryAdapter) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.data)
}
