package providers

import (
	"context"
)

// ErrKeyNotFound is returned by KVStore implementations for missing keys.
// Implementations wrap their driver's sentinel into an error matching this
// via errors.Is.
type keyNotFoundError struct{}

func (keyNotFoundError) Error() string { return "key not found" }

// ErrKeyNotFound is the sentinel for absent keys.
var ErrKeyNotFound error = keyNotFoundError{}

// KVStore defines the interface for the string-keyed durable store backing
// session and reservation state.
type KVStore interface {
	// Get retrieves the value stored under key, or ErrKeyNotFound
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, overwriting any previous value
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the value stored under key; absent keys are not an error
	Delete(ctx context.Context, key string) error

	// MultiRemove removes every given key in one call
	MultiRemove(ctx context.Context, keys []string) error

	// Keys returns all keys beginning with prefix, in unspecified order
	Keys(ctx context.Context, prefix string) ([]string, error)
}
