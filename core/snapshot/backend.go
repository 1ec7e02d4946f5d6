package snapshot

import (
	"context"
	"errors"
)

// ErrNotFound is returned by a Backend when the key has never been written.
var ErrNotFound = errors.New("snapshot not found")

// Backend is a key/value store holding one serialized collection per key.
type Backend interface {
	// Get returns the bytes stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put replaces the bytes stored under key.
	Put(ctx context.Context, key string, data []byte) error
}
