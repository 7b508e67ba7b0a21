// Package persist provides durable key to JSON-blob storage behind a small
// Store interface, plus the snapshot gateway and temporal codec used to
// save and restore game state.
package persist

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned when a key has no stored value. Absence is a
// valid outcome, not a failure.
var ErrKeyNotFound = errors.New("key not found")

// Store is durable key to blob storage. Values are JSON documents; callers
// own encoding and decoding.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
