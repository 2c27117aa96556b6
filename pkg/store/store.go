package store

import (
	"context"
)

// Store is a flat key/value persistence layer. Values are opaque byte
// slices; the ledgers above decide the encoding.
//
// Implementations guard their own internals, but read-modify-write
// sequences are serialized by the caller.
type Store interface {
	// Get returns the value for key. The bool reports whether the key
	// was present; a missing key is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set writes value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Remove deletes key. Removing an absent key is a no-op.
	Remove(ctx context.Context, key string) error

	// Keys returns all present keys in sorted order.
	Keys(ctx context.Context) ([]string, error)

	// ClearAll removes every key.
	ClearAll(ctx context.Context) error
}
