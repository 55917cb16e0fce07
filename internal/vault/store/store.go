// Package store provides the durable key-value collaborators backing the role
// registry. All implementations are scoped to one vault instance and are
// crash-consistent: a Set or Delete that returns nil is durable.
package store

import (
	"context"
)

// KV is the persistence contract the registry depends on. Keys are opaque
// strings from the registry's key space; values are small opaque byte slices.
type KV interface {
	// Get returns the value under key, or sentinel.ErrNotFound (possibly
	// wrapped) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// Has reports key presence without reading the value.
	Has(ctx context.Context, key string) (bool, error)
	// Delete removes key. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error
}
