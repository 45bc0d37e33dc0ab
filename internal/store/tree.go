// Package store wraps the remote hierarchical document tree and owns the
// physical layout: the primary products collection plus the two secondary
// index collections (by_sku, by_date) that are maintained on every create.
package store

import (
	"context"
	"errors"
)

// ErrStoreUnavailable marks transport or auth failures against the backing
// store. Not retried here; callers surface it as a server-side error.
var ErrStoreUnavailable = errors.New("store unavailable")

// ErrNotFound is returned when a single-record lookup misses. An empty list
// result is not ErrNotFound.
var ErrNotFound = errors.New("record not found")

// Tree is the minimal document-tree contract the adapter consumes.
// Paths are slash-separated, relative to the tree root.
type Tree interface {
	// Get decodes the value at path into dest. An absent path leaves dest
	// at its zero value and returns nil.
	Get(ctx context.Context, path string, dest interface{}) error

	// Push allocates a new unique child key under path without writing
	// any value yet.
	Push(ctx context.Context, path string) (string, error)

	// Update applies all writes in one atomic multi-path operation:
	// either every path becomes visible together or none do.
	Update(ctx context.Context, writes map[string]interface{}) error
}
