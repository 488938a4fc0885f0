// Package blob abstracts the storage medium for uploaded files.
package blob

import "context"

// Store persists named byte streams grouped into collections. A nil error
// from Save means the bytes are durably retrievable under the returned
// reference.
type Store interface {
	// EnsureCollection creates the collection if it does not exist yet.
	// Calling it for an existing collection is a no-op.
	EnsureCollection(ctx context.Context, collection string) error

	// Save writes data under the given name inside the collection and
	// returns the stored reference.
	Save(ctx context.Context, collection, name string, data []byte) (string, error)

	// Exists reports whether a reference already resolves to stored bytes.
	Exists(ctx context.Context, ref string) bool
}
