// Package attachment owns upload naming, storage, and the projection of
// stored references into public paths. Every workflow that accepts files goes
// through the Resolver; nothing else names or writes blobs.
package attachment

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/tbanda/vendora-backend/internal/apperr"
	"github.com/tbanda/vendora-backend/internal/blob"
)

// Upload is a file received with a request.
type Upload struct {
	Filename string
	Data     []byte
}

// Resolver turns uploads into durable blob references.
type Resolver struct {
	store blob.Store
}

// NewResolver creates a Resolver backed by the given blob store.
func NewResolver(store blob.Store) *Resolver {
	return &Resolver{store: store}
}

// Resolve stores the upload in the named collection and returns its
// reference. A nil upload resolves to fallback (which may be empty). Stored
// names carry a uuid prefix so concurrent uploads of files with the same
// original name never collide.
func (r *Resolver) Resolve(ctx context.Context, up *Upload, collection, fallback string) (string, error) {
	if up == nil || len(up.Data) == 0 {
		return fallback, nil
	}

	name := uuid.NewString() + "_" + sanitizeFilename(up.Filename)
	ref, err := r.store.Save(ctx, collection, name, up.Data)
	if err != nil {
		return "", &apperr.Storage{Err: err}
	}
	return ref, nil
}

// sanitizeFilename strips any path components from an uploaded filename and
// replaces characters that do not survive a filesystem path.
func sanitizeFilename(filename string) string {
	base := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	if base == "." || base == "/" || base == "" {
		return "file"
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t':
			return '_'
		default:
			return r
		}
	}, base)
}
