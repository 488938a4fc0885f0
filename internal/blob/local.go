package blob

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
)

// LocalStore implements Store on the local filesystem. Collections live under
// <root>/uploads/<collection>, and references are the slash-separated paths
// relative to root (for example "uploads/profile_pictures/abc_photo.png"),
// which is exactly the form persisted by the workflows and served back over
// HTTP.
type LocalStore struct {
	root string
}

// NewLocalStore creates a LocalStore rooted at dir.
func NewLocalStore(dir string) *LocalStore {
	return &LocalStore{root: dir}
}

func (s *LocalStore) EnsureCollection(_ context.Context, collection string) error {
	dir := filepath.Join(s.root, "uploads", collection)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create collection %s: %w", collection, err)
	}
	return nil
}

func (s *LocalStore) Save(ctx context.Context, collection, name string, data []byte) (string, error) {
	if err := s.EnsureCollection(ctx, collection); err != nil {
		return "", err
	}

	ref := path.Join("uploads", collection, name)
	target := filepath.Join(s.root, "uploads", collection, name)

	// Write to a temp file in the same directory and rename, so a reference
	// never points at a partially written object.
	tmp, err := os.CreateTemp(filepath.Dir(target), ".upload-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write %s: %w", ref, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", ref, err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return "", fmt.Errorf("store %s: %w", ref, err)
	}
	return ref, nil
}

func (s *LocalStore) Exists(_ context.Context, ref string) bool {
	_, err := os.Stat(filepath.Join(s.root, filepath.FromSlash(ref)))
	return err == nil
}

// Root returns the directory the store was rooted at.
func (s *LocalStore) Root() string { return s.root }
