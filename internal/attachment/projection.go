package attachment

import "path"

// PublicRef rewrites a stored blob reference into the collection-qualified
// path callers can fetch. The configured default sentinel is returned
// unchanged so it is never double-prefixed, and an empty reference stays
// empty.
func PublicRef(ref, collection, defaultRef string) string {
	if ref == "" || ref == defaultRef {
		return ref
	}
	return path.Join("uploads", collection, path.Base(ref))
}
