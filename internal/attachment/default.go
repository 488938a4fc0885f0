package attachment

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/tbanda/vendora-backend/internal/blob"
)

// placeholderPNG is a 1x1 transparent PNG used when no default avatar has
// been provisioned yet.
var placeholderPNG, _ = base64.StdEncoding.DecodeString(
	"iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNk+M9QDwADhgGAWjR9awAAAABJRU5ErkJggg==")

// EnsureDefault provisions the default profile picture at the configured
// reference if it does not exist yet. The reference must have the form
// uploads/<collection>/<name>.
func EnsureDefault(ctx context.Context, store blob.Store, ref string) error {
	// Save writes under uploads/<collection>/<name> while Exists checks the
	// raw reference, so anything outside that shape would be re-provisioned
	// on every startup and never resolve. Reject it up front.
	rest, ok := strings.CutPrefix(ref, "uploads/")
	if !ok {
		return fmt.Errorf("invalid default picture reference %q", ref)
	}
	collection, name, ok := strings.Cut(rest, "/")
	if !ok || collection == "" || name == "" || strings.Contains(name, "/") {
		return fmt.Errorf("invalid default picture reference %q", ref)
	}

	if store.Exists(ctx, ref) {
		return nil
	}

	if _, err := store.Save(ctx, collection, name, placeholderPNG); err != nil {
		return fmt.Errorf("provision default picture: %w", err)
	}
	return nil
}
