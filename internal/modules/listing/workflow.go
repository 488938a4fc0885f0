// Package listing holds the create workflow shared by the marketplace
// listing types. Stores and venues follow the same path: resolve every
// attachment slot, then run one transactional insert with the resolved
// references. The entity-specific parts (validation messages, SQL) stay in
// their modules.
package listing

import (
	"context"

	"github.com/tbanda/vendora-backend/internal/attachment"
)

// AttachmentSlot names one uploaded-file slot of a create request.
type AttachmentSlot struct {
	Field      string // multipart form field
	Collection string // target blob collection
	Fallback   string // reference used when no file was sent
}

// Create resolves each slot in order and hands the resolved references,
// keyed by form field, to insert. A storage failure aborts before insert
// runs, so no record ever points at a blob that was not written.
func Create(
	ctx context.Context,
	resolver *attachment.Resolver,
	files map[string]*attachment.Upload,
	slots []AttachmentSlot,
	insert func(ctx context.Context, refs map[string]string) error,
) error {
	refs := make(map[string]string, len(slots))
	for _, slot := range slots {
		ref, err := resolver.Resolve(ctx, files[slot.Field], slot.Collection, slot.Fallback)
		if err != nil {
			return err
		}
		refs[slot.Field] = ref
	}
	return insert(ctx, refs)
}
