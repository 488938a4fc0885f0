package profile

import "context"

// Repository defines the interface for user profile data storage.
type Repository interface {
	// GetUser fetches one user, substituting defaultPfp for a missing
	// picture reference inside the query itself.
	GetUser(ctx context.Context, id int64, defaultPfp string) (*User, error)

	// UpdatePfp sets the picture reference for one user. It returns
	// apperr.ErrNotFound when no row was updated.
	UpdatePfp(ctx context.Context, id int64, ref string) error
}
