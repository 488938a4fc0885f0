package store

import "context"

// NewStore carries the column values for a store insert. Empty picture
// references are stored as NULL.
type NewStore struct {
	UserID         int64
	CategoryID     int64
	Name           string
	Details        string
	Contact        string
	Email          string
	Type           string
	Description    string
	Location       string
	CoverPhoto     string
	ProfilePicture string
}

// NewPrice carries the column values for the initial price tier.
type NewPrice struct {
	Title       *string
	Min         float64
	Max         float64
	Description string
}

// Repository defines the interface for store data storage.
type Repository interface {
	// CreateWithPrice inserts the store and its initial price tier as one
	// atomic unit and returns the generated store identifier. A failure
	// after the store insert leaves no store row behind.
	CreateWithPrice(ctx context.Context, s *NewStore, p *NewPrice) (int64, error)

	// ListByUser returns the owner's stores with category labels and
	// grouped price tiers. Picture references come back as stored, with
	// the profile picture coalesced to defaultPfp inside the query.
	ListByUser(ctx context.Context, userID int64, defaultPfp string) ([]Store, error)

	// ListCategories returns all store categories.
	ListCategories(ctx context.Context) ([]Category, error)
}
