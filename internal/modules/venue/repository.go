package venue

import "context"

// NewVenue carries the column values for a venue insert. Empty picture
// references are stored as NULL.
type NewVenue struct {
	UserID         int64
	Title          string
	Owner          string
	Location       string
	Contact        string
	Details        string
	Status         string
	Type           string
	ProfilePicture string
	CoverPhoto     string
}

// NewPrice carries the column values for the venue's price/capacity row.
type NewPrice struct {
	Title       *string
	Min         float64
	Max         float64
	Capacity    int
	Description string
}

// Repository defines the interface for venue data storage.
type Repository interface {
	// CreateWithPrice inserts the venue and its price row as one atomic
	// unit and returns the generated venue identifier.
	CreateWithPrice(ctx context.Context, v *NewVenue, p *NewPrice) (int64, error)

	// ListByUser returns the owner's venues joined to their price rows by
	// the ownership key. The profile picture is coalesced to defaultPfp
	// inside the query.
	ListByUser(ctx context.Context, userID int64, defaultPfp string) ([]Venue, error)
}
