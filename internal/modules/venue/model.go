package venue

// Venue is the listing projection returned by getVenues. Price fields come
// from the venue's price row and are null when none exists; capacity is zero
// in that case. JSON names follow the wire contract consumed by the frontend.
type Venue struct {
	ID             int64   `json:"venue_id"`
	Title          string  `json:"venue_title"`
	Owner          string  `json:"venue_owner"`
	Location       string  `json:"venue_location"`
	Contact        string  `json:"venue_contact"`
	Status         string  `json:"venue_status"`
	Type           string  `json:"venue_type"`
	Details        string  `json:"venue_details"`
	Capacity       int     `json:"venue_capacity"`
	ProfilePicture string  `json:"venue_profile_picture"`
	CoverPhoto     *string `json:"venue_cover_photo"`

	PriceTitle       *string  `json:"venue_price_title"`
	PriceMin         *float64 `json:"venue_price_min"`
	PriceMax         *float64 `json:"venue_price_max"`
	PriceDescription *string  `json:"venue_price_description"`
}
