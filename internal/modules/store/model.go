package store

// Category is read-only reference data describing a store type.
type Category struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

// Price is one price tier of a store. Title is null for tiers created
// without one.
type Price struct {
	Title       *string `json:"title"`
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	Description string  `json:"description"`
}

// Store is the listing projection returned by getStores. JSON names follow
// the wire contract consumed by the frontend.
type Store struct {
	ID             int64   `json:"id"`
	Name           string  `json:"storeName"`
	Category       string  `json:"storeCategory"`
	CoverPhoto     *string `json:"coverPhoto"`
	ProfilePicture string  `json:"profilePicture"`
	Type           string  `json:"store_type"`
	Status         string  `json:"store_status"`
	Location       string  `json:"store_location"`
	Contact        string  `json:"store_contact"`
	Prices         []Price `json:"prices"`
}
