package profile

// User is the profile projection returned by getUserInfo. JSON names follow
// the wire contract consumed by the frontend.
type User struct {
	ID        int64  `json:"user_id"`
	FirstName string `json:"user_firstName"`
	LastName  string `json:"user_lastName"`
	Email     string `json:"user_email"`
	Role      string `json:"user_role"`
	Pfp       string `json:"user_pfp"`
}
