package types

// UserResponse is the sanitized user view returned by the API.
// The password hash never leaves the server.
type UserResponse struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Verified  bool   `json:"verified"`
	UserType  string `json:"user_type"`
}
