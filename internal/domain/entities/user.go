package entities

// Role classifies a user's access level within the storefront.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleClient Role = "client"
)

// User represents the authenticated user of the storefront. Email is the
// identity key; Role is fixed at login time and never re-derived.
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
	ID    string `json:"id,omitempty"`
	Room  string `json:"room,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
