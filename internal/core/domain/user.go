package domain

import "time"

const (
	RoleAdmin    = "admin"
	RoleStandard = "standard"
)

// User models a registered actor. Email is the unique key; Role decides
// access to admin-gated routes and is always re-read from the store at
// authorization time, never trusted from token claims.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsAdmin reports whether the user holds the elevated role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
