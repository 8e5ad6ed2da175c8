package models

import "time"

// User roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// ValidRoles is the closed set of accepted role values, in declaration order.
var ValidRoles = []string{RoleUser, RoleAdmin}

// IsValidRole reports whether role is one of the enumerated role values.
func IsValidRole(role string) bool {
	for _, r := range ValidRoles {
		if role == r {
			return true
		}
	}
	return false
}

// User is an account identity. Password holds the bcrypt digest and is
// never serialized into a response.
type User struct {
	ID        string    `json:"user_id" db:"user_id"`
	Username  string    `json:"username" db:"username"`
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"-" db:"password"`
	Role      string    `json:"role" db:"role"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
