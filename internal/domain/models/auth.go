package models

import "github.com/golang-jwt/jwt/v5"

// Claims is the payload embedded in locally issued access tokens.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Identity is the caller identity resolved from a presented credential.
type Identity struct {
	UserID   string
	Username string
	Role     string
}

// IsAdmin reports whether the caller holds the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
