package services

import (
	"context"

	"github.com/Debasmita-Giri/blog-api/internal/domain/models"
)

// CreateUserRequest represents a request to register a user.
type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UpdateUserRequest represents a partial user update. Nil fields were not
// supplied; a supplied-but-blank field is rejected by the service.
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
	Email    *string `json:"email"`
	Role     *string `json:"role"`
}

// LoginRequest represents a login attempt.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResult carries the signed access token issued on success.
type LoginResult struct {
	Token string `json:"token"`
}

// UserService defines business logic operations for users.
type UserService interface {
	// CreateUser registers a new user. The stored password is a one-way
	// digest and the role defaults to "user".
	CreateUser(ctx context.Context, req *CreateUserRequest) (*models.User, error)

	// ListUsers retrieves all users.
	ListUsers(ctx context.Context) ([]models.User, error)

	// GetUser retrieves a user by ID.
	GetUser(ctx context.Context, id string) (*models.User, error)

	// UpdateUser applies a partial update. Only the target user or an
	// admin may update a user record.
	UpdateUser(ctx context.Context, id string, caller models.Identity, req *UpdateUserRequest) error

	// DeleteUser removes a user.
	DeleteUser(ctx context.Context, id string) error

	// Login verifies credentials and issues a signed access token.
	Login(ctx context.Context, req *LoginRequest) (*LoginResult, error)
}
