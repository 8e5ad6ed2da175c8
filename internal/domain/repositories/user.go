package repositories

import (
	"context"

	"github.com/Debasmita-Giri/blog-api/internal/domain/models"
)

// UserPatch holds the updatable user fields; nil means "leave unchanged".
// Password, when set, must already be hashed.
type UserPatch struct {
	Username *string
	Password *string
	Email    *string
	Role     *string
}

// UserRepository defines data access operations for users.
type UserRepository interface {
	// Create inserts a new user and fills the generated ID and timestamps.
	Create(ctx context.Context, user *models.User) error

	// GetByID retrieves a user by ID.
	GetByID(ctx context.Context, id string) (*models.User, error)

	// GetByUsername retrieves a user by exact username.
	GetByUsername(ctx context.Context, username string) (*models.User, error)

	// List retrieves all users.
	List(ctx context.Context) ([]models.User, error)

	// Update applies the patch and returns the number of affected rows.
	Update(ctx context.Context, id string, patch UserPatch) (int64, error)

	// Delete removes a user and returns the number of affected rows.
	Delete(ctx context.Context, id string) (int64, error)
}
