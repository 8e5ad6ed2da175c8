package repositories

import (
	"context"

	"github.com/Debasmita-Giri/blog-api/internal/domain/models"
)

// PostPatch holds the updatable post fields; nil means "leave unchanged".
type PostPatch struct {
	Title      *string
	Content    *string
	Status     *string
	CategoryID *int
}

// PostRepository defines data access operations for posts.
type PostRepository interface {
	// Create inserts a new post and fills the generated ID and timestamps.
	Create(ctx context.Context, post *models.Post) error

	// GetByID retrieves a post by ID.
	GetByID(ctx context.Context, id string) (*models.Post, error)

	// List retrieves all posts, newest first.
	List(ctx context.Context) ([]models.Post, error)

	// ListByCategory retrieves all posts in a category, newest first.
	ListByCategory(ctx context.Context, categoryID int) ([]models.Post, error)

	// Update applies the patch and returns the number of affected rows.
	Update(ctx context.Context, id string, patch PostPatch) (int64, error)

	// Delete removes a post and returns the number of affected rows.
	Delete(ctx context.Context, id string) (int64, error)
}
