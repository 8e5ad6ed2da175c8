package repositories

import (
	"context"

	"github.com/Debasmita-Giri/blog-api/internal/domain/models"
)

// CategoryPatch holds the updatable category fields; nil means unchanged.
type CategoryPatch struct {
	Name        *string
	Description *string
}

// CategoryRepository defines data access operations for categories.
type CategoryRepository interface {
	// Create inserts a new category and fills the generated numeric ID.
	Create(ctx context.Context, category *models.Category) error

	// GetByID retrieves a category by numeric ID.
	GetByID(ctx context.Context, id int) (*models.Category, error)

	// GetByName retrieves a category by exact name, or nil when absent.
	GetByName(ctx context.Context, name string) (*models.Category, error)

	// List retrieves all categories.
	List(ctx context.Context) ([]models.Category, error)

	// Update applies the patch and returns the number of affected rows.
	Update(ctx context.Context, id int, patch CategoryPatch) (int64, error)

	// Delete removes a category and returns the number of affected rows.
	Delete(ctx context.Context, id int) (int64, error)
}
