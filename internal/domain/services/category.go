package services

import (
	"context"

	"github.com/Debasmita-Giri/blog-api/internal/domain/models"
)

// CreateCategoryRequest represents one item of a category create call.
type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateCategoryRequest represents a partial category update.
type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// CategoryService defines business logic operations for categories.
type CategoryService interface {
	// CreateCategories creates each item in order. Each item is validated
	// independently; the first failure aborts the call without rolling
	// back items already created in the same batch.
	CreateCategories(ctx context.Context, items []CreateCategoryRequest) ([]models.Category, error)

	// ListCategories retrieves all categories.
	ListCategories(ctx context.Context) ([]models.Category, error)

	// GetCategory retrieves a category. The id is the raw path segment
	// and is validated as a numeric ID.
	GetCategory(ctx context.Context, id string) (*models.Category, error)

	// UpdateCategory applies a partial update and returns the updated row.
	UpdateCategory(ctx context.Context, id string, req *UpdateCategoryRequest) (*models.Category, error)

	// DeleteCategory removes a category.
	DeleteCategory(ctx context.Context, id string) error
}
