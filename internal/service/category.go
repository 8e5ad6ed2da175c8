package service

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/Debasmita-Giri/blog-api/internal/domain"
	"github.com/Debasmita-Giri/blog-api/internal/domain/models"
	"github.com/Debasmita-Giri/blog-api/internal/domain/repositories"
	"github.com/Debasmita-Giri/blog-api/internal/domain/services"
)

// categoryService implements the CategoryService interface.
type categoryService struct {
	categoryRepo repositories.CategoryRepository
	txManager    repositories.TransactionManager
	logger       *slog.Logger
}

// NewCategoryService creates a new category service.
func NewCategoryService(
	categoryRepo repositories.CategoryRepository,
	txManager repositories.TransactionManager,
	logger *slog.Logger,
) services.CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// CreateCategories creates each item in order. Items are validated and
// inserted independently; the first failure aborts the loop and the
// call, leaving earlier inserts from the same batch in place.
func (s *categoryService) CreateCategories(ctx context.Context, items []services.CreateCategoryRequest) ([]models.Category, error) {
	created := []models.Category{}
	for _, item := range items {
		name := strings.TrimSpace(item.Name)
		description := strings.TrimSpace(item.Description)

		if name == "" || description == "" {
			return nil, &domain.ValidationError{Message: "Category name and description are required and cannot be blank"}
		}

		category := &models.Category{Name: name, Description: description}
		if err := s.categoryRepo.Create(ctx, category); err != nil {
			return nil, err
		}
		created = append(created, *category)
	}

	s.logger.Info("categories created", "count", len(created))

	return created, nil
}

// ListCategories retrieves all categories.
func (s *categoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, &domain.NotFoundError{Message: "No categories found"}
	}

	return categories, nil
}

// GetCategory retrieves a category by its numeric ID.
func (s *categoryService) GetCategory(ctx context.Context, id string) (*models.Category, error) {
	categoryID, err := strconv.Atoi(id)
	if err != nil {
		return nil, &domain.ValidationError{Message: "Invalid category ID"}
	}

	category, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, &domain.NotFoundError{Message: "Category not found"}
	}

	return category, nil
}

// UpdateCategory applies a partial update and returns the updated row.
// The duplicate-name pre-check, update, and refetch share a transaction.
func (s *categoryService) UpdateCategory(ctx context.Context, id string, req *services.UpdateCategoryRequest) (*models.Category, error) {
	categoryID, err := strconv.Atoi(id)
	if err != nil {
		return nil, &domain.ValidationError{Message: "Invalid category ID"}
	}

	name := trimmed(req.Name)
	description := trimmed(req.Description)
	if name == nil && description == nil {
		return nil, &domain.ValidationError{Message: "At least one field (name or description) must be provided"}
	}

	var updated *models.Category
	err = s.txManager.ExecTx(ctx, func(ctx context.Context) error {
		if name != nil {
			existing, err := s.categoryRepo.GetByName(ctx, *name)
			if err != nil {
				return err
			}
			if existing != nil && existing.ID != categoryID {
				return domain.NewConflictError("name")
			}
		}

		patch := repositories.CategoryPatch{
			Name:        name,
			Description: description,
		}

		affected, err := s.categoryRepo.Update(ctx, categoryID, patch)
		if err != nil {
			return err
		}
		if affected == 0 {
			return &domain.NotFoundError{Message: "Category not found"}
		}

		updated, err = s.categoryRepo.GetByID(ctx, categoryID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("category updated", "id", categoryID)

	return updated, nil
}

// DeleteCategory removes a category after an existence check, in one
// transaction.
func (s *categoryService) DeleteCategory(ctx context.Context, id string) error {
	categoryID, err := strconv.Atoi(id)
	if err != nil {
		return &domain.ValidationError{Message: "Invalid category ID"}
	}

	err = s.txManager.ExecTx(ctx, func(ctx context.Context) error {
		category, err := s.categoryRepo.GetByID(ctx, categoryID)
		if err != nil {
			return err
		}
		if category == nil {
			return &domain.NotFoundError{Message: "Category not found"}
		}

		_, err = s.categoryRepo.Delete(ctx, categoryID)
		return err
	})
	if err != nil {
		return err
	}

	s.logger.Info("category deleted", "id", categoryID)

	return nil
}
