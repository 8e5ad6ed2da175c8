package postgres

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Debasmita-Giri/blog-api/internal/domain"
	"github.com/Debasmita-Giri/blog-api/internal/domain/models"
	"github.com/Debasmita-Giri/blog-api/internal/domain/repositories"
)

// PostgresCategoryRepository implements the CategoryRepository interface.
type PostgresCategoryRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewCategoryRepository creates a new category repository.
func NewCategoryRepository(config *RepositoryConfig) repositories.CategoryRepository {
	return &PostgresCategoryRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create inserts a new category and fills the generated serial ID.
func (r *PostgresCategoryRepository) Create(ctx context.Context, category *models.Category) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (name, description)
		VALUES ($1, $2)
		RETURNING category_id
	`, r.tables.Categories)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, category.Name, category.Description).Scan(&category.ID)

	if err != nil {
		if IsPgDuplicateError(err) {
			return domain.NewConflictError(uniqueViolationFields(err, "name")...)
		}
		return &domain.InternalError{Message: "Database error"}
	}

	return nil
}

// GetByID retrieves a category by ID. Returns (nil, nil) when absent.
func (r *PostgresCategoryRepository) GetByID(ctx context.Context, id int) (*models.Category, error) {
	query := fmt.Sprintf(`
		SELECT category_id, name, description FROM %s WHERE category_id = $1
	`, r.tables.Categories)

	var category models.Category
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id).Scan(
		&category.ID,
		&category.Name,
		&category.Description,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, nil
		}
		return nil, &domain.InternalError{Message: "Database error"}
	}

	return &category, nil
}

// GetByName retrieves a category by name. Returns (nil, nil) when absent.
func (r *PostgresCategoryRepository) GetByName(ctx context.Context, name string) (*models.Category, error) {
	query := fmt.Sprintf(`
		SELECT category_id, name, description FROM %s WHERE name = $1
	`, r.tables.Categories)

	var category models.Category
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, name).Scan(
		&category.ID,
		&category.Name,
		&category.Description,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, nil
		}
		return nil, &domain.InternalError{Message: "Database error"}
	}

	return &category, nil
}

// List retrieves all categories, in ID order.
func (r *PostgresCategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	query := fmt.Sprintf(`
		SELECT category_id, name, description FROM %s ORDER BY category_id
	`, r.tables.Categories)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query)
	if err != nil {
		return nil, &domain.InternalError{Message: "Database error"}
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var category models.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.Description); err != nil {
			return nil, &domain.InternalError{Message: "Database error"}
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, &domain.InternalError{Message: "Database error"}
	}

	return categories, nil
}

// Update applies the patch and returns the number of affected rows.
func (r *PostgresCategoryRepository) Update(ctx context.Context, id int, patch repositories.CategoryPatch) (int64, error) {
	set := []string{}
	args := []any{}

	if patch.Name != nil {
		args = append(args, *patch.Name)
		set = append(set, "name = $"+strconv.Itoa(len(args)))
	}
	if patch.Description != nil {
		args = append(args, *patch.Description)
		set = append(set, "description = $"+strconv.Itoa(len(args)))
	}
	if len(set) == 0 {
		return 0, nil
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE category_id = $%d",
		r.tables.Categories, strings.Join(set, ", "), len(args))

	executor := GetExecutor(ctx, r.pool)
	tag, err := executor.Exec(ctx, query, args...)
	if err != nil {
		if IsPgDuplicateError(err) {
			return 0, domain.NewConflictError(uniqueViolationFields(err, "name")...)
		}
		return 0, &domain.InternalError{Message: "Database error"}
	}

	return tag.RowsAffected(), nil
}

// Delete removes a category; posts referencing it fall back to NULL via
// the foreign key.
func (r *PostgresCategoryRepository) Delete(ctx context.Context, id int) (int64, error) {
	query := fmt.Sprintf("DELETE FROM %s WHERE category_id = $1", r.tables.Categories)

	executor := GetExecutor(ctx, r.pool)
	tag, err := executor.Exec(ctx, query, id)
	if err != nil {
		return 0, &domain.InternalError{Message: "Database error"}
	}

	return tag.RowsAffected(), nil
}
