package postgres

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Debasmita-Giri/blog-api/internal/domain"
	"github.com/Debasmita-Giri/blog-api/internal/domain/models"
	"github.com/Debasmita-Giri/blog-api/internal/domain/repositories"
)

// PostgresPostRepository implements the PostRepository interface.
type PostgresPostRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewPostRepository creates a new post repository.
func NewPostRepository(config *RepositoryConfig) repositories.PostRepository {
	return &PostgresPostRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

const postColumns = "post_id, author_id, title, content, status, category_id, created_at, updated_at"

// Create inserts a new post.
func (r *PostgresPostRepository) Create(ctx context.Context, post *models.Post) error {
	if post.ID == "" {
		post.ID = uuid.NewString()
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (post_id, author_id, title, content, status, category_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`, r.tables.Posts)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		post.ID,
		post.AuthorID,
		post.Title,
		post.Content,
		post.Status,
		post.CategoryID,
	).Scan(&post.CreatedAt, &post.UpdatedAt)

	if err != nil {
		if IsPgForeignKeyError(err) {
			return &domain.UnprocessableError{Message: "Invalid category_id"}
		}
		return &domain.InternalError{Message: "Database error"}
	}

	return nil
}

// GetByID retrieves a post by ID. Returns (nil, nil) when absent.
func (r *PostgresPostRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s WHERE post_id = $1
	`, postColumns, r.tables.Posts)

	var post models.Post
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id).Scan(
		&post.ID,
		&post.AuthorID,
		&post.Title,
		&post.Content,
		&post.Status,
		&post.CategoryID,
		&post.CreatedAt,
		&post.UpdatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, nil
		}
		return nil, &domain.InternalError{Message: "Database error"}
	}

	return &post, nil
}

// List retrieves all posts, newest first.
func (r *PostgresPostRepository) List(ctx context.Context) ([]models.Post, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s ORDER BY created_at DESC
	`, postColumns, r.tables.Posts)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query)
	if err != nil {
		return nil, &domain.InternalError{Message: "Database error"}
	}
	defer rows.Close()

	return scanPosts(rows)
}

// ListByCategory retrieves all posts in a category, newest first.
func (r *PostgresPostRepository) ListByCategory(ctx context.Context, categoryID int) ([]models.Post, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s WHERE category_id = $1 ORDER BY created_at DESC
	`, postColumns, r.tables.Posts)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, categoryID)
	if err != nil {
		return nil, &domain.InternalError{Message: "Database error"}
	}
	defer rows.Close()

	return scanPosts(rows)
}

// Update applies the patch and returns the number of affected rows.
func (r *PostgresPostRepository) Update(ctx context.Context, id string, patch repositories.PostPatch) (int64, error) {
	set := []string{}
	args := []any{}

	if patch.Title != nil {
		args = append(args, *patch.Title)
		set = append(set, "title = $"+strconv.Itoa(len(args)))
	}
	if patch.Content != nil {
		args = append(args, *patch.Content)
		set = append(set, "content = $"+strconv.Itoa(len(args)))
	}
	if patch.Status != nil {
		args = append(args, *patch.Status)
		set = append(set, "status = $"+strconv.Itoa(len(args)))
	}
	if patch.CategoryID != nil {
		args = append(args, *patch.CategoryID)
		set = append(set, "category_id = $"+strconv.Itoa(len(args)))
	}
	if len(set) == 0 {
		return 0, nil
	}
	set = append(set, "updated_at = NOW()")

	args = append(args, id)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE post_id = $%d",
		r.tables.Posts, strings.Join(set, ", "), len(args))

	executor := GetExecutor(ctx, r.pool)
	tag, err := executor.Exec(ctx, query, args...)
	if err != nil {
		if IsPgForeignKeyError(err) {
			return 0, &domain.UnprocessableError{Message: "Invalid category_id"}
		}
		return 0, &domain.InternalError{Message: "Database error"}
	}

	return tag.RowsAffected(), nil
}

// Delete removes a post; its comments cascade via foreign keys.
func (r *PostgresPostRepository) Delete(ctx context.Context, id string) (int64, error) {
	query := fmt.Sprintf("DELETE FROM %s WHERE post_id = $1", r.tables.Posts)

	executor := GetExecutor(ctx, r.pool)
	tag, err := executor.Exec(ctx, query, id)
	if err != nil {
		return 0, &domain.InternalError{Message: "Database error"}
	}

	return tag.RowsAffected(), nil
}

func scanPosts(rows pgx.Rows) ([]models.Post, error) {
	posts := []models.Post{}
	for rows.Next() {
		var post models.Post
		err := rows.Scan(
			&post.ID,
			&post.AuthorID,
			&post.Title,
			&post.Content,
			&post.Status,
			&post.CategoryID,
			&post.CreatedAt,
			&post.UpdatedAt,
		)
		if err != nil {
			return nil, &domain.InternalError{Message: "Database error"}
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, &domain.InternalError{Message: "Database error"}
	}

	return posts, nil
}
