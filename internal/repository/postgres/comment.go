package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Debasmita-Giri/blog-api/internal/domain"
	"github.com/Debasmita-Giri/blog-api/internal/domain/models"
	"github.com/Debasmita-Giri/blog-api/internal/domain/repositories"
)

// PostgresCommentRepository implements the CommentRepository interface.
type PostgresCommentRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewCommentRepository creates a new comment repository.
func NewCommentRepository(config *RepositoryConfig) repositories.CommentRepository {
	return &PostgresCommentRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create inserts a new comment. The post reference is validated by the
// service before this call; a foreign key race still surfaces as 422.
func (r *PostgresCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if comment.ID == "" {
		comment.ID = uuid.NewString()
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (comment_id, post_id, author_id, content)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`, r.tables.Comments)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		comment.ID,
		comment.PostID,
		comment.AuthorID,
		comment.Content,
	).Scan(&comment.CreatedAt)

	if err != nil {
		if IsPgForeignKeyError(err) {
			return &domain.UnprocessableError{Message: "Invalid post_id"}
		}
		return &domain.InternalError{Message: "Database error"}
	}

	return nil
}

// GetByID retrieves a comment by ID. Returns (nil, nil) when absent.
func (r *PostgresCommentRepository) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	query := fmt.Sprintf(`
		SELECT comment_id, post_id, author_id, content, created_at
		FROM %s
		WHERE comment_id = $1
	`, r.tables.Comments)

	var comment models.Comment
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id).Scan(
		&comment.ID,
		&comment.PostID,
		&comment.AuthorID,
		&comment.Content,
		&comment.CreatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, nil
		}
		return nil, &domain.InternalError{Message: "Database error"}
	}

	return &comment, nil
}

// GetByIDWithPostAuthor retrieves a comment joined with the parent post's
// author, for the moderation rule on delete. Returns (nil, nil) when absent.
func (r *PostgresCommentRepository) GetByIDWithPostAuthor(ctx context.Context, id string) (*models.Comment, error) {
	query := fmt.Sprintf(`
		SELECT c.comment_id, c.post_id, c.author_id, c.content, c.created_at, p.author_id
		FROM %s c
		JOIN %s p ON p.post_id = c.post_id
		WHERE c.comment_id = $1
	`, r.tables.Comments, r.tables.Posts)

	var comment models.Comment
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id).Scan(
		&comment.ID,
		&comment.PostID,
		&comment.AuthorID,
		&comment.Content,
		&comment.CreatedAt,
		&comment.PostAuthorID,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, nil
		}
		return nil, &domain.InternalError{Message: "Database error"}
	}

	return &comment, nil
}

// ListByPost retrieves all comments on a post, oldest first.
func (r *PostgresCommentRepository) ListByPost(ctx context.Context, postID string) ([]models.Comment, error) {
	query := fmt.Sprintf(`
		SELECT comment_id, post_id, author_id, content, created_at
		FROM %s
		WHERE post_id = $1
		ORDER BY created_at
	`, r.tables.Comments)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, postID)
	if err != nil {
		return nil, &domain.InternalError{Message: "Database error"}
	}
	defer rows.Close()

	comments := []models.Comment{}
	for rows.Next() {
		var comment models.Comment
		err := rows.Scan(
			&comment.ID,
			&comment.PostID,
			&comment.AuthorID,
			&comment.Content,
			&comment.CreatedAt,
		)
		if err != nil {
			return nil, &domain.InternalError{Message: "Database error"}
		}
		comments = append(comments, comment)
	}

	if err := rows.Err(); err != nil {
		return nil, &domain.InternalError{Message: "Database error"}
	}

	return comments, nil
}

// UpdateContent replaces a comment's content.
func (r *PostgresCommentRepository) UpdateContent(ctx context.Context, id, content string) (int64, error) {
	query := fmt.Sprintf("UPDATE %s SET content = $1 WHERE comment_id = $2", r.tables.Comments)

	executor := GetExecutor(ctx, r.pool)
	tag, err := executor.Exec(ctx, query, content, id)
	if err != nil {
		return 0, &domain.InternalError{Message: "Database error"}
	}

	return tag.RowsAffected(), nil
}

// Delete removes a comment.
func (r *PostgresCommentRepository) Delete(ctx context.Context, id string) (int64, error) {
	query := fmt.Sprintf("DELETE FROM %s WHERE comment_id = $1", r.tables.Comments)

	executor := GetExecutor(ctx, r.pool)
	tag, err := executor.Exec(ctx, query, id)
	if err != nil {
		return 0, &domain.InternalError{Message: "Database error"}
	}

	return tag.RowsAffected(), nil
}
