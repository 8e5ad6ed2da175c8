package repositories

import (
	"context"

	"github.com/Debasmita-Giri/blog-api/internal/domain/models"
)

// CommentRepository defines data access operations for comments.
type CommentRepository interface {
	// Create inserts a new comment and fills the generated ID and timestamp.
	Create(ctx context.Context, comment *models.Comment) error

	// GetByID retrieves a comment by ID.
	GetByID(ctx context.Context, id string) (*models.Comment, error)

	// GetByIDWithPostAuthor retrieves a comment with PostAuthorID populated
	// from the parent post, for the moderation permission check.
	GetByIDWithPostAuthor(ctx context.Context, id string) (*models.Comment, error)

	// ListByPost retrieves all comments on a post, oldest first.
	ListByPost(ctx context.Context, postID string) ([]models.Comment, error)

	// UpdateContent replaces a comment's content and returns affected rows.
	UpdateContent(ctx context.Context, id, content string) (int64, error)

	// Delete removes a comment and returns the number of affected rows.
	Delete(ctx context.Context, id string) (int64, error)
}
