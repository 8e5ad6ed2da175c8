package services

import (
	"context"

	"github.com/Debasmita-Giri/blog-api/internal/domain/models"
)

// CreateCommentRequest represents a request to comment on a post.
type CreateCommentRequest struct {
	PostID  string `json:"post_id"`
	Content string `json:"content"`
}

// UpdateCommentRequest represents a comment content update.
type UpdateCommentRequest struct {
	Content string `json:"content"`
}

// CommentService defines business logic operations for comments.
type CommentService interface {
	// CreateComment attaches a comment to an existing post.
	CreateComment(ctx context.Context, authorID string, req *CreateCommentRequest) (*models.Comment, error)

	// ListCommentsByPost retrieves all comments on a post.
	ListCommentsByPost(ctx context.Context, postID string) ([]models.Comment, error)

	// GetComment retrieves a comment by ID.
	GetComment(ctx context.Context, id string) (*models.Comment, error)

	// UpdateComment replaces a comment's content. Only the comment author
	// or an admin may update.
	UpdateComment(ctx context.Context, id string, caller models.Identity, req *UpdateCommentRequest) (*models.Comment, error)

	// DeleteComment removes a comment. The comment author, an admin, or
	// the parent post's author may delete.
	DeleteComment(ctx context.Context, id string, caller models.Identity) error
}
