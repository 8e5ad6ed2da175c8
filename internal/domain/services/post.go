package services

import (
	"context"

	"github.com/Debasmita-Giri/blog-api/internal/domain/models"
)

// CreatePostRequest represents a request to create a post.
type CreatePostRequest struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	Status     string `json:"status"`
	CategoryID *int   `json:"category_id"`
}

// UpdatePostRequest represents a partial post update.
type UpdatePostRequest struct {
	Title      *string `json:"title"`
	Content    *string `json:"content"`
	Status     *string `json:"status"`
	CategoryID *int    `json:"category_id"`
}

// PostService defines business logic operations for posts.
type PostService interface {
	// CreatePost creates a post authored by the caller.
	CreatePost(ctx context.Context, authorID string, req *CreatePostRequest) (*models.Post, error)

	// ListPosts retrieves all posts.
	ListPosts(ctx context.Context) ([]models.Post, error)

	// GetPost retrieves a post by ID.
	GetPost(ctx context.Context, id string) (*models.Post, error)

	// ListPostsByCategory retrieves all posts in the given category.
	// The id is the raw path segment and is validated as a numeric ID.
	ListPostsByCategory(ctx context.Context, categoryID string) ([]models.Post, error)

	// UpdatePost applies a partial update. Only the author or an admin
	// may update a post.
	UpdatePost(ctx context.Context, id string, caller models.Identity, req *UpdatePostRequest) error

	// DeletePost removes a post. Only the author or an admin may delete.
	DeletePost(ctx context.Context, id string, caller models.Identity) error
}
