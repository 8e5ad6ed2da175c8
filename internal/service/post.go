package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/Debasmita-Giri/blog-api/internal/domain"
	"github.com/Debasmita-Giri/blog-api/internal/domain/models"
	"github.com/Debasmita-Giri/blog-api/internal/domain/repositories"
	"github.com/Debasmita-Giri/blog-api/internal/domain/services"
)

// postService implements the PostService interface.
type postService struct {
	postRepo  repositories.PostRepository
	txManager repositories.TransactionManager
	logger    *slog.Logger
}

// NewPostService creates a new post service.
func NewPostService(
	postRepo repositories.PostRepository,
	txManager repositories.TransactionManager,
	logger *slog.Logger,
) services.PostService {
	return &postService{
		postRepo:  postRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// CreatePost creates a post authored by the caller.
func (s *postService) CreatePost(ctx context.Context, authorID string, req *services.CreatePostRequest) (*models.Post, error) {
	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)

	if title == "" || content == "" {
		return nil, &domain.ValidationError{Message: "Title, content are required"}
	}

	status := req.Status
	if status != "" && !models.IsValidPostStatus(status) {
		return nil, &domain.ValidationError{Message: "Invalid Post status specified"}
	}
	if status == "" {
		status = models.StatusDraft
	}

	post := &models.Post{
		AuthorID:   authorID,
		Title:      title,
		Content:    content,
		Status:     status,
		CategoryID: req.CategoryID,
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	s.logger.Info("post created",
		"id", post.ID,
		"author_id", authorID,
		"status", post.Status,
	)

	return post, nil
}

// ListPosts retrieves all posts.
func (s *postService) ListPosts(ctx context.Context) ([]models.Post, error) {
	posts, err := s.postRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, &domain.NotFoundError{Message: "No posts found"}
	}

	return posts, nil
}

// GetPost retrieves a post by ID.
func (s *postService) GetPost(ctx context.Context, id string) (*models.Post, error) {
	if !isUUID(id) {
		return nil, &domain.ValidationError{Message: "Invalid post ID"}
	}

	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, &domain.NotFoundError{Message: "Post not found"}
	}

	return post, nil
}

// ListPostsByCategory retrieves all posts in the given category.
func (s *postService) ListPostsByCategory(ctx context.Context, categoryID string) ([]models.Post, error) {
	id, err := strconv.Atoi(categoryID)
	if err != nil {
		return nil, &domain.ValidationError{Message: "Invalid post ID"}
	}

	posts, err := s.postRepo.ListByCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, &domain.NotFoundError{Message: "No Posts found for specified category"}
	}

	return posts, nil
}

// postUpdateFields is the fixed evaluation order for update validation.
func postUpdateFields(req *services.UpdatePostRequest) []namedField {
	return []namedField{
		{"title", req.Title},
		{"content", req.Content},
		{"status", req.Status},
	}
}

// UpdatePost applies a partial update. Existence and authorization are
// checked before field validation, and the whole fetch-validate-update
// sequence runs in one transaction so the row cannot change underneath.
func (s *postService) UpdatePost(ctx context.Context, id string, caller models.Identity, req *services.UpdatePostRequest) error {
	if !isUUID(id) {
		return &domain.ValidationError{Message: "Invalid post ID"}
	}

	err := s.txManager.ExecTx(ctx, func(ctx context.Context) error {
		post, err := s.postRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if post == nil {
			return &domain.NotFoundError{Message: "Post not found for update"}
		}

		if caller.UserID != post.AuthorID && !caller.IsAdmin() {
			return &domain.ForbiddenError{Message: "You are not authorized to update this post"}
		}

		fields := postUpdateFields(req)
		if !anyProvided(fields) {
			return &domain.ValidationError{Message: "At least one of title, content or status must be provided and non-blank for update"}
		}
		if name, blank := firstBlank(fields, true); blank {
			return &domain.ValidationError{Message: fmt.Sprintf("%s cannot be blank", name)}
		}

		status := trimmed(req.Status)
		if status != nil && !models.IsValidPostStatus(*status) {
			return &domain.ValidationError{Message: "Invalid Post status specified"}
		}

		patch := repositories.PostPatch{
			Title:      trimmed(req.Title),
			Content:    trimmed(req.Content),
			Status:     status,
			CategoryID: req.CategoryID,
		}

		affected, err := s.postRepo.Update(ctx, id, patch)
		if err != nil {
			return err
		}
		if affected == 0 {
			return &domain.NotFoundError{Message: "Post not found for update"}
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("post updated", "id", id, "by", caller.UserID)

	return nil
}

// DeletePost removes a post after an existence and ownership check, in
// one transaction.
func (s *postService) DeletePost(ctx context.Context, id string, caller models.Identity) error {
	if !isUUID(id) {
		return &domain.ValidationError{Message: "Invalid post ID"}
	}

	err := s.txManager.ExecTx(ctx, func(ctx context.Context) error {
		post, err := s.postRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if post == nil {
			return &domain.NotFoundError{Message: "Post not found"}
		}

		if caller.UserID != post.AuthorID && !caller.IsAdmin() {
			return &domain.ForbiddenError{Message: "You are not authorized to delete this post"}
		}

		_, err = s.postRepo.Delete(ctx, id)
		return err
	})
	if err != nil {
		return err
	}

	s.logger.Info("post deleted", "id", id, "by", caller.UserID)

	return nil
}
