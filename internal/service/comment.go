package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/Debasmita-Giri/blog-api/internal/domain"
	"github.com/Debasmita-Giri/blog-api/internal/domain/models"
	"github.com/Debasmita-Giri/blog-api/internal/domain/repositories"
	"github.com/Debasmita-Giri/blog-api/internal/domain/services"
)

// commentService implements the CommentService interface.
type commentService struct {
	commentRepo repositories.CommentRepository
	postRepo    repositories.PostRepository
	txManager   repositories.TransactionManager
	logger      *slog.Logger
}

// NewCommentService creates a new comment service.
func NewCommentService(
	commentRepo repositories.CommentRepository,
	postRepo repositories.PostRepository,
	txManager repositories.TransactionManager,
	logger *slog.Logger,
) services.CommentService {
	return &commentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// CreateComment attaches a comment to an existing post. The post
// reference is checked before the content so a dangling reference reports
// NotFound rather than a validation failure.
func (s *commentService) CreateComment(ctx context.Context, authorID string, req *services.CreateCommentRequest) (*models.Comment, error) {
	if !isUUID(req.PostID) {
		return nil, &domain.ValidationError{Message: "Invalid post ID"}
	}

	post, err := s.postRepo.GetByID(ctx, req.PostID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, &domain.NotFoundError{Message: "Post not found"}
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, &domain.ValidationError{Message: "Content is required"}
	}

	comment := &models.Comment{
		PostID:   req.PostID,
		AuthorID: authorID,
		Content:  content,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	s.logger.Info("comment created",
		"id", comment.ID,
		"post_id", comment.PostID,
		"author_id", authorID,
	)

	return comment, nil
}

// ListCommentsByPost retrieves all comments on a post.
func (s *commentService) ListCommentsByPost(ctx context.Context, postID string) ([]models.Comment, error) {
	if !isUUID(postID) {
		return nil, &domain.ValidationError{Message: "Invalid post ID"}
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, &domain.NotFoundError{Message: "Post not found"}
	}

	comments, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if len(comments) == 0 {
		return nil, &domain.NotFoundError{Message: "No comments found for this post"}
	}

	return comments, nil
}

// GetComment retrieves a comment by ID.
func (s *commentService) GetComment(ctx context.Context, id string) (*models.Comment, error) {
	if !isUUID(id) {
		return nil, &domain.ValidationError{Message: "Invalid comment ID"}
	}

	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, &domain.NotFoundError{Message: "Comment not found"}
	}

	return comment, nil
}

// UpdateComment replaces a comment's content. Content validation runs
// before the existence lookup; the lookup, ownership check, and write
// share one transaction.
func (s *commentService) UpdateComment(ctx context.Context, id string, caller models.Identity, req *services.UpdateCommentRequest) (*models.Comment, error) {
	if !isUUID(id) {
		return nil, &domain.ValidationError{Message: "Invalid comment ID"}
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, &domain.ValidationError{Message: "Content is required"}
	}

	var updated *models.Comment
	err := s.txManager.ExecTx(ctx, func(ctx context.Context) error {
		comment, err := s.commentRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if comment == nil {
			return &domain.NotFoundError{Message: "Comment not found"}
		}

		if caller.UserID != comment.AuthorID && !caller.IsAdmin() {
			return &domain.ForbiddenError{Message: "You are not authorized to update this comment"}
		}

		affected, err := s.commentRepo.UpdateContent(ctx, id, content)
		if err != nil {
			return err
		}
		if affected == 0 {
			return &domain.NotFoundError{Message: "Comment not found"}
		}

		updated, err = s.commentRepo.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("comment updated", "id", id, "by", caller.UserID)

	return updated, nil
}

// DeleteComment removes a comment. The comment author, an admin, or the
// parent post's author (moderating their own post) may delete.
func (s *commentService) DeleteComment(ctx context.Context, id string, caller models.Identity) error {
	if !isUUID(id) {
		return &domain.ValidationError{Message: "Invalid comment ID"}
	}

	err := s.txManager.ExecTx(ctx, func(ctx context.Context) error {
		comment, err := s.commentRepo.GetByIDWithPostAuthor(ctx, id)
		if err != nil {
			return err
		}
		if comment == nil {
			return &domain.NotFoundError{Message: "Comment not found"}
		}

		if caller.UserID != comment.AuthorID && !caller.IsAdmin() && caller.UserID != comment.PostAuthorID {
			return &domain.ForbiddenError{Message: "You are not authorized to delete this comment"}
		}

		_, err = s.commentRepo.Delete(ctx, id)
		return err
	})
	if err != nil {
		return err
	}

	s.logger.Info("comment deleted", "id", id, "by", caller.UserID)

	return nil
}
