package handler

import (
	"log/slog"
	"net/http"

	"github.com/Debasmita-Giri/blog-api/internal/domain/services"
	"github.com/Debasmita-Giri/blog-api/internal/httputil"
)

// CommentHandler handles comment HTTP requests.
type CommentHandler struct {
	commentService services.CommentService
	logger         *slog.Logger
}

// NewCommentHandler creates a new comment handler.
func NewCommentHandler(commentService services.CommentService, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
		logger:         logger,
	}
}

// CreateComment attaches a comment to a post
// POST /api/comment
func (h *CommentHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	caller, ok := httputil.GetIdentity(r)
	if !ok {
		httputil.RespondError(w, http.StatusUnauthorized, "Access token is required")
		return
	}

	var req services.CreateCommentRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	comment, err := h.commentService.CreateComment(r.Context(), caller.UserID, &req)
	if err != nil {
		handleError(w, err, "Error fetching comments")
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, "Comment created successfully", comment)
}

// ListCommentsByPost retrieves comments for a post
// GET /api/comment/post/{id}
func (h *CommentHandler) ListCommentsByPost(w http.ResponseWriter, r *http.Request) {
	comments, err := h.commentService.ListCommentsByPost(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, err, "Error fetching comments")
		return
	}

	httputil.RespondJSON(w, http.StatusOK, "Comments fetched successfully", comments)
}

// GetComment retrieves a comment by ID
// GET /api/comment/{id}
func (h *CommentHandler) GetComment(w http.ResponseWriter, r *http.Request) {
	comment, err := h.commentService.GetComment(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, err, "Error fetching comments")
		return
	}

	httputil.RespondJSON(w, http.StatusOK, "Comment fetched successfully", comment)
}

// UpdateComment replaces a comment's content
// PUT /api/comment/{id}
func (h *CommentHandler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	caller, ok := httputil.GetIdentity(r)
	if !ok {
		httputil.RespondError(w, http.StatusUnauthorized, "Access token is required")
		return
	}

	var req services.UpdateCommentRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	comment, err := h.commentService.UpdateComment(r.Context(), r.PathValue("id"), caller, &req)
	if err != nil {
		handleError(w, err, "Error updating comments")
		return
	}

	httputil.RespondJSON(w, http.StatusOK, "Comment updated successfully", comment)
}

// DeleteComment removes a comment
// DELETE /api/comment/{id}
func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	caller, ok := httputil.GetIdentity(r)
	if !ok {
		httputil.RespondError(w, http.StatusUnauthorized, "Access token is required")
		return
	}

	if err := h.commentService.DeleteComment(r.Context(), r.PathValue("id"), caller); err != nil {
		handleError(w, err, "Error deleting comments")
		return
	}

	httputil.RespondNoContent(w)
}
