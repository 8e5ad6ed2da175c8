package handler

import (
	"log/slog"
	"net/http"

	"github.com/Debasmita-Giri/blog-api/internal/domain/services"
	"github.com/Debasmita-Giri/blog-api/internal/httputil"
)

// PostHandler handles post HTTP requests.
type PostHandler struct {
	postService services.PostService
	logger      *slog.Logger
}

// NewPostHandler creates a new post handler.
func NewPostHandler(postService services.PostService, logger *slog.Logger) *PostHandler {
	return &PostHandler{
		postService: postService,
		logger:      logger,
	}
}

// CreatePost creates a post authored by the caller
// POST /api/post
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	caller, ok := httputil.GetIdentity(r)
	if !ok {
		httputil.RespondError(w, http.StatusUnauthorized, "Access token is required")
		return
	}

	var req services.CreatePostRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	post, err := h.postService.CreatePost(r.Context(), caller.UserID, &req)
	if err != nil {
		handleError(w, err, "Error creating post")
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, "Post created successfully", post)
}

// ListPosts retrieves all posts
// GET /api/post
func (h *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.postService.ListPosts(r.Context())
	if err != nil {
		handleError(w, err, "Error fetching posts")
		return
	}

	httputil.RespondJSON(w, http.StatusOK, "Posts fetched successfully", posts)
}

// GetPost retrieves a post by ID
// GET /api/post/{id}
func (h *PostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.postService.GetPost(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, err, "Error fetching posts")
		return
	}

	httputil.RespondJSON(w, http.StatusOK, "Post fetched successfully", post)
}

// ListPostsByCategory retrieves all posts in a category
// GET /api/post/category/{id}
func (h *PostHandler) ListPostsByCategory(w http.ResponseWriter, r *http.Request) {
	posts, err := h.postService.ListPostsByCategory(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, err, "Error fetching posts")
		return
	}

	httputil.RespondJSON(w, http.StatusOK, "Posts fetched successfully", posts)
}

// UpdatePost applies a partial update to a post
// PUT /api/post/{id}
func (h *PostHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	caller, ok := httputil.GetIdentity(r)
	if !ok {
		httputil.RespondError(w, http.StatusUnauthorized, "Access token is required")
		return
	}

	var req services.UpdatePostRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.postService.UpdatePost(r.Context(), r.PathValue("id"), caller, &req); err != nil {
		handleError(w, err, "Error updating post")
		return
	}

	httputil.RespondJSON(w, http.StatusOK, "Post updated successfully", nil)
}

// DeletePost removes a post
// DELETE /api/post/{id}
func (h *PostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	caller, ok := httputil.GetIdentity(r)
	if !ok {
		httputil.RespondError(w, http.StatusUnauthorized, "Access token is required")
		return
	}

	if err := h.postService.DeletePost(r.Context(), r.PathValue("id"), caller); err != nil {
		handleError(w, err, "Error deleting post")
		return
	}

	httputil.RespondNoContent(w)
}
