package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Debasmita-Giri/blog-api/internal/domain/services"
	"github.com/Debasmita-Giri/blog-api/internal/httputil"
)

// CategoryHandler handles category HTTP requests.
type CategoryHandler struct {
	categoryService services.CategoryService
	logger          *slog.Logger
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(categoryService services.CategoryService, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		logger:          logger,
	}
}

// CreateCategories creates one category or a batch. The body is either a
// single object or an array of objects; each item is created
// independently in order.
// POST /api/category
func (h *CategoryHandler) CreateCategories(w http.ResponseWriter, r *http.Request) {
	var raw json.RawMessage
	if err := httputil.ParseJSON(w, r, &raw); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var items []services.CreateCategoryRequest
	if err := json.Unmarshal(raw, &items); err != nil {
		var single services.CreateCategoryRequest
		if err := json.Unmarshal(raw, &single); err != nil {
			httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		items = []services.CreateCategoryRequest{single}
	}

	created, err := h.categoryService.CreateCategories(r.Context(), items)
	if err != nil {
		handleError(w, err, "Error creating category")
		return
	}

	message := "Category created successfully"
	if len(items) > 1 {
		message = "Categories created successfully"
	}

	httputil.RespondJSON(w, http.StatusCreated, message, created)
}

// ListCategories retrieves all categories
// GET /api/category
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryService.ListCategories(r.Context())
	if err != nil {
		handleError(w, err, "Error fetching categories")
		return
	}

	httputil.RespondJSON(w, http.StatusOK, "Categories fetched successfully", categories)
}

// GetCategory retrieves a category by ID
// GET /api/category/{id}
func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	category, err := h.categoryService.GetCategory(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, err, "Error fetching category")
		return
	}

	httputil.RespondJSON(w, http.StatusOK, "Category fetched successfully", category)
}

// UpdateCategory applies a partial update to a category
// PUT /api/category/{id}
func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var req services.UpdateCategoryRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.categoryService.UpdateCategory(r.Context(), r.PathValue("id"), &req)
	if err != nil {
		handleError(w, err, "Error updating category")
		return
	}

	httputil.RespondJSON(w, http.StatusOK, "Category updated successfully", category)
}

// DeleteCategory removes a category
// DELETE /api/category/{id}
func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.categoryService.DeleteCategory(r.Context(), r.PathValue("id")); err != nil {
		handleError(w, err, "Error deleting category")
		return
	}

	httputil.RespondNoContent(w)
}
