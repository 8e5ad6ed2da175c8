package handler

import (
	"log/slog"
	"net/http"

	"github.com/Debasmita-Giri/blog-api/internal/domain/services"
	"github.com/Debasmita-Giri/blog-api/internal/httputil"
)

// UserHandler handles user HTTP requests.
type UserHandler struct {
	userService services.UserService
	logger      *slog.Logger
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService services.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// CreateUser registers a new user
// POST /api/user
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req services.CreateUserRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.userService.CreateUser(r.Context(), &req)
	if err != nil {
		handleError(w, err, "Error creating user")
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, "User created successfully", user)
}

// ListUsers retrieves all users
// GET /api/user
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		handleError(w, err, "Error fetching users")
		return
	}

	httputil.RespondJSON(w, http.StatusOK, "Users fetched successfully", users)
}

// GetUser retrieves a user by ID
// GET /api/user/{id}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.GetUser(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, err, "Error fetching user")
		return
	}

	httputil.RespondJSON(w, http.StatusOK, "User fetched successfully", user)
}

// UpdateUser applies a partial update to a user
// PUT /api/user/{id}
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	caller, ok := httputil.GetIdentity(r)
	if !ok {
		httputil.RespondError(w, http.StatusUnauthorized, "Access token is required")
		return
	}

	var req services.UpdateUserRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.userService.UpdateUser(r.Context(), r.PathValue("id"), caller, &req); err != nil {
		handleError(w, err, "Error updating user")
		return
	}

	httputil.RespondJSON(w, http.StatusOK, "User updated successfully", nil)
}

// DeleteUser removes a user
// DELETE /api/user/{id}
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.userService.DeleteUser(r.Context(), r.PathValue("id")); err != nil {
		handleError(w, err, "Error deleting user")
		return
	}

	httputil.RespondNoContent(w)
}

// Login verifies credentials and returns a signed token
// POST /api/user/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req services.LoginRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.userService.Login(r.Context(), &req)
	if err != nil {
		handleError(w, err, "Error logging user")
		return
	}

	httputil.RespondJSON(w, http.StatusOK, "Login successful", result)
}
