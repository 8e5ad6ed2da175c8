package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/Debasmita-Giri/blog-api/internal/auth"
	"github.com/Debasmita-Giri/blog-api/internal/domain"
	"github.com/Debasmita-Giri/blog-api/internal/domain/models"
	"github.com/Debasmita-Giri/blog-api/internal/domain/repositories"
	"github.com/Debasmita-Giri/blog-api/internal/domain/services"
)

// userService implements the UserService interface.
type userService struct {
	userRepo repositories.UserRepository
	tokens   auth.TokenIssuer
	logger   *slog.Logger
}

// NewUserService creates a new user service.
func NewUserService(
	userRepo repositories.UserRepository,
	tokens auth.TokenIssuer,
	logger *slog.Logger,
) services.UserService {
	return &userService{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

// CreateUser registers a new user.
func (s *userService) CreateUser(ctx context.Context, req *services.CreateUserRequest) (*models.User, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)
	password := strings.TrimSpace(req.Password)
	role := strings.TrimSpace(req.Role)

	if username == "" || email == "" || password == "" {
		return nil, &domain.ValidationError{Message: "Username, email, and password are required"}
	}

	if role != "" && !models.IsValidRole(role) {
		return nil, &domain.ValidationError{Message: "Invalid role specified"}
	}
	if role == "" {
		role = models.RoleUser
	}

	// Store-model field validation; distinct from uniqueness, maps to 422.
	if err := validation.Validate(email, is.Email); err != nil {
		return nil, &domain.UnprocessableError{Message: "Invalid email"}
	}

	digest, err := auth.HashPassword(password)
	if err != nil {
		return nil, &domain.InternalError{Message: "Error creating user"}
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: digest,
		Role:     role,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user created",
		"id", user.ID,
		"username", user.Username,
		"role", user.Role,
	)

	return user, nil
}

// ListUsers retrieves all users.
func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.List(ctx)
}

// GetUser retrieves a user by ID.
func (s *userService) GetUser(ctx context.Context, id string) (*models.User, error) {
	if !isUUID(id) {
		return nil, &domain.ValidationError{Message: "Invalid user ID format"}
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &domain.NotFoundError{Message: "User not found"}
	}

	return user, nil
}

// userUpdateFields is the fixed evaluation order for update validation;
// the first violation wins.
func userUpdateFields(req *services.UpdateUserRequest) []namedField {
	return []namedField{
		{"username", req.Username},
		{"password", req.Password},
		{"email", req.Email},
		{"role", req.Role},
	}
}

// UpdateUser applies a partial update. Authorization is decided from the
// target ID alone, before any field validation or store access; a
// non-existent target only surfaces after validation, as zero affected
// rows.
func (s *userService) UpdateUser(ctx context.Context, id string, caller models.Identity, req *services.UpdateUserRequest) error {
	if !isUUID(id) {
		return &domain.ValidationError{Message: "Invalid user ID format"}
	}

	if caller.UserID != id && !caller.IsAdmin() {
		return &domain.ForbiddenError{Message: "You are not authorized to update this user"}
	}

	fields := userUpdateFields(req)
	if !anyProvided(fields) {
		return &domain.ValidationError{Message: "At least one of username, password, email, or role must be provided and non-blank"}
	}
	if name, blank := firstBlank(fields, false); blank {
		return &domain.ValidationError{Message: fmt.Sprintf("%s cannot be blank", name)}
	}

	role := trimmed(req.Role)
	if role != nil && !models.IsValidRole(*role) {
		return &domain.ValidationError{Message: "Invalid role specified"}
	}

	email := trimmed(req.Email)
	if email != nil {
		if err := validation.Validate(*email, is.Email); err != nil {
			return &domain.UnprocessableError{Message: "Invalid email"}
		}
	}

	patch := repositories.UserPatch{
		Username: trimmed(req.Username),
		Email:    email,
		Role:     role,
	}
	if password := trimmed(req.Password); password != nil {
		digest, err := auth.HashPassword(*password)
		if err != nil {
			return &domain.InternalError{Message: "Error updating user"}
		}
		patch.Password = &digest
	}

	affected, err := s.userRepo.Update(ctx, id, patch)
	if err != nil {
		return err
	}
	if affected == 0 {
		return &domain.NotFoundError{Message: "User not found"}
	}

	s.logger.Info("user updated", "id", id, "by", caller.UserID)

	return nil
}

// DeleteUser removes a user; the admin-only gate lives at the route.
func (s *userService) DeleteUser(ctx context.Context, id string) error {
	if !isUUID(id) {
		return &domain.ValidationError{Message: "Invalid user ID format"}
	}

	affected, err := s.userRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return &domain.NotFoundError{Message: "User not found"}
	}

	s.logger.Info("user deleted", "id", id)

	return nil
}

// Login verifies credentials and issues a signed access token.
func (s *userService) Login(ctx context.Context, req *services.LoginRequest) (*services.LoginResult, error) {
	username := strings.TrimSpace(req.Username)
	password := strings.TrimSpace(req.Password)

	if username == "" || password == "" {
		return nil, &domain.ValidationError{Message: "Username and password are required"}
	}

	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &domain.NotFoundError{Message: "User not found"}
	}

	if !auth.VerifyPassword(req.Password, user.Password) {
		return nil, &domain.UnauthorizedError{Message: "Invalid password"}
	}

	token, err := s.tokens.Issue(models.Identity{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	})
	if err != nil {
		return nil, &domain.InternalError{Message: "Error logging user"}
	}

	s.logger.Info("user logged in", "id", user.ID, "username", user.Username)

	return &services.LoginResult{Token: token}, nil
}
