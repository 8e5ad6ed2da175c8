package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Debasmita-Giri/blog-api/internal/domain"
	"github.com/Debasmita-Giri/blog-api/internal/domain/models"
	"github.com/Debasmita-Giri/blog-api/internal/domain/repositories"
)

// userUniqueColumns are the columns a unique violation on users can name.
var userUniqueColumns = []string{"username", "email"}

// PostgresUserRepository implements the UserRepository interface.
type PostgresUserRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewUserRepository creates a new user repository.
func NewUserRepository(config *RepositoryConfig) repositories.UserRepository {
	return &PostgresUserRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create inserts a new user. Uniqueness of username and email is enforced
// by the store; violations surface as ConflictError naming the column.
func (r *PostgresUserRepository) Create(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, username, email, password, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`, r.tables.Users)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		user.ID,
		user.Username,
		user.Email,
		user.Password,
		user.Role,
	).Scan(&user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if IsPgDuplicateError(err) {
			return domain.NewConflictError(uniqueViolationFields(err, userUniqueColumns...)...)
		}
		return &domain.InternalError{Message: "Database error"}
	}

	return nil
}

// GetByID retrieves a user by ID. Returns (nil, nil) when absent.
func (r *PostgresUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.getOne(ctx, "user_id", id)
}

// GetByUsername retrieves a user by username. Returns (nil, nil) when absent.
func (r *PostgresUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getOne(ctx, "username", username)
}

func (r *PostgresUserRepository) getOne(ctx context.Context, column, value string) (*models.User, error) {
	query := fmt.Sprintf(`
		SELECT user_id, username, email, password, role, created_at, updated_at
		FROM %s
		WHERE %s = $1
	`, r.tables.Users, column)

	var user models.User
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, value).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.Password,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, nil
		}
		return nil, &domain.InternalError{Message: "Database error"}
	}

	return &user, nil
}

// List retrieves all users, oldest first.
func (r *PostgresUserRepository) List(ctx context.Context) ([]models.User, error) {
	query := fmt.Sprintf(`
		SELECT user_id, username, email, password, role, created_at, updated_at
		FROM %s
		ORDER BY created_at
	`, r.tables.Users)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query)
	if err != nil {
		return nil, &domain.InternalError{Message: "Database error"}
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var user models.User
		err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.Email,
			&user.Password,
			&user.Role,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
		if err != nil {
			return nil, &domain.InternalError{Message: "Database error"}
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, &domain.InternalError{Message: "Database error"}
	}

	return users, nil
}

// Update applies the patch and returns the number of affected rows.
func (r *PostgresUserRepository) Update(ctx context.Context, id string, patch repositories.UserPatch) (int64, error) {
	set := []string{}
	args := []any{}

	appendSet := func(column string, value string) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Username != nil {
		appendSet("username", *patch.Username)
	}
	if patch.Password != nil {
		appendSet("password", *patch.Password)
	}
	if patch.Email != nil {
		appendSet("email", *patch.Email)
	}
	if patch.Role != nil {
		appendSet("role", *patch.Role)
	}
	if len(set) == 0 {
		return 0, nil
	}
	set = append(set, "updated_at = NOW()")

	args = append(args, id)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE user_id = $%d",
		r.tables.Users, strings.Join(set, ", "), len(args))

	executor := GetExecutor(ctx, r.pool)
	tag, err := executor.Exec(ctx, query, args...)
	if err != nil {
		if IsPgDuplicateError(err) {
			return 0, domain.NewConflictError(uniqueViolationFields(err, userUniqueColumns...)...)
		}
		return 0, &domain.InternalError{Message: "Database error"}
	}

	return tag.RowsAffected(), nil
}

// Delete removes a user; posts and comments cascade via foreign keys.
func (r *PostgresUserRepository) Delete(ctx context.Context, id string) (int64, error) {
	query := fmt.Sprintf("DELETE FROM %s WHERE user_id = $1", r.tables.Users)

	executor := GetExecutor(ctx, r.pool)
	tag, err := executor.Exec(ctx, query, id)
	if err != nil {
		return 0, &domain.InternalError{Message: "Database error"}
	}

	return tag.RowsAffected(), nil
}
