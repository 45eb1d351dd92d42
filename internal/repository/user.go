package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/libris/libris/internal/model"
)

// Common errors for user repository operations.
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrUsernameExists = errors.New("user name already exists")
	ErrEmailExists    = errors.New("email already exists")
)

// CreateUser inserts a new user into the directory.
// Uniqueness of both user_name (primary key) and email (partial unique
// index) is enforced by the database in the same statement, so there is
// no check-then-insert window.
func (r *Repository) CreateUser(ctx context.Context, user *model.User) error {
	query := `
		INSERT INTO users (user_name, name, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query,
		user.UserName,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.CreatedAt,
	)

	if err != nil {
		if constraint, ok := uniqueViolation(err); ok {
			if strings.Contains(constraint, "email") {
				return ErrEmailExists
			}
			return ErrUsernameExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetUserByUsername retrieves a user by their user name.
func (r *Repository) GetUserByUsername(ctx context.Context, userName string) (*model.User, error) {
	query := `
		SELECT user_name, name, email, password_hash, created_at
		FROM users
		WHERE user_name = $1
	`

	var user model.User
	err := r.pool.QueryRow(ctx, query, userName).Scan(
		&user.UserName,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	return &user, nil
}

// UserExists checks whether a user name is present in the directory.
// Token verification calls this on every request so that tokens for a
// removed user stop working immediately.
func (r *Repository) UserExists(ctx context.Context, userName string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE user_name = $1)`

	var exists bool
	err := r.pool.QueryRow(ctx, query, userName).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}

	return exists, nil
}
