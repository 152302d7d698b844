package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/emzola/bookcritic/data"
)

type users interface {
	RegisterUser(ctx context.Context, user *data.User) error
	GetUserByID(ctx context.Context, ID int64) (*data.User, error)
	GetUserByUsername(ctx context.Context, username string) (*data.User, error)
	GetUserForToken(ctx context.Context, tokenScope string, tokenPlaintext string) (*data.User, error)
}

const userColumns = `users.user_id, users.username, users.password_hash, users.profile_picture_link, users.created_at`

func scanUser(row rowScanner) (*data.User, error) {
	var user data.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Password.Hash,
		&user.ProfilePicture,
		&user.CreatedAt,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return &user, nil
}

// RegisterUser registers a new user. The username must already be normalized.
func (r *repository) RegisterUser(ctx context.Context, user *data.User) error {
	query := `
		INSERT INTO users (username, password_hash, profile_picture_link)
		VALUES ($1, $2, $3)
		RETURNING user_id, created_at`
	args := []any{user.Username, user.Password.Hash, user.ProfilePicture}
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		switch {
		case isUniqueViolation(err, constraintUsername):
			return ErrDuplicateUsername
		default:
			return err
		}
	}
	return nil
}

// GetUserByID retrieves a user record by its ID.
func (r *repository) GetUserByID(ctx context.Context, ID int64) (*data.User, error) {
	if ID < 1 {
		return nil, ErrRecordNotFound
	}
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE user_id = $1`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	return scanUser(r.db.QueryRowContext(ctx, query, ID))
}

// GetUserByUsername retrieves a user record by its normalized username.
func (r *repository) GetUserByUsername(ctx context.Context, username string) (*data.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE username = $1`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	return scanUser(r.db.QueryRowContext(ctx, query, username))
}

// GetUserForToken returns the user holding an unexpired token.
func (r *repository) GetUserForToken(ctx context.Context, tokenScope string, tokenPlaintext string) (*data.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		INNER JOIN tokens
		ON users.user_id = tokens.user_id
		WHERE tokens.hash = $1
		AND tokens.scope = $2
		AND tokens.expiry > $3`
	args := []any{data.HashToken(tokenPlaintext), tokenScope, time.Now()}
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	return scanUser(r.db.QueryRowContext(ctx, query, args...))
}
