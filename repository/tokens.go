package repository

import (
	"context"
	"time"

	"github.com/emzola/bookcritic/data"
)

type tokens interface {
	CreateNewToken(ctx context.Context, userID int64, ttl time.Duration, scope string) (*data.Token, error)
	DeleteAllTokensForUser(ctx context.Context, scope string, userID int64) error
}

// CreateNewToken is a shortcut method which generates and stores a new token.
func (r *repository) CreateNewToken(ctx context.Context, userID int64, ttl time.Duration, scope string) (*data.Token, error) {
	token, err := data.GenerateToken(userID, ttl, scope)
	if err != nil {
		return nil, err
	}
	err = r.createToken(ctx, token)
	return token, err
}

func (r *repository) createToken(ctx context.Context, token *data.Token) error {
	query := `
		INSERT INTO tokens (hash, user_id, expiry, scope)
		VALUES ($1, $2, $3, $4)`
	args := []any{token.Hash, token.UserID, token.Expiry, token.Scope}
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}

// DeleteAllTokensForUser deletes all tokens for a specific user and scope.
func (r *repository) DeleteAllTokensForUser(ctx context.Context, scope string, userID int64) error {
	if userID < 1 {
		return ErrRecordNotFound
	}
	query := `
		DELETE FROM tokens
		WHERE scope = $1 AND user_id = $2`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	_, err := r.db.ExecContext(ctx, query, scope, userID)
	return err
}
