package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/emzola/bookcritic/data"
	"github.com/emzola/bookcritic/internal/validator"
	"github.com/emzola/bookcritic/repository"
)

// authenticationTokenTTL is how long a login stays valid.
const authenticationTokenTTL = 24 * time.Hour

type tokens interface {
	CreateAuthenticationToken(ctx context.Context, username string, password string) (*data.Token, error)
	GetUserForToken(ctx context.Context, tokenPlaintext string) (*data.User, error)
	DeleteAuthenticationTokens(ctx context.Context, userID int64) error
}

// CreateAuthenticationToken service logs a user in and issues a bearer token.
func (s *service) CreateAuthenticationToken(ctx context.Context, username string, password string) (*data.Token, error) {
	user, err := s.AuthenticateUser(ctx, username, password)
	if err != nil {
		return nil, err
	}
	token, err := s.repo.CreateNewToken(ctx, user.ID, authenticationTokenTTL, data.ScopeAuthentication)
	if err != nil {
		return nil, fmt.Errorf("create authentication token: %w", err)
	}
	return token, nil
}

// GetUserForToken service resolves a bearer token to its user. Malformed,
// unknown and expired tokens yield ErrInvalidCredentials.
func (s *service) GetUserForToken(ctx context.Context, tokenPlaintext string) (*data.User, error) {
	v := validator.New()
	if data.ValidateTokenPlaintext(v, tokenPlaintext); !v.Valid() {
		return nil, ErrInvalidCredentials
	}
	user, err := s.repo.GetUserForToken(ctx, data.ScopeAuthentication, tokenPlaintext)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrInvalidCredentials
		default:
			return nil, fmt.Errorf("get user for token: %w", err)
		}
	}
	return user, nil
}

// DeleteAuthenticationTokens service logs a user out everywhere.
func (s *service) DeleteAuthenticationTokens(ctx context.Context, userID int64) error {
	err := s.repo.DeleteAllTokensForUser(ctx, data.ScopeAuthentication, userID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return ErrRecordNotFound
		default:
			return fmt.Errorf("delete authentication tokens: %w", err)
		}
	}
	return nil
}
