package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/emzola/bookcritic/data"
	"github.com/emzola/bookcritic/internal/validator"
	"github.com/emzola/bookcritic/repository"
)

type users interface {
	RegisterUser(ctx context.Context, username string, password string, profilePicture string) (*data.User, error)
	AuthenticateUser(ctx context.Context, username string, password string) (*data.User, error)
	GetUser(ctx context.Context, userID int64) (*data.User, error)
	GetUserByUsername(ctx context.Context, username string) (*data.User, error)
}

// RegisterUser service registers a new user. The length rule applies to the
// username as typed; the stored username is lowercase.
func (s *service) RegisterUser(ctx context.Context, username string, password string, profilePicture string) (*data.User, error) {
	v := validator.New()
	data.ValidateUsername(v, username)
	data.ValidatePasswordPlaintext(v, password)
	if !v.Valid() {
		return nil, failedValidation(v.Errors)
	}
	user := &data.User{
		Username:       data.NormalizeUsername(username),
		ProfilePicture: profilePicture,
	}
	err := user.Password.Set(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	err = s.repo.RegisterUser(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateUsername):
			return nil, ErrUsernameTaken
		default:
			return nil, fmt.Errorf("register user: %w", err)
		}
	}
	return user, nil
}

// AuthenticateUser service checks a username and password pair. Unknown users
// and wrong passwords both yield ErrInvalidCredentials.
func (s *service) AuthenticateUser(ctx context.Context, username string, password string) (*data.User, error) {
	user, err := s.repo.GetUserByUsername(ctx, data.NormalizeUsername(username))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrInvalidCredentials
		default:
			return nil, fmt.Errorf("authenticate user: %w", err)
		}
	}
	match, err := user.Password.Matches(password)
	if err != nil {
		return nil, fmt.Errorf("authenticate user: %w", err)
	}
	if !match {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// GetUser service retrieves a user by ID.
func (s *service) GetUser(ctx context.Context, userID int64) (*data.User, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, fmt.Errorf("get user %d: %w", userID, err)
		}
	}
	return user, nil
}

// GetUserByUsername service retrieves a public profile. Lookups ignore case.
func (s *service) GetUserByUsername(ctx context.Context, username string) (*data.User, error) {
	user, err := s.repo.GetUserByUsername(ctx, data.NormalizeUsername(username))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, fmt.Errorf("get user %q: %w", username, err)
		}
	}
	if user.ProfilePicture == "" {
		user.ProfilePicture = s.config.Users.DefaultProfilePicture
	}
	return user, nil
}
