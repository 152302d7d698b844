package data

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/emzola/bookcritic/internal/validator"
	"golang.org/x/crypto/bcrypt"
)

// AnonymousUser represents a request without a valid authentication token.
var AnonymousUser = &User{}

// IsAnonymous checks if a user instance is the anonymous user.
func (u *User) IsAnonymous() bool {
	return u == AnonymousUser
}

// User defines a user model.
type User struct {
	ID             int64     `json:"id"`
	Username       string    `json:"username"`
	Password       password  `json:"-"`
	ProfilePicture string    `json:"profile_picture,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// password defines the plaintext and hashed versions of a user's password.
// Plaintext is a pointer so that an absent password can be told apart from an
// empty one.
type password struct {
	Plaintext *string
	Hash      []byte
}

// passwordCost is the bcrypt work factor.
const passwordCost = 12

// Set calculates the bcrypt hash of a plaintext password.
func (p *password) Set(plaintextPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintextPassword), passwordCost)
	if err != nil {
		return err
	}
	p.Plaintext = &plaintextPassword
	p.Hash = hash
	return nil
}

// Matches checks whether the provided plaintext password matches the stored hash.
func (p *password) Matches(plaintextPassword string) (bool, error) {
	err := bcrypt.CompareHashAndPassword(p.Hash, []byte(plaintextPassword))
	if err != nil {
		switch {
		case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
			return false, nil
		default:
			return false, err
		}
	}
	return true, nil
}

// NormalizeUsername returns the stored form of a username.
func NormalizeUsername(username string) string {
	return strings.ToLower(username)
}

// ValidateUsername checks the length of a username as typed by the user.
func ValidateUsername(v *validator.Validator, username string) {
	n := utf8.RuneCountInString(username)
	v.Check(username != "", "username", "must be provided")
	v.Check(n >= 4 && n <= 20, "username", "must be between 4 and 20 characters long")
}

// ValidatePasswordPlaintext checks a plaintext password before hashing.
func ValidatePasswordPlaintext(v *validator.Validator, password string) {
	v.Check(password != "", "password", "must be provided")
	v.Check(len(password) >= 8, "password", "must be at least 8 bytes long")
	v.Check(len(password) <= 72, "password", "must not be more than 72 bytes long")
}

// ValidateUser checks a user about to be stored.
func ValidateUser(v *validator.Validator, user *User) {
	ValidateUsername(v, user.Username)
	if user.Password.Plaintext != nil {
		ValidatePasswordPlaintext(v, *user.Password.Plaintext)
	}
	if user.Password.Hash == nil {
		panic("missing password hash for user")
	}
}
