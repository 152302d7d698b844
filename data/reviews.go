package data

import (
	"strings"
	"time"

	"github.com/emzola/bookcritic/internal/validator"
)

// Review limits.
const (
	MaxReviewTitleBytes   = 255
	MaxReviewContentBytes = 10000
)

// Review defines a book review. Reviews are never edited after creation; only
// Likes changes.
type Review struct {
	ID             int64     `json:"id"`
	BookID         int64     `json:"book_id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	Rating         int       `json:"rating"`
	Likes          int64     `json:"likes"`
	Username       string    `json:"username"`
	ProfilePicture string    `json:"profile_picture,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// ValidateReview checks the fields a reader supplies when submitting a review.
func ValidateReview(v *validator.Validator, review *Review) {
	v.Check(validator.NotBlank(review.Title), "title", "must be provided")
	v.Check(len(review.Title) <= MaxReviewTitleBytes, "title", "must not be more than 255 bytes long")
	v.Check(validator.NotBlank(review.Content), "content", "must be provided")
	v.Check(len(review.Content) <= MaxReviewContentBytes, "content", "must not be more than 10000 bytes long")
	v.Check(ValidStars(review.Rating), "rating", "must be between 1 and 5")
	v.Check(strings.TrimSpace(review.Username) != "", "username", "must be provided")
}
