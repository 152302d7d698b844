package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/emzola/bookcritic/data"
	"github.com/emzola/bookcritic/internal/metrics"
	"github.com/emzola/bookcritic/internal/validator"
	"github.com/emzola/bookcritic/repository"
)

type reviews interface {
	SubmitReview(ctx context.Context, bookID int64, title string, content string, rating int, username string) (*data.Review, *data.Book, error)
	ListReviews(ctx context.Context, bookID int64) ([]*data.Review, error)
	IncrementLikes(ctx context.Context, reviewID int64) (int64, error)
}

// SubmitReview service stores a new review and folds its rating into the
// book's histogram, returning the review and the book as committed. Content is
// sanitized before it is stored. A reader gets one review per book; a second
// attempt returns ErrDuplicateReview and changes nothing.
func (s *service) SubmitReview(ctx context.Context, bookID int64, title string, content string, rating int, username string) (*data.Review, *data.Book, error) {
	review := &data.Review{
		BookID:   bookID,
		Title:    strings.TrimSpace(title),
		Content:  strings.TrimSpace(content),
		Rating:   rating,
		Username: username,
	}
	v := validator.New()
	if data.ValidateReview(v, review); !v.Valid() {
		metrics.RecordReviewSubmission(metrics.OutcomeInvalid)
		return nil, nil, failedValidation(v.Errors)
	}
	review.Content = s.filter.Sanitize(review.Content)

	book, err := s.repo.CreateReview(ctx, review)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateRecord):
			metrics.RecordReviewSubmission(metrics.OutcomeDuplicate)
			s.logger.PrintInfo("duplicate review rejected", map[string]string{
				"book_id":  strconv.FormatInt(bookID, 10),
				"username": username,
			})
			return nil, nil, ErrDuplicateReview
		case errors.Is(err, repository.ErrRecordNotFound):
			metrics.RecordReviewSubmission(metrics.OutcomeNotFound)
			return nil, nil, ErrRecordNotFound
		case errors.Is(err, data.ErrInvalidStars):
			metrics.RecordReviewSubmission(metrics.OutcomeInvalid)
			return nil, nil, failedValidation(map[string]string{"rating": "must be between 1 and 5"})
		default:
			metrics.RecordReviewSubmission(metrics.OutcomeError)
			return nil, nil, fmt.Errorf("submit review for book %d: %w", bookID, err)
		}
	}
	metrics.RecordReviewSubmission(metrics.OutcomeCreated)
	return review, book, nil
}

// ListReviews service retrieves the reviews of a book. A book without
// reviews yields an empty slice; an unknown book yields ErrRecordNotFound.
func (s *service) ListReviews(ctx context.Context, bookID int64) ([]*data.Review, error) {
	_, err := s.repo.GetBook(ctx, bookID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, fmt.Errorf("list reviews for book %d: %w", bookID, err)
		}
	}
	reviews, err := s.repo.GetAllReviewsForBook(ctx, bookID, s.config.Users.DefaultProfilePicture)
	if err != nil {
		return nil, fmt.Errorf("list reviews for book %d: %w", bookID, err)
	}
	return reviews, nil
}

// IncrementLikes service adds a like to a review and returns the new count.
func (s *service) IncrementLikes(ctx context.Context, reviewID int64) (int64, error) {
	likes, err := s.repo.IncrementReviewLikes(ctx, reviewID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return 0, ErrRecordNotFound
		default:
			return 0, fmt.Errorf("like review %d: %w", reviewID, err)
		}
	}
	metrics.RecordLike()
	return likes, nil
}
