package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/emzola/bookcritic/data"
)

type reviews interface {
	CreateReview(ctx context.Context, review *data.Review) (*data.Book, error)
	GetAllReviewsForBook(ctx context.Context, bookID int64, defaultPicture string) ([]*data.Review, error)
	IncrementReviewLikes(ctx context.Context, reviewID int64) (int64, error)
}

// CreateReview inserts review and folds its star rating into the book's
// histogram in a single transaction, returning the book as committed. A second
// review of the same book by the same reader fails with ErrDuplicateRecord and
// leaves the book untouched. On success review.ID, review.Likes and
// review.CreatedAt are set.
func (r *repository) CreateReview(ctx context.Context, review *data.Review) (*data.Book, error) {
	if !data.ValidStars(review.Rating) {
		return nil, data.ErrInvalidStars
	}
	insert := `
		INSERT INTO reviews (book_id, title, content, review_rating, username)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING review_id, likes, created_at`
	args := []any{review.BookID, review.Title, review.Content, review.Rating, review.Username}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var book *data.Book
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		current, err := lockBook(ctx, tx, review.BookID)
		if err != nil {
			return err
		}
		err = tx.QueryRowContext(ctx, insert, args...).Scan(&review.ID, &review.Likes, &review.CreatedAt)
		if err != nil {
			if isUniqueViolation(err, constraintReviewPerReader) {
				return ErrDuplicateRecord
			}
			return err
		}
		next, err := current.Rating.Add(review.Rating)
		if err != nil {
			return err
		}
		if err := writeRating(ctx, tx, current.ID, next); err != nil {
			return err
		}
		current.Rating = next
		book = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return book, nil
}

// GetAllReviewsForBook retrieves the reviews of a book, oldest first. Each
// review carries its author's profile picture, or defaultPicture when the
// author has none.
func (r *repository) GetAllReviewsForBook(ctx context.Context, bookID int64, defaultPicture string) ([]*data.Review, error) {
	query := `
		SELECT r.review_id, r.book_id, r.title, r.content, r.review_rating, r.likes, r.username, r.created_at,
			COALESCE(NULLIF(u.profile_picture_link, ''), $2)
		FROM reviews r
		LEFT JOIN users u ON u.username = r.username
		WHERE r.book_id = $1
		ORDER BY r.review_id`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query, bookID, defaultPicture)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	reviews := []*data.Review{}
	for rows.Next() {
		var review data.Review
		err := rows.Scan(
			&review.ID,
			&review.BookID,
			&review.Title,
			&review.Content,
			&review.Rating,
			&review.Likes,
			&review.Username,
			&review.CreatedAt,
			&review.ProfilePicture,
		)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, &review)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return reviews, nil
}

// IncrementReviewLikes adds one like to a review and returns the new count.
// The increment and the read happen in one statement, so concurrent callers
// never lose an update.
func (r *repository) IncrementReviewLikes(ctx context.Context, reviewID int64) (int64, error) {
	if reviewID < 1 {
		return 0, ErrRecordNotFound
	}
	query := `
		UPDATE reviews
		SET likes = likes + 1
		WHERE review_id = $1
		RETURNING likes`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	var likes int64
	err := r.db.QueryRowContext(ctx, query, reviewID).Scan(&likes)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return 0, ErrRecordNotFound
		default:
			return 0, err
		}
	}
	return likes, nil
}
