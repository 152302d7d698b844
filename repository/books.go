package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/emzola/bookcritic/data"
)

type books interface {
	GetAllBooks(ctx context.Context) ([]*data.Book, error)
	GetBook(ctx context.Context, ID int64) (*data.Book, error)
}

const bookColumns = `book_id, book_name, author_name, year_pub,
		rating_1, rating_2, rating_3, rating_4, rating_5, img_url`

type rowScanner interface {
	Scan(dest ...any) error
}

// scanBook reads a row selected with bookColumns. Count and Average are always
// derived from the buckets.
func scanBook(row rowScanner) (*data.Book, error) {
	var (
		book    data.Book
		buckets [data.MaxStars]int64
	)
	err := row.Scan(
		&book.ID,
		&book.Name,
		&book.AuthorName,
		&book.YearPublished,
		&buckets[0],
		&buckets[1],
		&buckets[2],
		&buckets[3],
		&buckets[4],
		&book.ImageURL,
	)
	if err != nil {
		return nil, err
	}
	book.Rating = data.NewRating(buckets)
	return &book, nil
}

// GetAllBooks retrieves every book record ordered by ID.
func (r *repository) GetAllBooks(ctx context.Context) ([]*data.Book, error) {
	query := `
		SELECT ` + bookColumns + `
		FROM books
		ORDER BY book_id`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	books := []*data.Book{}
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, book)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return books, nil
}

// GetBook retrieves a book record by its ID.
func (r *repository) GetBook(ctx context.Context, ID int64) (*data.Book, error) {
	if ID < 1 {
		return nil, ErrRecordNotFound
	}
	query := `
		SELECT ` + bookColumns + `
		FROM books
		WHERE book_id = $1`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	book, err := scanBook(r.db.QueryRowContext(ctx, query, ID))
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return book, nil
}

// lockBook reads a book inside tx and holds its row lock until tx ends.
// FOR NO KEY UPDATE does not conflict with the KEY SHARE lock taken by the
// foreign key check on reviews, so concurrent submissions queue here instead
// of deadlocking.
func lockBook(ctx context.Context, tx *sql.Tx, ID int64) (*data.Book, error) {
	query := `
		SELECT ` + bookColumns + `
		FROM books
		WHERE book_id = $1
		FOR NO KEY UPDATE`
	book, err := scanBook(tx.QueryRowContext(ctx, query, ID))
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return book, nil
}

// writeRating stores a book's histogram together with its derived values.
func writeRating(ctx context.Context, tx *sql.Tx, ID int64, rating data.Rating) error {
	query := `
		UPDATE books
		SET rating_1 = $2, rating_2 = $3, rating_3 = $4, rating_4 = $5, rating_5 = $6,
			ratings_count = $7, avg_rating = $8
		WHERE book_id = $1`
	args := []any{
		ID,
		rating.Buckets[0],
		rating.Buckets[1],
		rating.Buckets[2],
		rating.Buckets[3],
		rating.Buckets[4],
		rating.Count,
		rating.Average,
	}
	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
