package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/emzola/bookcritic/data"
	"github.com/emzola/bookcritic/repository"
)

type books interface {
	ListBooks(ctx context.Context) ([]*data.Book, error)
	GetBook(ctx context.Context, bookID int64) (*data.Book, error)
}

// ListBooks service retrieves every book with its rating.
func (s *service) ListBooks(ctx context.Context) ([]*data.Book, error) {
	books, err := s.repo.GetAllBooks(ctx)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

// GetBook service retrieves the details of a book.
func (s *service) GetBook(ctx context.Context, bookID int64) (*data.Book, error) {
	book, err := s.repo.GetBook(ctx, bookID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, fmt.Errorf("get book %d: %w", bookID, err)
		}
	}
	return book, nil
}
