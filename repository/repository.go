package repository

import (
	"database/sql"
	"time"
)

// Repository is the review store: books, reviews, users and session tokens.
type Repository interface {
	books
	reviews
	users
	tokens
}

// queryTimeout bounds every database round trip, and every transaction as a whole.
const queryTimeout = 3 * time.Second

// repository implements Repository on PostgreSQL.
type repository struct {
	db *sql.DB
}

// New creates a new instance of Repository.
func New(db *sql.DB) *repository {
	return &repository{db: db}
}
