package repository

import (
	"errors"

	"github.com/lib/pq"
)

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrDuplicateRecord   = errors.New("duplicate record")
	ErrDuplicateUsername = errors.New("duplicate username")
)

// Constraint names as created by the migrations.
const (
	constraintReviewPerReader = "reviews_book_id_username_key"
	constraintUsername        = "users_username_key"
)

// isUniqueViolation reports whether err is a unique_violation raised by the
// named constraint.
func isUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code.Name() == "unique_violation" && pqErr.Constraint == constraint
}

// isRetryable reports whether err aborted a transaction that can safely be run again.
func isRetryable(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	switch pqErr.Code.Name() {
	case "serialization_failure", "deadlock_detected":
		return true
	default:
		return false
	}
}
