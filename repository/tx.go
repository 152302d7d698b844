package repository

import (
	"context"
	"database/sql"
)

// maxTxAttempts is how many times withTx runs a transaction that keeps
// failing with a retryable error.
const maxTxAttempts = 3

// withTx runs fn inside a read committed transaction and commits it if fn
// returns nil. Any error rolls the whole transaction back. Transactions that
// fail on a serialization failure or a deadlock are retried.
func (r *repository) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	var err error
	for attempt := 0; attempt < maxTxAttempts; attempt++ {
		err = r.runTx(ctx, fn)
		if err == nil || !isRetryable(err) || ctx.Err() != nil {
			return err
		}
	}
	return err
}

func (r *repository) runTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return err
	}
	// Rollback after a successful Commit is a no-op.
	defer tx.Rollback()
	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}
