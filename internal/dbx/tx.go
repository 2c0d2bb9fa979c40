// Package dbx holds the transaction plumbing shared by the ledgers. Both
// *sql.DB and *sql.Tx satisfy DBTX, so one repository implementation serves
// plain reads and reservation transactions alike.
package dbx

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"
)

type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// TxFunc is the body of a transaction. It must use tx for every statement.
type TxFunc func(ctx context.Context, tx DBTX) error

// RetryBaseDelay is the first backoff step between attempts.
var RetryBaseDelay = 10 * time.Millisecond

// WithTx runs fn inside one transaction. The transaction commits only when fn
// returns nil; an error or a panic rolls it back and a panic is re-raised.
func WithTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn TxFunc) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		rbErr := tx.Rollback()
		if p := recover(); p != nil {
			panic(p)
		}
		if rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			err = errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
		}
	}()

	if err = fn(ctx, tx); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	committed = true
	return nil
}

// WithRetryTx runs fn through WithTx. A failed attempt whose error satisfies
// retryable is repeated from scratch with exponential backoff, at most
// maxRetries extra times; any other error is returned at once.
func WithRetryTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, maxRetries uint64,
	retryable func(error) bool, fn TxFunc) error {

	backoff := retry.WithMaxRetries(maxRetries, retry.NewExponential(RetryBaseDelay))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := WithTx(ctx, db, opts, fn)
		if err != nil && retryable != nil && retryable(err) {
			return retry.RetryableError(err)
		}
		return err
	})
}
