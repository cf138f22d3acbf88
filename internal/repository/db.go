package repository

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/lib/pq"

	"travel-bookings/internal/errors"
)

// SQLExecutor represents both sql.DB and sql.Tx
type SQLExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// DB represents a database that can begin transactions
type DB interface {
	SQLExecutor
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

// Ensure sql.DB implements DB interface
var _ DB = (*sql.DB)(nil)

// TxWrapper wraps sql.Tx to implement SQLExecutor
type TxWrapper struct {
	*sql.Tx
}

func (t *TxWrapper) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return t.Tx.ExecContext(ctx, query, args...)
}

func (t *TxWrapper) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return t.Tx.QueryContext(ctx, query, args...)
}

func (t *TxWrapper) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return t.Tx.QueryRowContext(ctx, query, args...)
}

// Postgres SQLSTATE codes the repositories care about.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgSerializationFail   = "40001"
	pgDeadlockDetected    = "40P01"
)

// classifyDBError maps driver failures onto the typed error contract:
// expired deadlines become Timeout, lost races become Conflict, and
// store-enforced constraints become ConstraintViolation. Anything else is an
// internal error carrying the driver detail.
func classifyDBError(err error, message string) *errors.AppError {
	if stderrors.Is(err, context.DeadlineExceeded) {
		return errors.ErrStoreTimeout
	}

	var pqErr *pq.Error
	if stderrors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pgSerializationFail, pgDeadlockDetected:
			return errors.ErrConcurrentModification
		case pgForeignKeyViolation:
			return errors.NewAppError(errors.NotFound, "referenced row does not exist").
				WithDetails(pqErr.Detail)
		case pgUniqueViolation, pgCheckViolation:
			return errors.NewAppError(errors.ConstraintViolation, "store constraint violated").
				WithDetails(pqErr.Detail)
		}
	}

	return errors.NewAppError(errors.InternalError, message).WithDetails(err.Error())
}

// isUniqueViolation reports whether err is a unique violation on the named
// constraint; with an empty name it matches any unique violation.
func isUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if !stderrors.As(err, &pqErr) || string(pqErr.Code) != pgUniqueViolation {
		return false
	}
	return constraint == "" || pqErr.Constraint == constraint
}
