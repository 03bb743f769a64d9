package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/puddle/v2"
)

// UserErrorKind is the user-facing error taxonomy. It is deliberately
// coarse: every storage failure collapses to Internal, and Validation is
// reserved for field-level checks.
type UserErrorKind int

const (
	KindInternal UserErrorKind = iota
	KindValidation
)

type UserError struct {
	Kind  UserErrorKind
	Field string
	cause error
}

func (e *UserError) Error() string {
	if e.Kind == KindValidation {
		return fmt.Sprintf("Validation error on field: %s", e.Field)
	}
	return "An internal error occurred. Please try again later."
}

func (e *UserError) Unwrap() error { return e.cause }

func Internal(cause error) *UserError {
	return &UserError{Kind: KindInternal, cause: cause}
}

func Validation(field string) *UserError {
	return &UserError{Kind: KindValidation, Field: field}
}

// Classify maps a storage-layer failure onto the user-visible taxonomy.
// Absent rows from lookups never reach here; they are nil results, not
// errors. A row expected by an insert-returning or a treated-as-required
// read, a decode failure, or any pool condition all become Internal.
func Classify(err error) *UserError {
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return Internal(err)
	case errors.Is(err, pgx.ErrTxClosed), errors.Is(err, pgx.ErrTxCommitRollback):
		return Internal(err)
	case errors.Is(err, puddle.ErrClosedPool):
		return Internal(err)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return Internal(err)
	}

	var scanErr pgx.ScanArgError
	if errors.As(err, &scanErr) {
		return Internal(err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return Internal(err)
	}
	return Internal(err)
}
