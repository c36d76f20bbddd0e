package infra

import (
	"context"
	"errors"

	"tablestay/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

// Infrastructure-specific error kinds
const (
	KindNotFound    RepositoryErrorKind = "NOT_FOUND"
	KindConflict    RepositoryErrorKind = "CONFLICT"
	KindUnavailable RepositoryErrorKind = "UNAVAILABLE"
	KindDBFailure   RepositoryErrorKind = "DB_FAILURE"
)

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

func WrapRepoErr(msg string, err error, kinds ...RepositoryErrorKind) error {
	kind := classify(err)
	if len(kinds) > 0 {
		kind = kinds[0]
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// PostgreSQL SQLSTATE codes surfaced by the booking schema.
const (
	pgExclusionViolation = "23P01" // no-overlap constraint on confirmed bookings
	pgUniqueViolation    = "23505"
	pgQueryCanceled      = "57014" // statement_timeout
)

// classify maps low-level store errors onto repository kinds: overlap/unique
// violations are conflicts, deadline overruns are Unavailable (retryable by
// the caller, never by the core), everything else is a DB failure.
func classify(err error) RepositoryErrorKind {
	if err == nil {
		return KindDBFailure
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return KindUnavailable
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgExclusionViolation, pgUniqueViolation:
			return KindConflict
		case pgQueryCanceled:
			return KindUnavailable
		}
	}

	return KindDBFailure
}
