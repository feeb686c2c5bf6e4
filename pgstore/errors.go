package pgstore

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrFailedToOpenDBConnection = errors.New("failed to open db connection")
	ErrFailedToParseDBConfig    = errors.New("failed to parse db config")
	ErrHealthcheckFailed        = errors.New("healthcheck failed, connection is not available")
	ErrInvalidIdentifier        = errors.New("invalid sql identifier")
	ErrInvalidOrderExpression   = errors.New("invalid order expression")
)

// IsNotFoundError detects pgx.ErrNoRows for consistent "not found" handling across queries.
func IsNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, pgx.ErrNoRows)
}

// IsUndefinedTableError detects queries against tables that do not exist
// (SQLSTATE 42P01). Table resolution here is lazy, so a typo in a table
// name surfaces as this error on first use.
func IsUndefinedTableError(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "42P01"
}

// IsUndefinedColumnError detects queries referencing columns that do not
// exist (SQLSTATE 42703).
func IsUndefinedColumnError(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "42703"
}
