package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors shared by all repositories. Services branch on these rather
// than on driver error types.
var (
	// ErrNotFound is returned when no row matches the lookup.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned on a unique constraint violation. For progress
	// and certificates the violation doubles as the idempotency/at-most-once
	// guard, so callers may treat it as a non-fatal outcome.
	ErrDuplicate = errors.New("duplicate record")
)

// translateScanErr maps pgx's no-rows error to ErrNotFound.
func translateScanErr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// isUniqueViolation reports whether err is a PostgreSQL unique violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
