// Package pgstore provides PostgreSQL-backed implementations of the
// identity store interfaces over a pgx connection pool. Unique
// violations surface as validation Results, not transport errors; the
// schema lives in migrations/identity_db.sql.
package pgstore

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// violatedConstraint returns the name of the violated unique constraint,
// or "" when err is not a unique violation.
func violatedConstraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return pgErr.ConstraintName
	}
	return ""
}
