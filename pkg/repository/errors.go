package repository

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL SQLSTATE codes translated by MapError.
const (
	codeUniqueViolation = "23505"
	codeCheckViolation  = "23514"
	codeNotNull         = "23502"
)

// Errors names the domain errors a store failure maps onto. A nil field
// leaves that class of failure unmapped.
type Errors struct {
	NotFound  error
	Duplicate error
	Rejected  error
}

// MapError translates database errors to domain errors. sql.ErrNoRows maps to
// NotFound, unique violations to Duplicate, and check or not-null violations to
// Rejected. Anything else is returned unchanged.
func MapError(err error, m Errors) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) && m.NotFound != nil {
		return m.NotFound
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case codeUniqueViolation:
		if m.Duplicate != nil {
			return m.Duplicate
		}
	case codeCheckViolation, codeNotNull:
		if m.Rejected != nil {
			return m.Rejected
		}
	}
	return err
}
