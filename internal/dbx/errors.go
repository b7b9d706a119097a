package dbx

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/notesgraph/internal/common"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL SQLSTATE codes that map onto domain errors.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
)

// TranslateError wraps constraint failures reported by the pgx driver with
// the matching sentinel from common, keeping the driver error in the chain.
// Other errors are returned unchanged.
func TranslateError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgUniqueViolation:
		return fmt.Errorf("%w: %s: %w", common.ErrorAlreadyExists, pgErr.ConstraintName, err)
	case pgForeignKeyViolation, pgNotNullViolation:
		return fmt.Errorf("%w: %s: %w", common.ErrorConstraintViolation, pgErr.ConstraintName, err)
	}

	return err
}
