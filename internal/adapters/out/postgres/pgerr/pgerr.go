// Package pgerr translates PostgreSQL failures into the errs taxonomy so adapters above
// the repositories never look at SQLSTATE codes.
package pgerr

import (
	"errors"

	"warehouse/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	codeNumericOutOfRange    = "22003"
	codeForeignKeyViolation  = "23503"
	codeUniqueViolation      = "23505"
	codeCheckViolation       = "23514"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

// Translate maps err, raised while writing the object identified by (param, id), to a
// typed error. Unknown failures are returned unchanged.
//
// Unique violations, serialization failures and deadlocks become errs.ConflictError;
// constraint violations and out of range numbers become errs.ValueIsInvalidError.
func Translate(err error, param string, id any) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case codeUniqueViolation, codeSerializationFailure, codeDeadlockDetected:
		return errs.NewConflictErrorWithCause(param, id, err)
	case codeCheckViolation, codeForeignKeyViolation, codeNumericOutOfRange:
		return errs.NewValueIsInvalidErrorWithCause(param, err)
	default:
		return err
	}
}
