package persistence

import (
	"errors"

	"github.com/farmcore/backend/internal/domain/shared"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Postgres error codes relevant to write paths
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// translateError maps driver-level constraint violations onto domain errors
// so that races lost at the database (two requests inserting the same code)
// surface the same way as application-level uniqueness checks.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return shared.ErrAlreadyExists
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pgUniqueViolation:
			return shared.ErrAlreadyExists
		case pgForeignKeyViolation:
			return shared.ErrHasDependents
		}
	}
	return err
}
