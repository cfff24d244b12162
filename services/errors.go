package services

import (
	"errors"

	"gorm.io/gorm"
)

// Sentinel errors shared by all services. Handlers map these to HTTP
// statuses through helper.HTTPHelper so a caller can tell a conflict
// from a missing row from a bad payload.
var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("slug already exists")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// translateDBError folds store-level errors into the service taxonomy.
// Unique violations arrive as gorm.ErrDuplicatedKey because the drivers
// run with TranslateError enabled.
func translateDBError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	default:
		return err
	}
}
