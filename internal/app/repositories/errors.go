package repositories

import (
	"errors"
	"fmt"

	"github.com/yigit/classroom/internal/pkg/dberrors"
)

// Shared repository errors. Constraint errors are wrapped with the name of
// the violated constraint.
var (
	ErrNotFound         = errors.New("record not found")
	ErrDuplicate        = errors.New("duplicate record")
	ErrMissingReference = errors.New("referenced record does not exist")
	ErrStillReferenced  = errors.New("record is still referenced")
)

// mapWriteError translates constraint violations raised by INSERT and UPDATE.
func mapWriteError(err error) error {
	switch {
	case dberrors.IsUniqueViolation(err):
		return fmt.Errorf("%w: %s", ErrDuplicate, dberrors.ConstraintName(err))
	case dberrors.IsForeignKeyViolation(err):
		return fmt.Errorf("%w: %s", ErrMissingReference, dberrors.ConstraintName(err))
	}
	return err
}

// mapDeleteError translates a foreign key violation raised by DELETE, which
// means another row still points at the one being removed.
func mapDeleteError(err error) error {
	if dberrors.IsForeignKeyViolation(err) {
		return fmt.Errorf("%w: %s", ErrStillReferenced, dberrors.ConstraintName(err))
	}
	return err
}
