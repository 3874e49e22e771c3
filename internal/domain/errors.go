package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
)

// Schema drift: a table or column that exists in some deployments but not in
// others. Deleters treat these as "nothing to delete here".
var (
	ErrSchemaDrift     = errors.New("schema drift")
	ErrUndefinedTable  = fmt.Errorf("%w: undefined table", ErrSchemaDrift)
	ErrUndefinedColumn = fmt.Errorf("%w: undefined column", ErrSchemaDrift)
)

// Rejections a deletion raises before it mutates anything. Adapters never
// return these, so transport can map them to client errors.
var (
	ErrDeletionInProgress = errors.New("a deletion for this account is already in progress")
	ErrProfileNotOwned    = fmt.Errorf("%w: profile not owned by caller", ErrForbidden)
	ErrPrimaryProfile     = fmt.Errorf("%w: primary profile cannot be deleted", ErrForbidden)
)

// ErrIncompleteDeletion is returned when verification finds data that should
// already be gone.
var ErrIncompleteDeletion = errors.New("incomplete deletion")

// IsSchemaDrift reports whether err signals a missing table or column.
func IsSchemaDrift(err error) bool {
	return errors.Is(err, ErrSchemaDrift)
}

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// ResidueError reports data that survived a deletion. It is always fatal.
type ResidueError struct {
	Paths      []string
	ProfileIDs []uuid.UUID
	SampleSize int
}

func (e *ResidueError) Error() string {
	var parts []string
	if len(e.Paths) > 0 {
		parts = append(parts, fmt.Sprintf("%d vault files remain (e.g. %s)",
			len(e.Paths), strings.Join(e.Sample(), ", ")))
	}
	if len(e.ProfileIDs) > 0 {
		parts = append(parts, fmt.Sprintf("%d profile rows remain", len(e.ProfileIDs)))
	}
	if len(parts) == 0 {
		return ErrIncompleteDeletion.Error()
	}
	return fmt.Sprintf("%s: %s", ErrIncompleteDeletion, strings.Join(parts, "; "))
}

func (e *ResidueError) Unwrap() error { return ErrIncompleteDeletion }

// Remaining is the number of vault paths still present.
func (e *ResidueError) Remaining() int { return len(e.Paths) }

// Sample returns at most SampleSize remaining paths (5 when unset).
func (e *ResidueError) Sample() []string {
	n := e.SampleSize
	if n <= 0 {
		n = 5
	}
	if len(e.Paths) < n {
		n = len(e.Paths)
	}
	return append([]string(nil), e.Paths[:n]...)
}

// Empty reports whether no residue was recorded.
func (e *ResidueError) Empty() bool {
	return len(e.Paths) == 0 && len(e.ProfileIDs) == 0
}
