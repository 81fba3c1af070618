package experiments

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("experiment not found")
	ErrInvalidID       = errors.New("experiment id must be an integer")
	ErrSubjectNotFound = errors.New("subject not found")
	ErrTypeNotFound    = errors.New("experiment type not found")

	ErrMissingField = errors.New("missing field")
	ErrInvalidField = errors.New("invalid field")
)

type fieldErrorKind int

const (
	kindMissing fieldErrorKind = iota
	kindInvalid
	kindInvalidFilter
)

// FieldError reports a rejected request field. Its message is user-facing.
type FieldError struct {
	Field string
	kind  fieldErrorKind
}

func missingField(field string) *FieldError { return &FieldError{Field: field, kind: kindMissing} }

func invalidField(field string) *FieldError { return &FieldError{Field: field, kind: kindInvalid} }

func invalidFilter(field string) *FieldError { return &FieldError{Field: field, kind: kindInvalidFilter} }

func (e *FieldError) Error() string {
	switch e.kind {
	case kindMissing:
		return fmt.Sprintf("Request missing key '%s'.", e.Field)
	case kindInvalidFilter:
		return fmt.Sprintf("Invalid value for '%s' parameter", e.Field)
	default:
		return fmt.Sprintf("Invalid value for '%s' parameter.", e.Field)
	}
}

// Is matches ErrMissingField or ErrInvalidField by kind.
func (e *FieldError) Is(target error) bool {
	switch target {
	case ErrMissingField:
		return e.kind == kindMissing
	case ErrInvalidField:
		return e.kind == kindInvalid || e.kind == kindInvalidFilter
	}
	return false
}

// NotFoundError carries the identifier that matched no record.
type NotFoundError struct {
	ID  string
	err error
}

func (e *NotFoundError) Error() string {
	if e.err == ErrSubjectNotFound {
		return fmt.Sprintf("Unable to locate subject with ID %s.", e.ID)
	}
	return fmt.Sprintf("Unable to locate experiment with ID %s.", e.ID)
}

func (e *NotFoundError) Unwrap() error { return e.err }
