package directory

import (
	"errors"
	"fmt"
)

// ErrNoRecords signals that a listing was requested from an empty
// directory. Callers distinguish it from an empty listing.
var ErrNoRecords = errors.New("no records")

// Error is returned by directory operations that cannot be carried out.
//
// Error codes:
//   - NOT_FOUND: no record has the requested id
//   - INVALID_FIELD: the edit named a field other than name or salary
//   - INVALID_VALUE: the edit value has the wrong type for its field
//   - DUPLICATE_ID: a record with the id already exists
//   - INVALID_RECORD: a nil record was added
//
// A declined confirmation is not an Error; it is reported as an outcome.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// ID is the record id involved, if any.
	ID string

	// Field is the field name involved (INVALID_FIELD, INVALID_VALUE).
	Field string

	// Message is a human-readable description.
	Message string
}

// ErrorCode categorizes directory errors.
type ErrorCode string

const (
	ErrCodeNotFound      ErrorCode = "NOT_FOUND"
	ErrCodeInvalidField  ErrorCode = "INVALID_FIELD"
	ErrCodeInvalidValue  ErrorCode = "INVALID_VALUE"
	ErrCodeDuplicateID   ErrorCode = "DUPLICATE_ID"
	ErrCodeInvalidRecord ErrorCode = "INVALID_RECORD"
)

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.ID != "" && e.Field != "":
		return fmt.Sprintf("%s: %s (id=%s, field=%s)", e.Code, e.Message, e.ID, e.Field)
	case e.ID != "":
		return fmt.Sprintf("%s: %s (id=%s)", e.Code, e.Message, e.ID)
	case e.Field != "":
		return fmt.Sprintf("%s: %s (field=%s)", e.Code, e.Message, e.Field)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsNotFound reports whether err is a NOT_FOUND Error.
// Uses errors.As to handle wrapped errors.
func IsNotFound(err error) bool {
	return hasCode(err, ErrCodeNotFound)
}

// IsInvalidField reports whether err is an INVALID_FIELD Error.
func IsInvalidField(err error) bool {
	return hasCode(err, ErrCodeInvalidField)
}

// IsInvalidValue reports whether err is an INVALID_VALUE Error.
func IsInvalidValue(err error) bool {
	return hasCode(err, ErrCodeInvalidValue)
}

// IsDuplicateID reports whether err is a DUPLICATE_ID Error.
func IsDuplicateID(err error) bool {
	return hasCode(err, ErrCodeDuplicateID)
}

func hasCode(err error, code ErrorCode) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

func newNotFound(id string) *Error {
	return &Error{Code: ErrCodeNotFound, ID: id, Message: "employee not found"}
}

func newInvalidField(field string) *Error {
	return &Error{Code: ErrCodeInvalidField, Field: field, Message: "field must be 'name' or 'salary'"}
}

func newInvalidValue(id, field string, v any) *Error {
	return &Error{
		Code:    ErrCodeInvalidValue,
		ID:      id,
		Field:   field,
		Message: fmt.Sprintf("unsupported value type %T", v),
	}
}

func newDuplicateID(id string) *Error {
	return &Error{Code: ErrCodeDuplicateID, ID: id, Message: "employee id already exists"}
}
