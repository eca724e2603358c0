package filter

import (
	"errors"
	"fmt"
)

// Validation codes reported by ValidateForSave.
const (
	CodeTitleRequired   = "title-required"
	CodeValueRequired   = "value-required"
	CodeOperatorInvalid = "operator-invalid"
	CodeValueInvalid    = "value-invalid"
	CodeRelationInvalid = "relation-invalid"
)

var (
	// ErrFillPrevious is the warning returned when appending behind a clause
	// that still has no value.
	ErrFillPrevious = errors.New("fill in the previous clause first")

	ErrIndexOutOfRange = errors.New("clause index out of range")
)

// ValidationError reports user input that violates a clause or shortcut
// invariant. It is shown inline and never reaches the store.
type ValidationError struct {
	Code  string
	Index int
}

func (e *ValidationError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("validation failed: %s (clause %d)", e.Code, e.Index)
	}
	return fmt.Sprintf("validation failed: %s", e.Code)
}

// IsValidationError reports whether err carries the given validation code.
func IsValidationError(err error, code string) bool {
	var ve *ValidationError
	if !errors.As(err, &ve) {
		return false
	}
	return ve.Code == code
}
