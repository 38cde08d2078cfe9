package inputs

import (
	"errors"
	"fmt"
)

// ErrInputsEmpty is returned when at least one input is empty after trimming.
var ErrInputsEmpty = &ValidationError{message: "All inputs are required and cannot be empty."}

// ValidationError reports caller-supplied inputs that are structurally invalid.
// It never originates from a remote call.
type ValidationError struct {
	message string
}

func (e *ValidationError) Error() string {
	return e.message
}

func newInvalidBranchNameError(name string) *ValidationError {
	return &ValidationError{message: fmt.Sprintf("Invalid branch name format: '%s'", name)}
}

func newSameBranchError(name string) *ValidationError {
	return &ValidationError{
		message: fmt.Sprintf("The new branch ('%s') must be different from the base branch.", name),
	}
}

// IsValidationError reports whether err is, or wraps, a ValidationError.
func IsValidationError(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}
