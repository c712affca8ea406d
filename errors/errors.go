// Package errors error module.
package errors

import (
	"encoding/json"
	"fmt"
)

var (
	// ErrNotFound error not found.
	ErrNotFound = fmt.Errorf("notfound")
	// ErrMalformed error malformed request.
	ErrMalformed = fmt.Errorf("malformed")
	// ErrInvalidForm form error.
	ErrInvalidForm = fmt.Errorf("formerror")
	// ErrInternalServerError Internal Server Error.
	ErrInternalServerError = fmt.Errorf("internal")
)

// FormError maps input field names to reasons.
type FormError map[string]string

// NewFormError ...
func NewFormError() FormError {
	return FormError{"reason": ErrInvalidForm.Error()}
}

// Error ...
func (fe FormError) Error() string {
	return fmt.Sprintf("%+v", map[string]string(fe))
}

// MarshalJSON ...
func (fe FormError) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string(fe))
}
