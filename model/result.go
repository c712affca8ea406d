package model

import (
	"encoding/json"
	"fmt"
)

// ValidationResult collects the findings of a validation pass. Errors block
// acceptance, warnings never do, suggestions are advisory remediation hints.
// Validity is always derived from the error list; it is never stored
// independently, so the two cannot diverge.
type ValidationResult struct {
	Errors      []string `json:"errors"`
	Warnings    []string `json:"warnings"`
	Suggestions []string `json:"suggestions"`
}

// NewValidationResult ...
func NewValidationResult() *ValidationResult {
	return &ValidationResult{
		Errors:      []string{},
		Warnings:    []string{},
		Suggestions: []string{},
	}
}

// IsValid reports whether the result carries no errors. Warnings and
// suggestions do not affect validity.
func (r *ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}

// AddError ...
func (r *ValidationResult) AddError(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// AddWarning ...
func (r *ValidationResult) AddWarning(format string, args ...interface{}) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// AddSuggestion ...
func (r *ValidationResult) AddSuggestion(format string, args ...interface{}) {
	r.Suggestions = append(r.Suggestions, fmt.Sprintf(format, args...))
}

// Merge appends all findings of other into r.
func (r *ValidationResult) Merge(other *ValidationResult) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
	r.Suggestions = append(r.Suggestions, other.Suggestions...)
}

// MarshalJSON emits the derived validity alongside the finding lists.
func (r *ValidationResult) MarshalJSON() ([]byte, error) {
	type Alias ValidationResult
	return json.Marshal(struct {
		IsValid bool `json:"isValid"`
		*Alias
	}{
		IsValid: r.IsValid(),
		Alias:   (*Alias)(r),
	})
}

// String ...
func (r *ValidationResult) String() string {
	status := "valid"
	if !r.IsValid() {
		status = "invalid"
	}
	return fmt.Sprintf("ValidationResult(%s, %d errors)", status, len(r.Errors))
}
