package errors

import (
	"fmt"
	"strings"
)

// ValidationErrors aggregates configuration errors across elements so a
// single loading pass reports every problem in the document.
type ValidationErrors struct {
	errors []*ConfigError
}

// NewValidationErrors creates a new validation errors collection
func NewValidationErrors() *ValidationErrors {
	return &ValidationErrors{
		errors: make([]*ConfigError, 0),
	}
}

// Add appends a field-level validation error
func (v *ValidationErrors) Add(field string, message string) {
	v.errors = append(v.errors, &ConfigError{
		Type:      ErrorTypeValidation,
		Message:   message,
		Attribute: field,
	})
}

// AddError appends a typed configuration error
func (v *ValidationErrors) AddError(err *ConfigError) {
	if err != nil {
		v.errors = append(v.errors, err)
	}
}

// HasErrors reports whether any error was collected
func (v *ValidationErrors) HasErrors() bool {
	return len(v.errors) > 0
}

// Errors returns the collected errors in the order they were reported
func (v *ValidationErrors) Errors() []*ConfigError {
	return v.errors
}

// Error implements the error interface
func (v *ValidationErrors) Error() string {
	if len(v.errors) == 0 {
		return "no validation errors"
	}
	if len(v.errors) == 1 {
		return v.errors[0].Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d configuration errors:", len(v.errors))
	for _, err := range v.errors {
		sb.WriteString("\n  - ")
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// Unwrap exposes the collected errors to errors.Is and errors.As
func (v *ValidationErrors) Unwrap() []error {
	errs := make([]error, len(v.errors))
	for i, err := range v.errors {
		errs[i] = err
	}
	return errs
}

// ErrOrNil returns the collection as an error, or nil when empty. Callers
// return the result directly so an empty collection never leaks as a
// non-nil error interface.
func (v *ValidationErrors) ErrOrNil() error {
	if v.HasErrors() {
		return v
	}
	return nil
}
