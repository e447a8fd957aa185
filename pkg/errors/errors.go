package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the type of configuration error
type ErrorType string

const (
	// Configuration-validation errors, terminal for the loading phase
	ErrorTypeDuplicateManager ErrorType = "DUPLICATE_MANAGER"
	ErrorTypeMissingAttribute ErrorType = "MISSING_ATTRIBUTE"
	ErrorTypeMalformedNumber  ErrorType = "MALFORMED_NUMBER"
	ErrorTypeUnknownElement   ErrorType = "UNKNOWN_ELEMENT"
	ErrorTypeValidation       ErrorType = "VALIDATION"

	// Construction and runtime errors
	ErrorTypeNotFound  ErrorType = "NOT_FOUND"
	ErrorTypeForbidden ErrorType = "FORBIDDEN"
	ErrorTypeExternal  ErrorType = "EXTERNAL"
	ErrorTypeInternal  ErrorType = "INTERNAL"
)

// ConfigError is a configuration error tied, where applicable, to the
// offending XML element.
type ConfigError struct {
	Type      ErrorType
	Message   string
	Element   string
	Attribute string
	Line      int
	Cause     error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Type, e.Message)
	if e.Element != "" {
		if e.Line > 0 {
			msg = fmt.Sprintf("%s (element <%s>, line %d)", msg, e.Element, e.Line)
		} else {
			msg = fmt.Sprintf("%s (element <%s>)", msg, e.Element)
		}
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying error
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// At attaches the offending element name and line
func (e *ConfigError) At(element string, line int) *ConfigError {
	e.Element = element
	e.Line = line
	return e
}

// WithCause wraps an underlying error
func (e *ConfigError) WithCause(err error) *ConfigError {
	e.Cause = err
	return e
}

// Constructor functions for the error taxonomy

// NewDuplicateManagerError reports a second cache-manager declaration in the
// same registry scope.
func NewDuplicateManagerError(element string, line int) *ConfigError {
	return &ConfigError{
		Type:    ErrorTypeDuplicateManager,
		Message: "only one cache manager can be defined",
		Element: element,
		Line:    line,
	}
}

// NewMissingAttributeError reports a required attribute that is absent or blank
func NewMissingAttributeError(attribute, element string, line int) *ConfigError {
	return &ConfigError{
		Type:      ErrorTypeMissingAttribute,
		Message:   fmt.Sprintf("attribute '%s' is required", attribute),
		Element:   element,
		Attribute: attribute,
		Line:      line,
	}
}

// NewMalformedNumberError reports a numeric attribute that does not parse
func NewMalformedNumberError(attribute, value, element string, line int) *ConfigError {
	return &ConfigError{
		Type:      ErrorTypeMalformedNumber,
		Message:   fmt.Sprintf("attribute '%s' must be a non-negative integer, got %q", attribute, value),
		Element:   element,
		Attribute: attribute,
		Line:      line,
	}
}

// NewUnknownElementError reports an unrecognized child element
func NewUnknownElementError(element string, line int) *ConfigError {
	return &ConfigError{
		Type:    ErrorTypeUnknownElement,
		Message: fmt.Sprintf("unknown element <%s>", element),
		Element: element,
		Line:    line,
	}
}

// NewValidationError creates a generic validation error
func NewValidationError(message string) *ConfigError {
	return &ConfigError{
		Type:    ErrorTypeValidation,
		Message: message,
	}
}

// NewNotFoundError creates a not found error
func NewNotFoundError(resource string) *ConfigError {
	return &ConfigError{
		Type:    ErrorTypeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewForbiddenError creates a forbidden error
func NewForbiddenError(message string) *ConfigError {
	return &ConfigError{
		Type:    ErrorTypeForbidden,
		Message: message,
	}
}

// NewExternalError creates an external service error
func NewExternalError(service string, err error) *ConfigError {
	return &ConfigError{
		Type:    ErrorTypeExternal,
		Message: fmt.Sprintf("external service '%s' error", service),
		Cause:   err,
	}
}

// NewInternalError creates an internal error
func NewInternalError(message string) *ConfigError {
	return &ConfigError{
		Type:    ErrorTypeInternal,
		Message: message,
	}
}

// Helper functions

// GetConfigError extracts a ConfigError from an error chain
func GetConfigError(err error) *ConfigError {
	var cfgErr *ConfigError
	if errors.As(err, &cfgErr) {
		return cfgErr
	}
	return nil
}

// IsType checks if an error is of a specific type
func IsType(err error, errType ErrorType) bool {
	cfgErr := GetConfigError(err)
	return cfgErr != nil && cfgErr.Type == errType
}

// IsDuplicateManager checks for a duplicate cache-manager declaration
func IsDuplicateManager(err error) bool {
	return IsType(err, ErrorTypeDuplicateManager)
}

// IsMissingAttribute checks for a missing required attribute
func IsMissingAttribute(err error) bool {
	return IsType(err, ErrorTypeMissingAttribute)
}

// IsMalformedNumber checks for a malformed numeric attribute
func IsMalformedNumber(err error) bool {
	return IsType(err, ErrorTypeMalformedNumber)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return IsType(err, ErrorTypeNotFound)
}

// IsForbidden checks if an error is a forbidden error
func IsForbidden(err error) bool {
	return IsType(err, ErrorTypeForbidden)
}

// IsValidation reports whether the error belongs to the
// configuration-validation family.
func IsValidation(err error) bool {
	cfgErr := GetConfigError(err)
	if cfgErr == nil {
		return false
	}
	switch cfgErr.Type {
	case ErrorTypeDuplicateManager, ErrorTypeMissingAttribute,
		ErrorTypeMalformedNumber, ErrorTypeUnknownElement, ErrorTypeValidation:
		return true
	}
	return false
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}

	if cfgErr := GetConfigError(err); cfgErr != nil {
		cfgErr.Message = fmt.Sprintf("%s: %s", message, cfgErr.Message)
		return cfgErr
	}

	return NewInternalError(message).WithCause(err)
}

// Wrapf wraps an error with formatted message
func Wrapf(err error, format string, args ...interface{}) error {
	return Wrap(err, fmt.Sprintf(format, args...))
}
