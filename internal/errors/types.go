package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents different categories of errors.
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeIO         ErrorType = "io"
	ErrorTypeCommand    ErrorType = "command"
	ErrorTypeManifest   ErrorType = "manifest"
	ErrorTypeConfig     ErrorType = "config"
	ErrorTypeInternal   ErrorType = "internal"
)

// ForgeError is a structured error type with context.
type ForgeError struct {
	Type        ErrorType
	Code        string
	Message     string
	Cause       error
	Context     map[string]interface{}
	Path        string
	Recoverable bool
}

// Error implements the error interface.
func (e *ForgeError) Error() string {
	var parts []string

	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Code))
	}

	if e.Path != "" {
		parts = append(parts, e.Path)
	}

	parts = append(parts, e.Message)

	result := strings.Join(parts, " ")

	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}

	return result
}

// Unwrap returns the underlying cause error.
func (e *ForgeError) Unwrap() error {
	return e.Cause
}

// Is implements error comparison.
func (e *ForgeError) Is(target error) bool {
	var t *ForgeError
	if errors.As(target, &t) {
		return e.Type == t.Type && e.Code == t.Code
	}

	return false
}

// WithContext adds context information to the error.
func (e *ForgeError) WithContext(key string, value interface{}) *ForgeError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value

	return e
}

// WithPath adds the file or directory the error relates to.
func (e *ForgeError) WithPath(path string) *ForgeError {
	e.Path = path

	return e
}

// Error creation functions

// NewValidationError creates a validation error.
func NewValidationError(code, message string) *ForgeError {
	return &ForgeError{
		Type:        ErrorTypeValidation,
		Code:        code,
		Message:     message,
		Recoverable: true,
	}
}

// NewIOError creates an I/O error.
func NewIOError(code, message string, cause error) *ForgeError {
	return &ForgeError{
		Type:        ErrorTypeIO,
		Code:        code,
		Message:     message,
		Cause:       cause,
		Recoverable: false,
	}
}

// NewCommandError creates an error for a failed external command.
func NewCommandError(code, message string, cause error) *ForgeError {
	return &ForgeError{
		Type:        ErrorTypeCommand,
		Code:        code,
		Message:     message,
		Cause:       cause,
		Recoverable: false,
	}
}

// NewManifestError creates an error for a missing or invalid package manifest.
func NewManifestError(code, message string, cause error) *ForgeError {
	return &ForgeError{
		Type:        ErrorTypeManifest,
		Code:        code,
		Message:     message,
		Cause:       cause,
		Recoverable: false,
	}
}

// NewConfigError creates a configuration error.
func NewConfigError(code, message string) *ForgeError {
	return &ForgeError{
		Type:        ErrorTypeConfig,
		Code:        code,
		Message:     message,
		Recoverable: false,
	}
}

// NewInternalError creates an internal error.
func NewInternalError(code, message string, cause error) *ForgeError {
	return &ForgeError{
		Type:        ErrorTypeInternal,
		Code:        code,
		Message:     message,
		Cause:       cause,
		Recoverable: false,
	}
}

// IsRecoverable checks if an error is recoverable.
func IsRecoverable(err error) bool {
	var fe *ForgeError
	if errors.As(err, &fe) {
		return fe.Recoverable
	}

	return false
}

// GetErrorType extracts the error type, or ErrorTypeInternal for plain errors.
func GetErrorType(err error) ErrorType {
	var fe *ForgeError
	if errors.As(err, &fe) {
		return fe.Type
	}

	return ErrorTypeInternal
}
