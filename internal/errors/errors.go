// Package errors defines the structured error type shared by the shuffle
// command and its internal packages.
//
// A validation verdict of "false" is a normal outcome, not a failure, so the
// validator never returns these errors directly. They exist so callers can
// surface diagnostics (why a candidate was rejected) and so configuration and
// I/O problems carry a stable code that tests and scripts can match on.
package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrorType represents different categories of errors.
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeIO         ErrorType = "io"
	ErrorTypeConfig     ErrorType = "config"
	ErrorTypeInternal   ErrorType = "internal"
)

// Common error codes.
const (
	ErrCodeWordNotAllowed  = "ERR_WORD_NOT_ALLOWED"
	ErrCodeLengthMismatch  = "ERR_LENGTH_MISMATCH"
	ErrCodeOutOfOrder      = "ERR_OUT_OF_ORDER"
	ErrCodeConfigInvalid   = "ERR_CONFIG_INVALID"
	ErrCodeFileNotFound    = "ERR_FILE_NOT_FOUND"
	ErrCodeFileUnreadable  = "ERR_FILE_UNREADABLE"
	ErrCodeCaseFileInvalid = "ERR_CASE_FILE_INVALID"
	ErrCodeExpectation     = "ERR_EXPECTATION_FAILED"
	ErrCodeInternalError   = "ERR_INTERNAL"
)

// ShuffleError is a structured error type with context.
type ShuffleError struct {
	Type    ErrorType
	Code    string
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface.
func (e *ShuffleError) Error() string {
	var parts []string

	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Code))
	}

	parts = append(parts, e.Message)

	if len(e.Context) > 0 {
		keys := make([]string, 0, len(e.Context))
		for k := range e.Context {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		kv := make([]string, 0, len(keys))
		for _, k := range keys {
			kv = append(kv, fmt.Sprintf("%s=%v", k, e.Context[k]))
		}
		parts = append(parts, "("+strings.Join(kv, " ")+")")
	}

	result := strings.Join(parts, " ")

	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}

	return result
}

// Unwrap returns the underlying cause error.
func (e *ShuffleError) Unwrap() error {
	return e.Cause
}

// Is reports a match when target is a *ShuffleError of the same type and code.
func (e *ShuffleError) Is(target error) bool {
	var t *ShuffleError
	if errors.As(target, &t) {
		return e.Type == t.Type && e.Code == t.Code
	}

	return false
}

// WithContext adds context information to the error.
func (e *ShuffleError) WithContext(key string, value interface{}) *ShuffleError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value

	return e
}

// NewValidationError creates a validation error.
func NewValidationError(code, message string) *ShuffleError {
	return &ShuffleError{
		Type:    ErrorTypeValidation,
		Code:    code,
		Message: message,
	}
}

// NewIOError creates an I/O error.
func NewIOError(code, message string, cause error) *ShuffleError {
	return &ShuffleError{
		Type:    ErrorTypeIO,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewConfigError creates a configuration error.
func NewConfigError(code, message string) *ShuffleError {
	return &ShuffleError{
		Type:    ErrorTypeConfig,
		Code:    code,
		Message: message,
	}
}

// NewInternalError creates an internal error.
func NewInternalError(code, message string, cause error) *ShuffleError {
	return &ShuffleError{
		Type:    ErrorTypeInternal,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// HasCode reports whether err wraps a *ShuffleError carrying code.
func HasCode(err error, code string) bool {
	var se *ShuffleError
	if errors.As(err, &se) {
		return se.Code == code
	}

	return false
}

// IsValidationError checks if an error is a rejected-shuffle diagnostic.
func IsValidationError(err error) bool {
	var se *ShuffleError
	if errors.As(err, &se) {
		return se.Type == ErrorTypeValidation
	}

	return false
}
