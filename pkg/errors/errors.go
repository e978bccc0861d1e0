package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Rule errors
	ErrPatternInvalid ErrorCode = "PATTERN_INVALID"

	// Locale errors
	ErrLocaleUnknown ErrorCode = "LOCALE_UNKNOWN"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
)

// FlexionError represents a structured error with code and details
type FlexionError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *FlexionError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *FlexionError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *FlexionError) Is(target error) bool {
	var targetErr *FlexionError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new FlexionError with the given code and message
func New(code ErrorCode, message string) *FlexionError {
	return &FlexionError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new FlexionError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *FlexionError {
	return &FlexionError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a FlexionError
func Wrap(err error, code ErrorCode, message string) *FlexionError {
	if err == nil {
		return nil
	}
	return &FlexionError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *FlexionError {
	if err == nil {
		return nil
	}
	return &FlexionError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *FlexionError) WithDetail(key string, value interface{}) *FlexionError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var flexErr *FlexionError
	if errors.As(err, &flexErr) {
		return flexErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a FlexionError
func GetErrorCode(err error) ErrorCode {
	var flexErr *FlexionError
	if errors.As(err, &flexErr) {
		return flexErr.Code
	}
	return ErrUnknown
}
