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
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Pattern errors
	ErrPatternInvalid ErrorCode = "PATTERN_INVALID"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"

	// Module errors
	ErrModuleLoad     ErrorCode = "MODULE_LOAD"
	ErrModuleInvalid  ErrorCode = "MODULE_INVALID"
	ErrLoaderNotFound ErrorCode = "LOADER_NOT_FOUND"

	// Output errors
	ErrOutputFormat ErrorCode = "OUTPUT_FORMAT"
)

// ExposeError represents a structured error with code and details
type ExposeError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ExposeError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ExposeError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ExposeError) Is(target error) bool {
	var targetErr *ExposeError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ExposeError with the given code and message
func New(code ErrorCode, message string) *ExposeError {
	return &ExposeError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ExposeError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ExposeError {
	return &ExposeError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an ExposeError
func Wrap(err error, code ErrorCode, message string) *ExposeError {
	if err == nil {
		return nil
	}
	return &ExposeError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ExposeError {
	if err == nil {
		return nil
	}
	return &ExposeError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ExposeError) WithDetail(key string, value interface{}) *ExposeError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var exposeErr *ExposeError
	if errors.As(err, &exposeErr) {
		return exposeErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an ExposeError
func GetErrorCode(err error) ErrorCode {
	var exposeErr *ExposeError
	if errors.As(err, &exposeErr) {
		return exposeErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an ExposeError
func GetErrorDetails(err error) map[string]interface{} {
	var exposeErr *ExposeError
	if errors.As(err, &exposeErr) {
		return exposeErr.Details
	}
	return nil
}
