// Package errors provides coded, structured errors for xcupdate.
//
// Every failure that crosses a package boundary carries an ErrorCode so the
// update run can classify it (parse, list, install, uninstall, link,
// invariant) without string matching.
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
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Version identifier errors
	ErrParse ErrorCode = "PARSE"

	// External tool errors
	ErrPreflight ErrorCode = "PREFLIGHT"
	ErrList      ErrorCode = "LIST"
	ErrInstall   ErrorCode = "INSTALL"
	ErrUninstall ErrorCode = "UNINSTALL"

	// Link errors
	ErrLink         ErrorCode = "LINK"
	ErrLinkConflict ErrorCode = "LINK_CONFLICT"

	// Retention safety
	ErrInvariant ErrorCode = "INVARIANT"

	// Run record errors
	ErrState ErrorCode = "STATE"
)

// XcupError represents a structured error with code and details
type XcupError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *XcupError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *XcupError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *XcupError) Is(target error) bool {
	var targetErr *XcupError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new XcupError with the given code and message
func New(code ErrorCode, message string) *XcupError {
	return &XcupError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new XcupError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *XcupError {
	return &XcupError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a XcupError
func Wrap(err error, code ErrorCode, message string) *XcupError {
	if err == nil {
		return nil
	}
	return &XcupError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *XcupError {
	if err == nil {
		return nil
	}
	return &XcupError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *XcupError) WithDetail(key string, value interface{}) *XcupError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *XcupError) WithDetails(details map[string]interface{}) *XcupError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var xerr *XcupError
	if errors.As(err, &xerr) {
		return xerr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a XcupError
func GetErrorCode(err error) ErrorCode {
	var xerr *XcupError
	if errors.As(err, &xerr) {
		return xerr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a XcupError
func GetErrorDetails(err error) map[string]interface{} {
	var xerr *XcupError
	if errors.As(err, &xerr) {
		return xerr.Details
	}
	return nil
}
