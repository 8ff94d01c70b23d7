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

	// Profile errors
	ErrProfileNotFound ErrorCode = "PROFILE_NOT_FOUND"
	ErrProfileExists   ErrorCode = "PROFILE_EXISTS"
	ErrLastProfile     ErrorCode = "LAST_PROFILE"

	// Custom variable definition errors
	ErrDefNotFound ErrorCode = "DEF_NOT_FOUND"
	ErrDefExists   ErrorCode = "DEF_EXISTS"

	// Item catalog errors
	ErrItemNotFound ErrorCode = "ITEM_NOT_FOUND"

	// Store errors
	ErrStoreOpen   ErrorCode = "STORE_OPEN"
	ErrStoreRead   ErrorCode = "STORE_READ"
	ErrStoreWrite  ErrorCode = "STORE_WRITE"
	ErrStoreDecode ErrorCode = "STORE_DECODE"

	// Configuration and theme errors
	ErrConfigLoad   ErrorCode = "CONFIG_LOAD"
	ErrConfigSave   ErrorCode = "CONFIG_SAVE"
	ErrThemeParse   ErrorCode = "THEME_PARSE"
	ErrThemeUnknown ErrorCode = "THEME_UNKNOWN"

	// Snapshot errors (dump/restore)
	ErrSnapshotRead  ErrorCode = "SNAPSHOT_READ"
	ErrSnapshotWrite ErrorCode = "SNAPSHOT_WRITE"
)

// BenvError represents a structured error with code and details
type BenvError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *BenvError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *BenvError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *BenvError) Is(target error) bool {
	var targetErr *BenvError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new BenvError with the given code and message
func New(code ErrorCode, message string) *BenvError {
	return &BenvError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new BenvError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *BenvError {
	return &BenvError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a BenvError
func Wrap(err error, code ErrorCode, message string) *BenvError {
	if err == nil {
		return nil
	}
	return &BenvError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *BenvError {
	if err == nil {
		return nil
	}
	return &BenvError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *BenvError) WithDetail(key string, value interface{}) *BenvError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var benvErr *BenvError
	if errors.As(err, &benvErr) {
		return benvErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a BenvError
func GetErrorCode(err error) ErrorCode {
	var benvErr *BenvError
	if errors.As(err, &benvErr) {
		return benvErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a BenvError
func GetErrorDetails(err error) map[string]interface{} {
	var benvErr *BenvError
	if errors.As(err, &benvErr) {
		return benvErr.Details
	}
	return nil
}
