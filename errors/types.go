package errors

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific error condition
type ErrorCode string

const (
	// Configuration errors
	ErrCodeConfigNotFound   ErrorCode = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid    ErrorCode = "CONFIG_INVALID"
	ErrCodeConfigValidation ErrorCode = "CONFIG_VALIDATION"

	// Unit listing and control errors
	ErrCodeLoadFailed       ErrorCode = "LOAD_FAILED"
	ErrCodeInvalidUnitName  ErrorCode = "INVALID_UNIT_NAME"
	ErrCodeInvalidOperation ErrorCode = "INVALID_OPERATION"

	// Command execution errors
	ErrCodeCommandTimeout  ErrorCode = "COMMAND_TIMEOUT"
	ErrCodeCommandNotFound ErrorCode = "COMMAND_NOT_FOUND"
	ErrCodeCommandFailed   ErrorCode = "COMMAND_FAILED"

	// Terminal errors
	ErrCodeRenderFailed ErrorCode = "RENDER_FAILED"

	// General errors
	ErrCodeInternal         ErrorCode = "INTERNAL_ERROR"
	ErrCodeInvalidInput     ErrorCode = "INVALID_INPUT"
	ErrCodePermissionDenied ErrorCode = "PERMISSION_DENIED"
	ErrCodeCanceled         ErrorCode = "CANCELED"
)

// SvcError represents a structured error with context
type SvcError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *SvcError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SvcError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *SvcError) WithDetail(key string, value interface{}) *SvcError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// ToJSON converts the error to JSON
func (e *SvcError) ToJSON() string {
	data, _ := json.MarshalIndent(e, "", "  ")
	return string(data)
}

// New creates a new SvcError
func New(code ErrorCode, message string) *SvcError {
	return &SvcError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a SvcError
func Wrap(err error, code ErrorCode, message string) *SvcError {
	return &SvcError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Is checks if an error carries a specific SvcError code anywhere in its chain
func Is(err error, code ErrorCode) bool {
	if err == nil {
		return false
	}

	svcErr, ok := err.(*SvcError)
	if !ok {
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			return Is(unwrapper.Unwrap(), code)
		}
		return false
	}

	if svcErr.Code == code {
		return true
	}
	return Is(svcErr.Cause, code)
}

// GetCode extracts the outermost error code from an error
func GetCode(err error) ErrorCode {
	if err == nil {
		return ""
	}

	svcErr, ok := err.(*SvcError)
	if !ok {
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			return GetCode(unwrapper.Unwrap())
		}
		return ""
	}

	return svcErr.Code
}
