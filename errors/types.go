package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a specific error condition
type ErrorCode string

const (
	// Manifest errors
	ErrCodeManifestNotFound   ErrorCode = "MANIFEST_NOT_FOUND"
	ErrCodeManifestInvalid    ErrorCode = "MANIFEST_INVALID"
	ErrCodeNavValidation      ErrorCode = "NAV_VALIDATION"
	ErrCodeSchemaValidation   ErrorCode = "SCHEMA_VALIDATION"
	ErrCodeCollectionNotFound ErrorCode = "COLLECTION_NOT_FOUND"

	// Content errors
	ErrCodeDocNotFound    ErrorCode = "DOC_NOT_FOUND"
	ErrCodeContentInvalid ErrorCode = "CONTENT_INVALID"

	// Tool configuration errors
	ErrCodeConfigNotFound   ErrorCode = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid    ErrorCode = "CONFIG_INVALID"
	ErrCodeConfigValidation ErrorCode = "CONFIG_VALIDATION"

	// General errors
	ErrCodeInternal     ErrorCode = "INTERNAL_ERROR"
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// NavError represents a structured error with context
type NavError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *NavError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *NavError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *NavError) WithDetail(key string, value interface{}) *NavError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// ToJSON converts the error to JSON
func (e *NavError) ToJSON() string {
	data, _ := json.MarshalIndent(e, "", "  ")
	return string(data)
}

// New creates a new NavError
func New(code ErrorCode, message string) *NavError {
	return &NavError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a NavError
func Wrap(err error, code ErrorCode, message string) *NavError {
	return &NavError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Is reports whether any NavError in err's chain carries the given code.
func Is(err error, code ErrorCode) bool {
	for err != nil {
		var navErr *NavError
		if !stderrors.As(err, &navErr) {
			return false
		}
		if navErr.Code == code {
			return true
		}
		err = navErr.Cause
	}
	return false
}

// GetCode extracts the outermost error code from an error
func GetCode(err error) ErrorCode {
	var navErr *NavError
	if stderrors.As(err, &navErr) {
		return navErr.Code
	}
	return ""
}

// As is a convenience re-export of the standard library's errors.As so
// callers importing this package don't need both.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}
