package domain

import (
	"errors"
	"fmt"
)

// ErrorCode represents a semantic classification shared across transport layers.
type ErrorCode string

const (
	ErrCodeNotFound     ErrorCode = "NOT_FOUND"
	ErrCodeInvalid      ErrorCode = "INVALID"
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeInternal     ErrorCode = "INTERNAL"

	// Client-facing taxonomy: a blank required field, a rejected credential,
	// a failed mutation, a failed listing.
	ErrCodeValidation ErrorCode = "VALIDATION"
	ErrCodeAuth       ErrorCode = "AUTH"
	ErrCodeStore      ErrorCode = "STORE"
	ErrCodeFetch      ErrorCode = "FETCH"
)

// Error represents a domain-level error.
type Error struct {
	Code    ErrorCode
	Message string
	Field   string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewError builds a domain error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WrapError wraps an existing error with a domain classification.
func WrapError(code ErrorCode, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewValidationError reports a blank required field by name so forms can
// attach the message to the offending input.
func NewValidationError(field string) *Error {
	return &Error{
		Code:    ErrCodeValidation,
		Message: fmt.Sprintf("%s is required", field),
		Field:   field,
	}
}

// Common domain errors.
var (
	ErrUserNotFound       = NewError(ErrCodeNotFound, "user not found")
	ErrTaskNotFound       = NewError(ErrCodeNotFound, "task not found")
	ErrSessionNotFound    = NewError(ErrCodeNotFound, "session not found")
	ErrUnauthorized       = NewError(ErrCodeUnauthorized, "unauthorized")
	ErrInvalidPayload     = NewError(ErrCodeInvalid, "invalid payload")
	ErrInvalidCredentials = NewError(ErrCodeAuth, "invalid email or password")
	ErrNoSession          = NewError(ErrCodeAuth, "no active session")
	ErrStatusTransition   = NewError(ErrCodeInvalid, "status transition not allowed")
)

// IsDomainError helps checking error codes.
func IsDomainError(err error, code ErrorCode) bool {
	var dErr *Error
	if errors.As(err, &dErr) {
		return dErr.Code == code
	}
	return false
}

// ValidationField extracts the field name from a validation error, or ""
// when err is not one.
func ValidationField(err error) string {
	var dErr *Error
	if errors.As(err, &dErr) && dErr.Code == ErrCodeValidation {
		return dErr.Field
	}
	return ""
}
