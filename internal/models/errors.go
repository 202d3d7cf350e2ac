package models

import (
	"errors"
	"fmt"
)

// Error codes for domain rule violations. Handlers map these to HTTP
// statuses; callers branch on them via ErrorCode.
const (
	ErrCodeCurrencyMismatch     = "currency_mismatch"
	ErrCodeInvalidAmount        = "invalid_amount"
	ErrCodeInsufficientFunds    = "insufficient_funds"
	ErrCodeAccountInactive      = "account_inactive"
	ErrCodeValidationRange      = "validation_range"
	ErrCodeEligibilityViolation = "eligibility_violation"
	ErrCodeNotFound             = "not_found"
	ErrCodeInternalError        = "internal_error"
)

// Error represents a domain rule violation with a machine-readable code
type Error struct {
	Err     error
	Message string
	Code    string
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a domain error with the given code and message.
func NewError(code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode extracts the domain error code from err, or
// ErrCodeInternalError when err carries no code.
func ErrorCode(err error) string {
	var domErr *Error
	if errors.As(err, &domErr) {
		return domErr.Code
	}
	return ErrCodeInternalError
}
