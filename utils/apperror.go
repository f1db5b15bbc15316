// File: utils/apperror.go
package utils

import (
	"errors"
	"fmt"
)

// Error codes for expected failure conditions. Every store and service
// operation reports expected failures through an *AppError carrying one of
// these codes; callers branch on the code, not the message text.
const (
	CodeNotFound   = "notFound"   // referenced id absent from its collection
	CodeValidation = "validation" // missing or malformed required field on write
	CodeConflict   = "conflict"   // duplicate unique key (email) on registration
	CodeAuth       = "auth"       // login attempted with unknown email
)

// AppError is a typed error with a stable code and a human-readable detail.
type AppError struct {
	Code    string
	Message string
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewNotFound reports a missing record.
func NewNotFound(format string, args ...any) error {
	return &AppError{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

// NewValidation reports a rejected write.
func NewValidation(format string, args ...any) error {
	return &AppError{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

// NewConflict reports a duplicate unique key.
func NewConflict(format string, args ...any) error {
	return &AppError{Code: CodeConflict, Message: fmt.Sprintf(format, args...)}
}

// NewAuth reports a failed authentication attempt.
func NewAuth(format string, args ...any) error {
	return &AppError{Code: CodeAuth, Message: fmt.Sprintf(format, args...)}
}

// HasCode reports whether err (or anything it wraps) is an AppError with the
// given code.
func HasCode(err error, code string) bool {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code == code
	}
	return false
}
