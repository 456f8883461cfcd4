// Package apperror defines the coded errors shared by every layer. Handlers
// translate codes to HTTP statuses in exactly one place; services and
// repositories only ever attach codes.
package apperror

import (
	"errors"
	"fmt"
)

type Code string

const (
	CodeUnauthenticated  Code = "UNAUTHENTICATED"
	CodeInvalidSession   Code = "INVALID_SESSION"
	CodeForbidden        Code = "FORBIDDEN"
	CodeValidation       Code = "VALIDATION_ERROR"
	CodeNotFound         Code = "NOT_FOUND"
	CodeUnsupportedMedia Code = "UNSUPPORTED_MEDIA_TYPE"
	CodeTransaction      Code = "TRANSACTION_ERROR"
	CodePersistence      Code = "PERSISTENCE_ERROR"
)

// Error carries a machine-readable code, a caller-safe message, and an
// optional wrapped cause.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// New creates a coded error with no underlying cause.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a code and message to an underlying cause.
func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// CodeOf returns the code of err, or CodePersistence when err carries none.
func CodeOf(err error) Code {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Code
	}
	return CodePersistence
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code Code) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Code == code
}
