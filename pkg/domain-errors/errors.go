// Package derrors provides coded domain errors for the compliance engine.
// Import as dErrors by convention.
//
// Services return these so callers (handlers, review dashboards) can branch
// on a stable code and show the message. Stores never construct domain
// errors; they return pkg/platform/sentinel errors which services translate
// here. Business-rule violations are always returned as data, never panics.
package derrors

import (
	"errors"
	"fmt"
)

// Code is a stable, machine-readable error category. Codes are part of the
// caller-facing contract and must not change between releases.
type Code string

const (
	// CodeValidation marks malformed input, caught before any write.
	CodeValidation Code = "VALIDATION_ERROR"
	// CodeInvalidTransition marks a status move not present in the
	// lifecycle transition table.
	CodeInvalidTransition Code = "INVALID_TRANSITION"
	// CodeInvalidOperation marks a compound precondition failure across
	// coupled fields (e.g. the KYC sub-flow guards).
	CodeInvalidOperation Code = "INVALID_OPERATION"
	// CodeNotFound marks a referenced entity that does not exist.
	CodeNotFound Code = "NOT_FOUND"
	// CodeFetchFailed marks a persistence or collaborator fault, wrapped
	// uniformly so callers have one handling path.
	CodeFetchFailed Code = "FETCH_ERROR"
	// CodeUnauthorized marks a missing or invalid bearer token at the
	// transport boundary.
	CodeUnauthorized Code = "UNAUTHORIZED"
	// CodeInternal marks faults that are not the caller's doing and carry
	// no actionable detail (programming errors, misconfiguration).
	CodeInternal Code = "INTERNAL"
)

// Error is a domain error with a stable code and a human-readable message.
type Error struct {
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// New creates a domain error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates a domain error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to an underlying cause. The cause stays
// reachable through errors.Is/As for logging; the code and message are what
// callers see.
func Wrap(cause error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, cause: cause}
}

// HasCode reports whether err (or anything it wraps) is a domain error
// carrying the given code.
func HasCode(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// Is is an alias of HasCode kept for call-site readability:
// dErrors.Is(err, dErrors.CodeValidation).
func Is(err error, code Code) bool {
	return HasCode(err, code)
}

// CodeOf returns the code of a domain error, or CodeInternal when err is
// not a domain error.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// MessageOf returns the human-readable message of a domain error, or a
// generic message for unknown errors so internals never leak to callers.
func MessageOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	return "internal error"
}
