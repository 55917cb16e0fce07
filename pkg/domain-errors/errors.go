// Package domainerrors defines coded errors for the warden domain.
//
// Services and domain primitives return these so transports can translate a
// failure into a wire response without inspecting error strings. Infrastructure
// facts (record missing, store unavailable) live in pkg/platform/sentinel;
// this package is for contract violations surfaced to callers.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code identifies a class of domain failure. The string value is what external
// callers see in the error envelope.
type Code string

const (
	// Vault lifecycle and authorization failures. Each aborts the whole
	// operation; none is retried or downgraded internally.
	CodeAlreadyInitialized Code = "already_initialized"
	CodeNotInitialized     Code = "not_initialized"
	CodeMissingRole        Code = "missing_role"
	CodeUnauthenticated    Code = "unauthenticated"

	// Transport and validation failures.
	CodeBadRequest   Code = "bad_request"
	CodeInvalidInput Code = "invalid_input"
	CodeNotFound     Code = "not_found"
	CodeInternal     Code = "internal_error"
)

// Error is a domain error carrying a stable code and a human-readable message.
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
func New(code Code, message string) error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a code and message to an underlying cause. The cause stays
// reachable through errors.Is/errors.As.
func Wrap(err error, code Code, message string) error {
	return &Error{Code: code, Message: message, cause: err}
}

// Is reports whether err carries the given code. Convenience alias for HasCode
// so call sites read like errors.Is.
func Is(err error, code Code) bool {
	return HasCode(err, code)
}

// HasCode reports whether err (or anything it wraps) is a domain error with
// the given code.
func HasCode(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// CodeOf extracts the code from err, or CodeInternal when err is not a domain
// error.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// MessageOf extracts the message from err, or an empty string for non-domain
// errors so internals never leak into responses.
func MessageOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	return ""
}
