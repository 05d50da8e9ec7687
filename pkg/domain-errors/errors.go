// Package dErrors defines the domain error vocabulary shared by services,
// stores, and the HTTP layer. Services return these instead of transport
// errors so handlers can translate without inspecting error strings.
//
// For validation errors (bad input, missing fields), use pkg/domain-errors directly.
package dErrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code identifies a class of domain error.
type Code string

const (
	// CodeBadRequest marks malformed requests (undecodable body, bad types).
	CodeBadRequest Code = "bad_request"
	// CodeValidation marks user-correctable field validation failures.
	CodeValidation Code = "validation_failed"
	// CodeNotFound marks lookups that matched no record.
	CodeNotFound Code = "not_found"
	// CodeConflict marks unique-key collisions reported by a store.
	CodeConflict Code = "conflict"
	// CodeUnavailable marks an unreachable external collaborator (page fetch,
	// persistence, lookup service). Never retried by the engine itself.
	CodeUnavailable Code = "unavailable"
	// CodeInvariantViolation marks programming errors: states that the normal
	// transition graph cannot reach. These should fail loudly, not be shown
	// to end users as their mistake.
	CodeInvariantViolation Code = "invariant_violation"
	// CodeInternal is the fallback for everything else.
	CodeInternal Code = "internal_error"
)

// Error is the concrete domain error type.
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

func (e *Error) Unwrap() error { return e.cause }

// New creates a domain error with the given code and user-safe message.
func New(code Code, message string) error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a code and message to an underlying cause. The cause is kept
// for logs; only Message is ever shown to clients.
func Wrap(code Code, message string, cause error) error {
	return &Error{Code: code, Message: message, cause: cause}
}

// Is reports whether err carries the given code anywhere in its chain.
func Is(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// CodeOf extracts the domain code from err, defaulting to CodeInternal.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// MessageOf extracts the user-safe message, empty when err is not a domain error.
func MessageOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	return ""
}

// ToHTTPStatus maps a domain code to its HTTP response status.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeBadRequest, CodeValidation:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	case CodeInvariantViolation, CodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
