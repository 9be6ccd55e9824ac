// Package errs provides the standardized error types used throughout the
// laundry application.
//
// Each error kind follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type carrying error details
//   - Constructors with and without a cause
//   - Error() for formatting and Unwrap() so errors.Is matches the sentinel
//
// The transport layer maps these kinds to HTTP statuses: required/invalid
// values to 400, not-found to 404, conflicts to 409, invalid status
// transitions to 400 and authorization failures to 401.
package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValueIsRequired indicates a required value is missing or empty.
	ErrValueIsRequired = errors.New("value is required")

	// ErrValueIsInvalid indicates a supplied value is malformed or out of range.
	ErrValueIsInvalid = errors.New("value is invalid")

	// ErrObjectNotFound indicates a referenced entity does not exist.
	ErrObjectNotFound = errors.New("object not found")

	// ErrConflict indicates a uniqueness or referential-integrity violation.
	ErrConflict = errors.New("conflict")

	// ErrInvalidTransition indicates an illegal order status change.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrUnauthorized indicates missing or invalid identity or credentials.
	ErrUnauthorized = errors.New("unauthorized")
)

// sanitize flattens formatted values so error messages stay single-line.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%s", v), "\n", " ")
}

// ValueIsRequiredError reports a missing required value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError reports a malformed or out-of-range value.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ObjectNotFoundError reports an absent entity.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ConflictError reports a uniqueness or referential-integrity violation.
type ConflictError struct {
	ParamName string
	Detail    string
	Cause     error
}

func NewConflictError(paramName, detail string) *ConflictError {
	return &ConflictError{ParamName: paramName, Detail: detail}
}

func NewConflictErrorWithCause(paramName, detail string, cause error) *ConflictError {
	return &ConflictError{ParamName: paramName, Detail: detail, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %s (cause: %s)", ErrConflict, e.ParamName, e.Detail, e.Cause)
	}
	return fmt.Sprintf("%s: %s: %s", ErrConflict, e.ParamName, e.Detail)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// InvalidTransitionError reports an illegal order status change.
type InvalidTransitionError struct {
	From string
	To   string
}

func NewInvalidTransitionError(from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// UnauthorizedError reports a missing or invalid identity or credential.
type UnauthorizedError struct {
	Reason string
	Cause  error
}

func NewUnauthorizedError(reason string) *UnauthorizedError {
	return &UnauthorizedError{Reason: reason}
}

func NewUnauthorizedErrorWithCause(reason string, cause error) *UnauthorizedError {
	return &UnauthorizedError{Reason: reason, Cause: cause}
}

func (e *UnauthorizedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrUnauthorized, e.Reason, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrUnauthorized, e.Reason)
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}
