package domain

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	KindNotFound          ErrorKind = "NOT_FOUND"
	KindForbidden         ErrorKind = "FORBIDDEN"
	KindConflict          ErrorKind = "CONFLICT"
	KindInvalidTransition ErrorKind = "INVALID_TRANSITION"
	KindUnavailable       ErrorKind = "UNAVAILABLE"
	KindValidation        ErrorKind = "VALIDATION"
	KindInternal          ErrorKind = "INTERNAL"
)

// Error is the typed failure returned by services. Reason is safe to show to
// the caller; Err carries the underlying cause, if any.
type Error struct {
	Kind   ErrorKind
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewNotFoundError(resource string, id any) *Error {
	return &Error{Kind: KindNotFound, Reason: fmt.Sprintf("%s %v not found", resource, id)}
}

func NewForbiddenError(reason string) *Error {
	return &Error{Kind: KindForbidden, Reason: reason}
}

func NewConflictError(reason string) *Error {
	return &Error{Kind: KindConflict, Reason: reason}
}

func NewInvalidTransitionError(resource string, from, to fmt.Stringer) *Error {
	return &Error{
		Kind:   KindInvalidTransition,
		Reason: fmt.Sprintf("invalid transition: %s cannot change from %s to %s", resource, from, to),
	}
}

func NewUnavailableError(reason string) *Error {
	return &Error{Kind: KindUnavailable, Reason: reason}
}

func NewValidationError(reason string) *Error {
	return &Error{Kind: KindValidation, Reason: reason}
}

// WrapInternal marks an infrastructure failure. The cause is kept for logs only.
func WrapInternal(reason string, err error) *Error {
	return &Error{Kind: KindInternal, Reason: reason, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

func IsKind(err error, kind ErrorKind) bool {
	return err != nil && KindOf(err) == kind
}

// ReasonOf returns the caller-safe message for err.
func ReasonOf(err error) string {
	var de *Error
	if errors.As(err, &de) && de.Kind != KindInternal {
		return de.Reason
	}
	return "internal error"
}
