// Package apperr defines the error taxonomy shared by all gateways. Every
// expected, caller-recoverable failure is one of the kinds below; anything
// else is treated as an infrastructure error and surfaced generically.
package apperr

import "errors"

// Kind classifies an expected failure.
type Kind int

const (
	// KindNotFound means the target record is absent.
	KindNotFound Kind = iota + 1
	// KindForbidden means the target exists but policy denied the actor.
	KindForbidden
	// KindConflict means a uniqueness or state invariant was violated.
	KindConflict
	// KindInvalid means the request is structurally invalid (e.g. self-referential).
	KindInvalid
	// KindUnauthenticated means no actor could be resolved.
	KindUnauthenticated
)

// Error carries a kind and a caller-facing message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NotFound(msg string) error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func Forbidden(msg string) error {
	return &Error{Kind: KindForbidden, Message: msg}
}

func Conflict(msg string) error {
	return &Error{Kind: KindConflict, Message: msg}
}

func Invalid(msg string) error {
	return &Error{Kind: KindInvalid, Message: msg}
}

func Unauthenticated(msg string) error {
	return &Error{Kind: KindUnauthenticated, Message: msg}
}

// KindOf returns the kind of err, or 0 for infrastructure errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
