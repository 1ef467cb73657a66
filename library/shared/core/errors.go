package core

import (
	"errors"
)

// The error kinds of the library. Every failed decision unwraps to exactly one of them.
var (
	ErrNotFound           = errors.New("not found")
	ErrUnavailable        = errors.New("unavailable")
	ErrInvalidState       = errors.New("invalid state")
	ErrConflict           = errors.New("conflict")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrInvariantViolation = errors.New("invariant violation")
)

// Violation is a broken business rule with a human readable reason.
type Violation struct {
	Kind   error
	Reason string
}

func Violate(kind error, reason string) Violation {
	return Violation{Kind: kind, Reason: reason}
}

func (v Violation) Error() string {
	return v.Reason
}

func (v Violation) Unwrap() error {
	return v.Kind
}

// DecisionError is the error of a decision that produced a failure event.
type DecisionError struct {
	EventType string
	Violation
}

func (e DecisionError) Error() string {
	return e.EventType + ": " + e.Reason
}

// Reason returns the human readable part of err if it carries a Violation, else err.Error().
func Reason(err error) string {
	var v Violation
	if errors.As(err, &v) {
		return v.Reason
	}

	var d DecisionError
	if errors.As(err, &d) {
		return d.Reason
	}

	return err.Error()
}
