// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: Error kinds and the typed *Error shared by the model and every codec.
// Policy:
//   - Kinds are ErrMalformedInput and ErrInvariantViolation; ErrNoData refines the former.
//   - Callers branch with errors.Is on kind or cause, never on message text.

package preference

import (
	"errors"
	"fmt"
)

// Error kinds. Callers branch with errors.Is(err, ErrX).
var (
	// ErrMalformedInput indicates syntactic or structural input failures:
	// bad JSON, wrong bit length, non-binary characters, nonzero padding.
	ErrMalformedInput = errors.New("preference: malformed input")

	// ErrInvariantViolation indicates well-formed input that does not describe
	// a valid partition of the world space: a missing or duplicated world, a
	// world out of range, or an empty rank under CPO.
	ErrInvariantViolation = errors.New("preference: invariant violation")

	// ErrNoData marks inputs with zero decodable ranks. Errors carrying it are
	// also ErrMalformedInput.
	ErrNoData = errors.New("preference: no data")
)

// Error is the typed failure returned by the model and every codec.
// Kind is ErrMalformedInput or ErrInvariantViolation; Cause optionally points
// at a finer sentinel (ErrNoData, a signature error, a JSON syntax error).
type Error struct {
	Kind  error
	Cause error
	Msg   string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.Msg != "":
		return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Msg)
	case e.Cause != nil:
		return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Cause.Error())
	default:
		return e.Kind.Error()
	}
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}

	return []error{e.Kind, e.Cause}
}

// Malformedf returns an ErrMalformedInput error with a formatted message.
func Malformedf(format string, args ...any) error {
	return &Error{Kind: ErrMalformedInput, Msg: fmt.Sprintf(format, args...)}
}

// Violationf returns an ErrInvariantViolation error with a formatted message.
func Violationf(format string, args ...any) error {
	return &Error{Kind: ErrInvariantViolation, Msg: fmt.Sprintf(format, args...)}
}

// NoDataf returns an ErrMalformedInput error caused by ErrNoData.
func NoDataf(format string, args ...any) error {
	return &Error{Kind: ErrMalformedInput, Cause: ErrNoData, Msg: "no data: " + fmt.Sprintf(format, args...)}
}

// Wrap attaches kind to cause, keeping cause reachable through errors.Is.
func Wrap(kind, cause error, format string, args ...any) error {
	return &Error{Kind: kind, Cause: cause, Msg: fmt.Sprintf(format, args...)}
}
