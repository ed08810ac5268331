// Package etl holds the pieces shared by every dataset pipeline: the error
// taxonomy and the record builder that feeds the loader.
package etl

import (
	"errors"
	"fmt"
)

// Kind classifies a pipeline error. The kind decides the process exit
// behavior: config and source errors are fatal, a load error ends the run
// normally with the destination table left empty.
type Kind string

const (
	// KindConfig covers credential, connection and registry failures.
	KindConfig Kind = "config"
	// KindSource covers HTTP failures, unexpected markup or JSON shape,
	// and missing required fields.
	KindSource Kind = "source"
	// KindLoad covers insertion failures after the destination table has
	// already been dropped and recreated.
	KindLoad Kind = "load"
)

// Error is a classified pipeline error with an optional wrapped cause.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a classified error.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind and message to an existing error. Returns nil for a
// nil cause so call sites can wrap unconditionally.
func Wrap(err error, kind Kind, format string, args ...interface{}) *Error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: err}
}

// KindOf reports the kind of err, or "" if err carries no classification.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind reports whether err (or anything it wraps) has the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
