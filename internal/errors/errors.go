// Package errors defines typed errors with categories for user-friendly reporting.
// It provides a structured approach to error handling with machine-readable error kinds
// and human-friendly messages. Each kind carries the process exit code the CLI surfaces
// for it, so commands never hard-code numeric return codes.
//
// The package supports wrapping underlying errors while maintaining error kind information,
// making it easier to handle different types of failures appropriately.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// UsageError indicates a missing or conflicting command-line parameter,
	// detected before any request is built.
	UsageError Kind = "usage_error"
	// ValidationFailed indicates a request failed validation (missing or
	// mutually exclusive fields) before any scratch resource was created.
	ValidationFailed Kind = "validation_failed"
	// EncodingFailed indicates record padding or character-set conversion failure.
	EncodingFailed Kind = "encoding_failed"
	// AdapterFailed indicates the execution collaborator itself failed,
	// as opposed to the submitted program reporting a nonzero return code.
	AdapterFailed Kind = "adapter_failed"
	// Interrupted indicates the submission was cut short by an external interrupt.
	Interrupted Kind = "interrupted"
)

// E wraps an error with kind and human-friendly message.
type E struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *E) Unwrap() error { return e.Err }

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }

// KindOf returns the kind of err, or "" when err carries none.
func KindOf(err error) Kind {
	var e *E
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// ExitCode maps an error to the process exit code convention:
// 1 usage, 8 validation or encoding failure, 130 interrupt, 16 anything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch KindOf(err) {
	case UsageError:
		return 1
	case ValidationFailed, EncodingFailed:
		return 8
	case Interrupted:
		return 130
	default:
		return 16
	}
}
