// Copyright (c) 2025 batchtsocmd
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package dsn generates DSN command processor input streams (SYSTSIN) and the
// matching SYSIN payloads for batch Db2 operations run under IKJEFT1B.
// Each request variant provides a pure Generate method; generation performs
// no I/O and is deterministic, so an identical request always yields a
// byte-identical stream.
package dsn

import (
	"strings"

	"batchtsocmd/cli/internal/errors"
)

// Programs invoked through the DSN RUN subcommand.
const (
	// SQLProgram executes dynamic SQL statements from SYSIN.
	SQLProgram = "DSNTEP2"
	// OperatorProgram executes Db2 operator commands from SYSIN.
	OperatorProgram = "DSNTIAD"
)

// Stream is a generated SYSTSIN command stream.
type Stream struct {
	lines []string
}

// String renders the stream as newline-terminated text.
func (s Stream) String() string {
	return strings.Join(s.lines, "\n") + "\n"
}

// Lines returns the individual records of the stream.
func (s Stream) Lines() []string {
	out := make([]string, len(s.lines))
	copy(out, s.lines)
	return out
}

// DataStream is the SYSIN payload: either literal content or a reference to a
// caller-supplied file, never both. Bind and run operations carry no payload
// and use a single-blank placeholder.
type DataStream struct {
	Content string
	Path    string
}

// Placeholder returns the blank SYSIN used by operations without a payload.
func Placeholder() DataStream { return DataStream{Content: " "} }

// FromFile reports whether the payload is an external file reference.
func (d DataStream) FromFile() bool { return d.Path != "" }

// validate enforces the literal/file mutual exclusion.
func (d DataStream) validate() error {
	if d.Content != "" && d.Path != "" {
		return errors.New(errors.ValidationFailed, "cannot supply both literal input and an input file")
	}
	if d.Content == "" && d.Path == "" {
		return errors.New(errors.ValidationFailed, "either literal input or an input file is required")
	}
	return nil
}

func missing(field string) error {
	return errors.New(errors.ValidationFailed, field+" parameter is required")
}
