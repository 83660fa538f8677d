// Copyright (c) 2025 batchtsocmd
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package output models where captured job output goes and recombines
// console-directed output after a submission.
package output

// Destination is a tagged variant: the console, or a persisted file.
// The zero value is the console.
type Destination struct {
	path string
}

// Console directs output to the invoking terminal.
func Console() Destination { return Destination{} }

// File directs output to a persisted file at path.
func File(path string) Destination { return Destination{path: path} }

// Parse maps the command-line convention: the literal "stdout" (or an empty
// value) is the console, anything else a file path.
func Parse(s string) Destination {
	if s == "" || s == "stdout" {
		return Console()
	}
	return File(s)
}

// IsConsole reports whether the destination is the console.
func (d Destination) IsConsole() bool { return d.path == "" }

// Path returns the file path; empty for the console.
func (d Destination) Path() string { return d.path }
