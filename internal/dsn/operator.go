// Copyright (c) 2025 batchtsocmd
// Licensed under the MIT License. See LICENSE file in the project root for details.

package dsn

import (
	"fmt"
	"strings"
)

// OperatorRequest executes Db2 operator commands (-DISPLAY, -START, -STOP, ...)
// through DSNTIAD.
type OperatorRequest struct {
	// System is the Db2 subsystem ID.
	System string
	// Plan is the plan name DSNTIAD is bound under.
	Plan string
	// Toollib is the load library containing DSNTIAD.
	Toollib string
	// Input holds the operator commands, one per line. The leading '-'
	// prefix is optional; literal input is normalized automatically.
	Input DataStream
}

// Generate builds the SYSTSIN stream and normalizes a literal payload so
// every non-blank line carries exactly one leading command prefix.
// File-sourced payloads pass through untouched.
func (r OperatorRequest) Generate() (Stream, DataStream, error) {
	if r.System == "" {
		return Stream{}, DataStream{}, missing("system")
	}
	if r.Plan == "" {
		return Stream{}, DataStream{}, missing("plan")
	}
	if r.Toollib == "" {
		return Stream{}, DataStream{}, missing("toollib")
	}
	if err := r.Input.validate(); err != nil {
		return Stream{}, DataStream{}, err
	}

	var b builder
	b.block(fmt.Sprintf("  DSN SYSTEM(%s)", r.System))
	b.block(
		fmt.Sprintf("  RUN PROGRAM(%s) PLAN(%s)", OperatorProgram, r.Plan),
		fmt.Sprintf("       LIB('%s')", r.Toollib),
	)

	out := r.Input
	if !out.FromFile() {
		out.Content = normalizeOperatorInput(out.Content)
	}
	return b.stream(), out, nil
}

// normalizeOperatorInput prepends the '-' command prefix to every non-blank
// line that does not already start with one.
func normalizeOperatorInput(content string) string {
	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	for i, line := range lines {
		stripped := strings.TrimSpace(line)
		if stripped != "" && !strings.HasPrefix(stripped, "-") {
			lines[i] = "-" + strings.TrimLeft(line, " \t")
		}
	}
	return strings.Join(lines, "\n") + "\n"
}
