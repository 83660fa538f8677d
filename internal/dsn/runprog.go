// Copyright (c) 2025 batchtsocmd
// Licensed under the MIT License. See LICENSE file in the project root for details.

package dsn

import "fmt"

// RunRequest executes an arbitrary Db2-bound program via DSN RUN PROGRAM.
type RunRequest struct {
	// Program is the name of the program to run.
	Program string
	// System is the Db2 subsystem ID.
	System string
	// Plan is the plan name the program is bound under.
	Plan string
	// Toollib is the load library containing the program.
	Toollib string
	// Parms is an optional PARM string passed to the program.
	Parms string
}

// Generate builds the SYSTSIN stream. RUN PROGRAM carries all parameters on
// the subcommand itself, so the data stream is the blank placeholder.
func (r RunRequest) Generate() (Stream, DataStream, error) {
	if r.Program == "" {
		return Stream{}, DataStream{}, missing("program")
	}
	if r.System == "" {
		return Stream{}, DataStream{}, missing("system")
	}
	if r.Plan == "" {
		return Stream{}, DataStream{}, missing("plan")
	}
	if r.Toollib == "" {
		return Stream{}, DataStream{}, missing("toollib")
	}

	lib := fmt.Sprintf("       LIB('%s')", r.Toollib)
	if r.Parms != "" {
		lib = fmt.Sprintf("       LIB('%s') PARM('%s')", r.Toollib, r.Parms)
	}

	var b builder
	b.block(fmt.Sprintf("  DSN SYSTEM(%s)", r.System))
	b.block(
		fmt.Sprintf("  RUN PROGRAM(%s) PLAN(%s)", r.Program, r.Plan),
		lib,
	)
	return b.stream(), Placeholder(), nil
}
