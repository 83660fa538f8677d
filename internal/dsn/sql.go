// Copyright (c) 2025 batchtsocmd
// Licensed under the MIT License. See LICENSE file in the project root for details.

package dsn

import "fmt"

// SQLRequest executes SQL statements (DDL, DML, DQL, GRANT) through DSNTEP2.
type SQLRequest struct {
	// System is the Db2 subsystem ID.
	System string
	// Plan is the plan name DSNTEP2 is bound under.
	Plan string
	// Toollib is the load library containing DSNTEP2.
	Toollib string
	// Input is the SQL payload.
	Input DataStream
}

// Generate builds the SYSTSIN stream and returns the SQL payload unmodified.
func (r SQLRequest) Generate() (Stream, DataStream, error) {
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
		fmt.Sprintf("  RUN PROGRAM(%s) PLAN(%s)", SQLProgram, r.Plan),
		fmt.Sprintf("       LIB('%s') PARMS('/ALIGN(MID)')", r.Toollib),
	)
	return b.stream(), r.Input, nil
}
