// Copyright (c) 2025 batchtsocmd
// Licensed under the MIT License. See LICENSE file in the project root for details.

package dsn

import (
	"strings"
	"testing"

	"batchtsocmd/cli/internal/errors"
)

func TestSQLGenerate(t *testing.T) {
	req := SQLRequest{
		System:  "DB2P",
		Plan:    "DSNTEP12",
		Toollib: "DSNC10.DBCG.RUNLIB.LOAD",
		Input:   DataStream{Content: "SELECT * FROM SYSIBM.SYSDUMMY1;"},
	}

	stream, data, err := req.Generate()
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	want := "  DSN SYSTEM(DB2P)\n" +
		"  RUN PROGRAM(DSNTEP2) PLAN(DSNTEP12) -\n" +
		"       LIB('DSNC10.DBCG.RUNLIB.LOAD') PARMS('/ALIGN(MID)')\n" +
		"  END\n"
	if got := stream.String(); got != want {
		t.Errorf("stream = %q, want %q", got, want)
	}
	if data.Content != req.Input.Content {
		t.Errorf("payload modified: %q", data.Content)
	}
}

func TestSQLGenerateValidation(t *testing.T) {
	tests := []struct {
		name string
		req  SQLRequest
	}{
		{
			name: "missing system",
			req:  SQLRequest{Plan: "P", Toollib: "L", Input: DataStream{Content: "SELECT 1;"}},
		},
		{
			name: "missing plan",
			req:  SQLRequest{System: "DB2P", Toollib: "L", Input: DataStream{Content: "SELECT 1;"}},
		},
		{
			name: "missing toollib",
			req:  SQLRequest{System: "DB2P", Plan: "P", Input: DataStream{Content: "SELECT 1;"}},
		},
		{
			name: "both literal and file input",
			req:  SQLRequest{System: "DB2P", Plan: "P", Toollib: "L", Input: DataStream{Content: "SELECT 1;", Path: "/tmp/q.sql"}},
		},
		{
			name: "neither literal nor file input",
			req:  SQLRequest{System: "DB2P", Plan: "P", Toollib: "L"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := tt.req.Generate()
			if err == nil {
				t.Fatal("Generate() expected error, got nil")
			}
			if kind := errors.KindOf(err); kind != errors.ValidationFailed {
				t.Errorf("kind = %v, want %v", kind, errors.ValidationFailed)
			}
		})
	}
}

func TestSQLGenerateIdempotent(t *testing.T) {
	req := SQLRequest{
		System:  "DB2P",
		Plan:    "DSNTEP12",
		Toollib: "DSNC10.DBCG.RUNLIB.LOAD",
		Input:   DataStream{Content: "SELECT 1;"},
	}
	first, _, err := req.Generate()
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	second, _, err := req.Generate()
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if first.String() != second.String() {
		t.Errorf("generation not idempotent:\n%q\n%q", first.String(), second.String())
	}
}

func TestStreamTerminator(t *testing.T) {
	req := SQLRequest{System: "S", Plan: "P", Toollib: "L", Input: DataStream{Content: "x"}}
	stream, _, err := req.Generate()
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	lines := stream.Lines()
	if lines[len(lines)-1] != "  END" {
		t.Errorf("last line = %q, want %q", lines[len(lines)-1], "  END")
	}
	if n := strings.Count(stream.String(), "  END"); n != 1 {
		t.Errorf("terminator count = %d, want 1", n)
	}
}
