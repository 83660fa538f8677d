// Copyright (c) 2025 batchtsocmd
// Licensed under the MIT License. See LICENSE file in the project root for details.

package dsn

import (
	"testing"

	"batchtsocmd/cli/internal/errors"
)

func TestRunGenerate(t *testing.T) {
	tests := []struct {
		name string
		req  RunRequest
		want string
	}{
		{
			name: "without parms",
			req:  RunRequest{Program: "BANKDATA", System: "DB2P", Plan: "CBSA", Toollib: "CBSA.LOADLIB"},
			want: "  DSN SYSTEM(DB2P)\n" +
				"  RUN PROGRAM(BANKDATA) PLAN(CBSA) -\n" +
				"       LIB('CBSA.LOADLIB')\n" +
				"  END\n",
		},
		{
			name: "with parms",
			req:  RunRequest{Program: "BANKDATA", System: "DB2P", Plan: "CBSA", Toollib: "CBSA.LOADLIB", Parms: "1,100,1000"},
			want: "  DSN SYSTEM(DB2P)\n" +
				"  RUN PROGRAM(BANKDATA) PLAN(CBSA) -\n" +
				"       LIB('CBSA.LOADLIB') PARM('1,100,1000')\n" +
				"  END\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stream, data, err := tt.req.Generate()
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			if got := stream.String(); got != tt.want {
				t.Errorf("stream = %q, want %q", got, tt.want)
			}
			if data.Content != " " {
				t.Errorf("data stream = %q, want blank placeholder", data.Content)
			}
		})
	}
}

func TestRunGenerateValidation(t *testing.T) {
	tests := []struct {
		name string
		req  RunRequest
	}{
		{name: "missing program", req: RunRequest{System: "S", Plan: "P", Toollib: "L"}},
		{name: "missing system", req: RunRequest{Program: "PGM", Plan: "P", Toollib: "L"}},
		{name: "missing plan", req: RunRequest{Program: "PGM", System: "S", Toollib: "L"}},
		{name: "missing toollib", req: RunRequest{Program: "PGM", System: "S", Plan: "P"}},
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
