// Copyright (c) 2025 batchtsocmd
// Licensed under the MIT License. See LICENSE file in the project root for details.

package dsn

import (
	"strings"
	"testing"
)

func TestOperatorGenerateStream(t *testing.T) {
	req := OperatorRequest{
		System:  "DB2P",
		Plan:    "DSNTIA12",
		Toollib: "DSNC10.DBCG.RUNLIB.LOAD",
		Input:   DataStream{Content: "DISPLAY DATABASE(*)"},
	}
	stream, _, err := req.Generate()
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	want := "  DSN SYSTEM(DB2P)\n" +
		"  RUN PROGRAM(DSNTIAD) PLAN(DSNTIA12) -\n" +
		"       LIB('DSNC10.DBCG.RUNLIB.LOAD')\n" +
		"  END\n"
	if got := stream.String(); got != want {
		t.Errorf("stream = %q, want %q", got, want)
	}
}

func TestOperatorNormalization(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "prefix added when missing",
			input: "DISPLAY DATABASE(*)",
			want:  "-DISPLAY DATABASE(*)\n",
		},
		{
			name:  "existing prefix kept",
			input: "-DISPLAY DATABASE(*)",
			want:  "-DISPLAY DATABASE(*)\n",
		},
		{
			name:  "indented command loses leading blanks",
			input: "   START DATABASE(TESTDB)",
			want:  "-START DATABASE(TESTDB)\n",
		},
		{
			name:  "blank lines untouched",
			input: "DISPLAY THREAD(*)\n\nSTOP DATABASE(TESTDB)\n",
			want:  "-DISPLAY THREAD(*)\n\n-STOP DATABASE(TESTDB)\n",
		},
		{
			name:  "mixed prefixes",
			input: "-DISPLAY UTILITY(*)\nDISPLAY THREAD(*)",
			want:  "-DISPLAY UTILITY(*)\n-DISPLAY THREAD(*)\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := OperatorRequest{
				System:  "DB2P",
				Plan:    "P",
				Toollib: "L",
				Input:   DataStream{Content: tt.input},
			}
			_, data, err := req.Generate()
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			if data.Content != tt.want {
				t.Errorf("normalized = %q, want %q", data.Content, tt.want)
			}
			for _, line := range strings.Split(data.Content, "\n") {
				if strings.TrimSpace(line) == "" {
					continue
				}
				if !strings.HasPrefix(line, "-") || strings.HasPrefix(line, "--") {
					t.Errorf("line %q does not start with exactly one prefix", line)
				}
			}
		})
	}
}

func TestOperatorFileInputPassthrough(t *testing.T) {
	req := OperatorRequest{
		System:  "DB2P",
		Plan:    "P",
		Toollib: "L",
		Input:   DataStream{Path: "/u/user/ops.txt"},
	}
	_, data, err := req.Generate()
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if !data.FromFile() || data.Path != "/u/user/ops.txt" {
		t.Errorf("file input altered: %+v", data)
	}
}
