// Copyright (c) 2025 batchtsocmd
// Licensed under the MIT License. See LICENSE file in the project root for details.

package encode

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func padFile(t *testing.T, content string) (string, []string) {
	t.Helper()
	dir := t.TempDir()
	src := filepath.Join(dir, "in.txt")
	dst := filepath.Join(dir, "out.txt")
	if err := os.WriteFile(src, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	warnings, err := PadRecords(src, dst)
	if err != nil {
		t.Fatalf("PadRecords() error = %v", err)
	}
	out, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	return string(out), warnings
}

func TestPadRecords(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		wantLines    []string
		wantWarnings int
	}{
		{
			name:      "short line right padded",
			content:   "SELECT 1;\n",
			wantLines: []string{"SELECT 1;" + strings.Repeat(" ", 71)},
		},
		{
			name:      "exactly 80 unchanged",
			content:   strings.Repeat("A", 80) + "\n",
			wantLines: []string{strings.Repeat("A", 80)},
		},
		{
			name:         "long line truncated to first 80",
			content:      strings.Repeat("B", 95) + "\n",
			wantLines:    []string{strings.Repeat("B", 80)},
			wantWarnings: 1,
		},
		{
			name:      "crlf stripped",
			content:   "SELECT 2;\r\n",
			wantLines: []string{"SELECT 2;" + strings.Repeat(" ", 71)},
		},
		{
			name:      "final line without newline still padded",
			content:   "COMMIT;",
			wantLines: []string{"COMMIT;" + strings.Repeat(" ", 73)},
		},
		{
			name:    "multiple lines",
			content: "A\n" + strings.Repeat("C", 100) + "\nB\n",
			wantLines: []string{
				"A" + strings.Repeat(" ", 79),
				strings.Repeat("C", 80),
				"B" + strings.Repeat(" ", 79),
			},
			wantWarnings: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, warnings := padFile(t, tt.content)
			want := strings.Join(tt.wantLines, "\n") + "\n"
			if got != want {
				t.Errorf("padded = %q, want %q", got, want)
			}
			if len(warnings) != tt.wantWarnings {
				t.Errorf("warnings = %d, want %d", len(warnings), tt.wantWarnings)
			}
			for _, line := range strings.Split(strings.TrimSuffix(got, "\n"), "\n") {
				if len(line) != RecordLength {
					t.Errorf("record length = %d, want %d: %q", len(line), RecordLength, line)
				}
			}
		})
	}
}
