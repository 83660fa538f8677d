// Copyright (c) 2025 batchtsocmd
// Licensed under the MIT License. See LICENSE file in the project root for details.

package output

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/text/encoding/charmap"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		in          string
		wantConsole bool
		wantPath    string
	}{
		{name: "stdout literal", in: "stdout", wantConsole: true},
		{name: "empty", in: "", wantConsole: true},
		{name: "file path", in: "/tmp/out.txt", wantPath: "/tmp/out.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Parse(tt.in)
			if d.IsConsole() != tt.wantConsole {
				t.Errorf("IsConsole() = %v, want %v", d.IsConsole(), tt.wantConsole)
			}
			if d.Path() != tt.wantPath {
				t.Errorf("Path() = %q, want %q", d.Path(), tt.wantPath)
			}
		})
	}
}

func ebcdicFile(t *testing.T, dir, name, text string) string {
	t.Helper()
	data, err := charmap.CodePage1047.NewEncoder().Bytes([]byte(text))
	if err != nil {
		t.Fatal(err)
	}
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, data, 0o600); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestComposeOrderAndSkips(t *testing.T) {
	dir := t.TempDir()
	primary := ebcdicFile(t, dir, "systsprt", "FIRST\n")
	secondary := ebcdicFile(t, dir, "sysprint", "SECOND\n")
	empty := filepath.Join(dir, "empty")
	if err := os.WriteFile(empty, nil, 0o600); err != nil {
		t.Fatal(err)
	}

	var sb strings.Builder
	Compose(&sb, primary, secondary, empty, "", filepath.Join(dir, "missing"))

	if got := sb.String(); got != "FIRST\nSECOND\n" {
		t.Errorf("composed = %q, want %q", got, "FIRST\nSECOND\n")
	}
}

func TestComposeEmptyWritesNothing(t *testing.T) {
	dir := t.TempDir()
	empty := filepath.Join(dir, "empty")
	if err := os.WriteFile(empty, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	var sb strings.Builder
	Compose(&sb, empty)
	if sb.Len() != 0 {
		t.Errorf("composed = %q, want empty", sb.String())
	}
}
