// Copyright (c) 2025 batchtsocmd
// Licensed under the MIT License. See LICENSE file in the project root for details.

package mvs

import (
	"context"
	"strings"
	"testing"

	"batchtsocmd/cli/internal/errors"
)

func TestDefinitionSpec(t *testing.T) {
	tests := []struct {
		name string
		def  Definition
		want string
	}{
		{
			name: "dataset",
			def:  DatasetDefinition{Name: "DB2V13.SDSNLOAD"},
			want: "DB2V13.SDSNLOAD",
		},
		{
			name: "file with record attributes",
			def:  FileDefinition{Path: "/tmp/sysin", LRecl: 80, RecFM: "FB"},
			want: "/tmp/sysin,lrecl=80,recfm=FB",
		},
		{
			name: "file with recfm only",
			def:  FileDefinition{Path: "/tmp/systsprt", RecFM: "FB"},
			want: "/tmp/systsprt,recfm=FB",
		},
		{
			name: "dummy",
			def:  Dummy,
			want: "DUMMY",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.def.Spec(); got != tt.want {
				t.Errorf("Spec() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConcatPreservesOrder(t *testing.T) {
	dd := Concat("STEPLIB", []string{"DB2V13.SDSNEXIT", "DB2V13.SDSNLOAD"})
	want := "DB2V13.SDSNEXIT:DB2V13.SDSNLOAD"
	if got := dd.Spec(); got != want {
		t.Errorf("Spec() = %q, want %q", got, want)
	}
}

func TestCommandArgs(t *testing.T) {
	dds := []DDStatement{
		Concat("STEPLIB", []string{"DB2V13.SDSNLOAD"}),
		DD("SYSTSIN", FileDefinition{Path: "/tmp/systsin", LRecl: 80, RecFM: "FB"}),
		DD("SYSUDUMP", Dummy),
	}
	got := Command{}.Args("IKJEFT1B", dds)
	want := []string{
		"--pgm=IKJEFT1B",
		"--steplib=DB2V13.SDSNLOAD",
		"--systsin=/tmp/systsin,lrecl=80,recfm=FB",
		"--sysudump=DUMMY",
	}
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Errorf("Args() = %v, want %v", got, want)
	}
}

func TestExecuteMissingBinaryIsAdapterFailure(t *testing.T) {
	c := Command{Path: "/nonexistent/mvscmdauth"}
	_, err := c.Execute(context.Background(), "IKJEFT1B", nil)
	if err == nil {
		t.Fatal("Execute() expected error for missing binary")
	}
	if kind := errors.KindOf(err); kind != errors.AdapterFailed {
		t.Errorf("kind = %v, want %v", kind, errors.AdapterFailed)
	}
}

func TestExecuteNonzeroRCIsNotAnError(t *testing.T) {
	c := Command{Path: "false"}
	res, err := c.Execute(context.Background(), "IKJEFT1B", nil)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if res.RC == 0 {
		t.Error("RC = 0, want nonzero")
	}
}

func TestExecuteInterrupted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := Command{Path: "sleep"}
	_, err := c.Execute(ctx, "IKJEFT1B", nil)
	if err == nil {
		t.Fatal("Execute() expected error for canceled context")
	}
	if kind := errors.KindOf(err); kind != errors.Interrupted {
		t.Errorf("kind = %v, want %v", kind, errors.Interrupted)
	}
}
