// Copyright (c) 2025 batchtsocmd
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package job orchestrates one batch-interpreter submission end to end:
// validate inputs, materialize scratch resources, run the encoding pipeline,
// submit through the execution adapter, recombine captured output, and
// release every scratch resource on all exit paths.
//
// A submission is strictly sequential; the caller blocks until it completes
// or the surrounding context is interrupted.
package job

import (
	"context"
	"fmt"
	"io"
	"os"

	"batchtsocmd/cli/internal/ccsid"
	"batchtsocmd/cli/internal/encode"
	"batchtsocmd/cli/internal/errors"
	"batchtsocmd/cli/internal/mvs"
	"batchtsocmd/cli/internal/output"
	"batchtsocmd/cli/internal/scratch"

	"github.com/google/uuid"
)

// Interpreter is the batch TSO terminal monitor program submitted for every
// operation.
const Interpreter = "IKJEFT1B"

// DD names of the fixed resource set.
const (
	ddSteplib  = "STEPLIB"
	ddDbrmlib  = "DBRMLIB"
	ddSystsprt = "SYSTSPRT"
	ddSystsin  = "SYSTSIN"
	ddSysprint = "SYSPRINT"
	ddSysudump = "SYSUDUMP"
	ddSysin    = "SYSIN"
)

// Options selects output destinations and library concatenations for one
// submission.
type Options struct {
	SYSTSPRT output.Destination
	SYSPRINT output.Destination
	Steplib  []string
	Dbrmlib  []string
	Verbose  bool
}

// Runner holds the collaborators of a submission. The zero collaborators are
// replaced with the real ones by New; tests inject fakes.
type Runner struct {
	Exec    mvs.Executor
	Conv    ccsid.Converter
	Console io.Writer
	ErrOut  io.Writer
}

// New returns a Runner wired to the real collaborators.
func New() *Runner {
	return &Runner{
		Exec:    mvs.Command{},
		Conv:    ccsid.Service{},
		Console: os.Stdout,
		ErrOut:  os.Stderr,
	}
}

// Submit runs the full pipeline on caller-supplied SYSTSIN and SYSIN files
// and returns the program's completion code verbatim. Scratch resources are
// released before Submit returns, on success and on every failure path.
func (r *Runner) Submit(ctx context.Context, systsinPath, sysinPath string, opts Options) (int, error) {
	if err := checkReadable(systsinPath, "SYSTSIN"); err != nil {
		return 0, err
	}
	if err := checkReadable(sysinPath, "SYSIN"); err != nil {
		return 0, err
	}

	id := uuid.NewString()
	r.verbosef(opts, "submission %s", id)
	r.verbosef(opts, "SYSTSIN: %s", systsinPath)
	r.verbosef(opts, "SYSIN: %s", sysinPath)

	tracker := scratch.New()
	defer tracker.ReleaseAll()

	// Control stream: character-set conversion only. The control stream is
	// submitted unpadded even though its DD declares lrecl=80.
	tmpSystsin, err := tracker.Create("batchtsocmd-*.systsin")
	if err != nil {
		return 0, errors.Wrap(errors.EncodingFailed, "create SYSTSIN scratch file", err)
	}
	if err := r.convert(opts, systsinPath, tmpSystsin); err != nil {
		return 0, err
	}

	// Data stream: pad to fixed records, then convert.
	tmpPadded, err := tracker.Create("batchtsocmd-*.sysin.padded")
	if err != nil {
		return 0, errors.Wrap(errors.EncodingFailed, "create padded scratch file", err)
	}
	warnings, err := encode.PadRecords(sysinPath, tmpPadded)
	for _, w := range warnings {
		fmt.Fprintf(r.ErrOut, "Warning: %s\n", w)
	}
	if err != nil {
		return 0, errors.Wrap(errors.EncodingFailed, "pad SYSIN records", err)
	}
	tmpSysin, err := tracker.Create("batchtsocmd-*.sysin")
	if err != nil {
		return 0, errors.Wrap(errors.EncodingFailed, "create SYSIN scratch file", err)
	}
	if err := r.convert(opts, tmpPadded, tmpSysin); err != nil {
		return 0, err
	}

	systsprtPath, err := r.capturePath(tracker, opts.SYSTSPRT, "batchtsocmd-*.systsprt")
	if err != nil {
		return 0, err
	}
	sysprintPath, err := r.capturePath(tracker, opts.SYSPRINT, "batchtsocmd-*.sysprint")
	if err != nil {
		return 0, err
	}

	dds := resourceSet(tmpSystsin, tmpSysin, systsprtPath, sysprintPath, opts)
	if opts.Verbose {
		r.verbosef(opts, "executing %s via mvscmdauth", Interpreter)
		for _, dd := range dds {
			r.verbosef(opts, "  %s: %s", dd.Name, dd.Spec())
		}
	}

	res, err := r.Exec.Execute(ctx, Interpreter, dds)
	if err != nil {
		if ctx.Err() != nil {
			return 0, errors.Wrap(errors.Interrupted, "submission interrupted", ctx.Err())
		}
		return 0, err
	}
	if res.RC != 0 {
		fmt.Fprintf(r.ErrOut, "Error: %s ended with return code %d\n", Interpreter, res.RC)
		if res.Stderr != "" {
			fmt.Fprintf(r.ErrOut, "Error details:\n%s\n", res.Stderr)
		}
	}

	// Console-directed captures come back in fixed order: SYSTSPRT first.
	var console []string
	if opts.SYSTSPRT.IsConsole() {
		console = append(console, systsprtPath)
	}
	if opts.SYSPRINT.IsConsole() {
		console = append(console, sysprintPath)
	}
	output.Compose(r.Console, console...)

	if !opts.SYSTSPRT.IsConsole() {
		ccsid.Tag(opts.SYSTSPRT.Path())
	}
	if !opts.SYSPRINT.IsConsole() {
		ccsid.Tag(opts.SYSPRINT.Path())
	}

	r.verbosef(opts, "return code: %d", res.RC)
	return res.RC, nil
}

// resourceSet assembles the DD statements in the fixed submission order:
// library concatenations, primary output, control input, secondary output,
// dump placeholder, data input.
func resourceSet(systsin, sysin, systsprt, sysprint string, opts Options) []mvs.DDStatement {
	var dds []mvs.DDStatement
	if len(opts.Steplib) > 0 {
		dds = append(dds, mvs.Concat(ddSteplib, opts.Steplib))
	}
	if len(opts.Dbrmlib) > 0 {
		dds = append(dds, mvs.Concat(ddDbrmlib, opts.Dbrmlib))
	}
	dds = append(dds,
		mvs.DD(ddSystsprt, mvs.FileDefinition{Path: systsprt, RecFM: "FB"}),
		mvs.DD(ddSystsin, mvs.FileDefinition{Path: systsin, LRecl: encode.RecordLength, RecFM: "FB"}),
		mvs.DD(ddSysprint, mvs.FileDefinition{Path: sysprint, RecFM: "FB"}),
		mvs.DD(ddSysudump, mvs.Dummy),
		mvs.DD(ddSysin, mvs.FileDefinition{Path: sysin, LRecl: encode.RecordLength, RecFM: "FB"}),
	)
	return dds
}

// capturePath substitutes a tracked scratch file for a console destination;
// file destinations are passed through.
func (r *Runner) capturePath(tracker *scratch.Tracker, dest output.Destination, pattern string) (string, error) {
	if !dest.IsConsole() {
		return dest.Path(), nil
	}
	p, err := tracker.Create(pattern)
	if err != nil {
		return "", errors.Wrap(errors.AdapterFailed, "create capture scratch file", err)
	}
	ccsid.Tag(p)
	return p, nil
}

func (r *Runner) convert(opts Options, src, dst string) error {
	res, err := r.Conv.Convert(src, dst)
	if err != nil {
		return errors.Wrap(errors.EncodingFailed, "convert "+src, err)
	}
	if res.ConversionNeeded {
		r.verbosef(opts, "converted %s from %s to %s", src, res.Detected, ccsid.Target)
	} else {
		r.verbosef(opts, "%s already in %s, copied as-is", src, ccsid.Target)
	}
	return nil
}

func (r *Runner) verbosef(opts Options, format string, args ...any) {
	if opts.Verbose {
		fmt.Fprintf(r.ErrOut, format+"\n", args...)
	}
}

func checkReadable(path, name string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(errors.ValidationFailed, name+" file is not readable", err)
	}
	f.Close()
	return nil
}
