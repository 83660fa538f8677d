// Copyright (c) 2025 batchtsocmd
// Licensed under the MIT License. See LICENSE file in the project root for details.

package mvs

import (
	"bytes"
	"context"
	stderrors "errors"
	"os/exec"
	"strings"

	"batchtsocmd/cli/internal/errors"
)

// Result is the outcome of one program execution. RC is the program's
// completion code, returned verbatim; a nonzero RC is not an adapter error.
type Result struct {
	RC     int
	Stdout string
	Stderr string
}

// Executor submits a named program with a DD statement set.
type Executor interface {
	Execute(ctx context.Context, pgm string, dds []DDStatement) (Result, error)
}

// Command invokes programs through the ZOAU mvscmdauth utility.
type Command struct {
	// Path is the collaborator binary; empty means "mvscmdauth" on PATH.
	Path string
}

// Args renders the mvscmdauth argument list for pgm and dds.
func (c Command) Args(pgm string, dds []DDStatement) []string {
	args := make([]string, 0, len(dds)+1)
	args = append(args, "--pgm="+pgm)
	for _, dd := range dds {
		args = append(args, "--"+strings.ToLower(dd.Name)+"="+dd.Spec())
	}
	return args
}

// Execute runs the program and returns its completion code verbatim.
// A failure to run the collaborator itself (binary missing, spawn error)
// is reported as an adapter failure.
func (c Command) Execute(ctx context.Context, pgm string, dds []DDStatement) (Result, error) {
	bin := c.Path
	if bin == "" {
		bin = "mvscmdauth"
	}

	cmd := exec.CommandContext(ctx, bin, c.Args(pgm, dds)...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err == nil {
		return res, nil
	}
	if ctx.Err() != nil {
		return res, errors.Wrap(errors.Interrupted, "submission interrupted", ctx.Err())
	}
	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) {
		res.RC = exitErr.ExitCode()
		return res, nil
	}
	return res, errors.Wrap(errors.AdapterFailed, "failed to run "+bin, err)
}
