// Copyright (c) 2025 batchtsocmd
// Licensed under the MIT License. See LICENSE file in the project root for details.

package job

import (
	"context"

	"batchtsocmd/cli/internal/dsn"
	"batchtsocmd/cli/internal/errors"
	"batchtsocmd/cli/internal/scratch"
)

// generator is implemented by every request variant.
type generator interface {
	Generate() (dsn.Stream, dsn.DataStream, error)
}

// SQL submits a DSNTEP2 SQL job built from req.
func (r *Runner) SQL(ctx context.Context, req dsn.SQLRequest, opts Options) (int, error) {
	return r.run(ctx, req, opts)
}

// Operator submits a DSNTIAD operator-command job built from req.
func (r *Runner) Operator(ctx context.Context, req dsn.OperatorRequest, opts Options) (int, error) {
	return r.run(ctx, req, opts)
}

// Bind submits a BIND PACKAGE / BIND PLAN job built from req.
func (r *Runner) Bind(ctx context.Context, req dsn.BindRequest, opts Options) (int, error) {
	return r.run(ctx, req, opts)
}

// RunProgram submits a DSN RUN PROGRAM job built from req.
func (r *Runner) RunProgram(ctx context.Context, req dsn.RunRequest, opts Options) (int, error) {
	return r.run(ctx, req, opts)
}

// run generates the streams for req, materializes them as scratch files and
// hands off to Submit. Generation happens before any resource is created, so
// a validation failure leaks nothing.
func (r *Runner) run(ctx context.Context, req generator, opts Options) (int, error) {
	stream, data, err := req.Generate()
	if err != nil {
		return 0, err
	}

	r.verbosef(opts, "generated SYSTSIN:\n%s", stream.String())

	tracker := scratch.New()
	defer tracker.ReleaseAll()

	systsinPath, err := tracker.CreateWith("batchtsocmd-*.systsin.src", stream.String())
	if err != nil {
		return 0, errors.Wrap(errors.EncodingFailed, "materialize SYSTSIN", err)
	}

	sysinPath := data.Path
	if !data.FromFile() {
		sysinPath, err = tracker.CreateWith("batchtsocmd-*.sysin.src", data.Content)
		if err != nil {
			return 0, errors.Wrap(errors.EncodingFailed, "materialize SYSIN", err)
		}
	}

	return r.Submit(ctx, systsinPath, sysinPath, opts)
}
