// Copyright (c) 2025 batchtsocmd
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"io"
	"os"
	"strings"

	"batchtsocmd/cli/internal/config"
	"batchtsocmd/cli/internal/dbrm"
	"batchtsocmd/cli/internal/errors"
	"batchtsocmd/cli/internal/output"

	"github.com/pterm/pterm"
)

// outputFlags are the destination flags shared by every subcommand.
type outputFlags struct {
	systsprt string
	sysprint string
	verbose  bool
}

// destinations resolves the flag values into tagged output destinations.
func (f outputFlags) destinations() (output.Destination, output.Destination) {
	return output.Parse(f.systsprt), output.Parse(f.sysprint)
}

// loadDefaults reads the optional config file; a broken file degrades to
// zero defaults with a warning rather than blocking the submission.
func loadDefaults() config.Defaults {
	d, err := config.Load()
	if err != nil {
		pterm.Println("Warning: ignoring defaults file:", err)
	}
	return d
}

// splitConcat splits a colon-separated concatenation into an ordered list.
func splitConcat(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ":") {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// resolveDbrmlib interprets a DBRMLIB value: a path containing '/' names a
// bind-library directory whose members are discovered by the dbrm scanner,
// anything else is a (possibly concatenated) dataset list.
func resolveDbrmlib(arg string, verbose bool) ([]string, error) {
	if arg == "" {
		return nil, nil
	}
	if !strings.Contains(arg, "/") {
		return splitConcat(arg), nil
	}
	members, err := dbrm.Members(arg)
	if err != nil {
		return nil, errors.Wrap(errors.ValidationFailed, "DBRMLIB directory does not exist: "+arg, err)
	}
	if verbose {
		if len(members) == 0 {
			pterm.Printf("Warning: no %s files found in %s\n", dbrm.Suffix, arg)
		} else {
			pterm.Printf("Found %d DBRMLIB datasets in %s\n", len(members), arg)
		}
	}
	return members, nil
}

// readStdin captures the whole of standard input for use as the SYSIN payload.
func readStdin(verbose bool) (string, error) {
	if verbose {
		pterm.Println("Reading SYSIN from stdin...")
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", errors.Wrap(errors.ValidationFailed, "failed to read stdin", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", errors.New(errors.ValidationFailed, "no input provided via stdin")
	}
	return string(data), nil
}

// requireParams returns a usage error naming every missing parameter, or nil.
func requireParams(missing []string) error {
	if len(missing) == 0 {
		return nil
	}
	return errors.New(errors.UsageError, "missing required parameters: "+strings.Join(missing, ", "))
}
