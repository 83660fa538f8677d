// Copyright (c) 2025 batchtsocmd
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for the batchtsocmd application.
// It implements subcommands for the four Db2 batch operations (sql, op, bind, run)
// plus raw SYSTSIN/SYSIN submission, using the Cobra CLI framework. The package
// handles flag parsing, environment-variable and config-file fallback, and maps
// submission outcomes to process exit codes.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"batchtsocmd/cli/internal/errors"
	"batchtsocmd/cli/internal/job"
	"batchtsocmd/cli/internal/logging"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	showVersion bool

	// exitCode carries the program completion code of a successful
	// submission. Nonzero program RCs are outcomes, not errors.
	exitCode int

	// runner is shared by all subcommands; tests replace its collaborators.
	runner = job.New()
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:           "batchtsocmd",
	Short:         "Submit TSO and Db2 batch jobs via IKJEFT1B with encoding conversion",
	Long: `batchtsocmd generates SYSTSIN and SYSIN input streams for batch TSO
and Db2 operations, converts them to the host character set (IBM-1047),
submits IKJEFT1B through mvscmdauth and writes the captured SYSTSPRT and
SYSPRINT output back to the console or to tagged files.

Input files can be ASCII (ISO8859-1) or EBCDIC (IBM-1047); the encoding is
auto-detected and untagged input is assumed to be EBCDIC already.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			pterm.Printf("batchtsocmd %s\n", Version)
			return nil
		}
		return cmd.Help()
	},
}

// Execute runs the CLI application. It installs the interrupt context so a
// signal during a submission still releases scratch resources, then maps the
// outcome to the process exit code.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if errors.KindOf(err) == errors.Interrupted {
			fmt.Fprintln(os.Stderr, "\nInterrupted by user")
		} else {
			fmt.Fprintln(os.Stderr, logging.PresentError("ERROR", err))
		}
		stop()
		os.Exit(errors.ExitCode(err))
	}
	stop()
	os.Exit(exitCode)
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show version information")
}
