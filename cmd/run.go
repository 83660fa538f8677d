// Copyright (c) 2025 batchtsocmd
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"batchtsocmd/cli/internal/config"
	"batchtsocmd/cli/internal/dsn"
	"batchtsocmd/cli/internal/job"

	"github.com/spf13/cobra"
)

var runFlags struct {
	program string
	system  string
	plan    string
	toollib string
	parms   string
	steplib string
	out     outputFlags
}

// runCmd executes an arbitrary Db2-bound program via DSN RUN PROGRAM.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a Db2-bound program via DSN RUN PROGRAM",
	Long: `The run command executes a named program bound to a Db2 plan through
DSN RUN PROGRAM under IKJEFT1B. All parameters travel on the RUN PROGRAM
subcommand; no SYSIN input is used.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults := loadDefaults()
		system := config.Resolve(runFlags.system, config.EnvSystem, defaults.System)
		plan := config.Resolve(runFlags.plan, config.EnvPlan, defaults.Plan)
		toollib := config.Resolve(runFlags.toollib, config.EnvToollib, defaults.Toollib)
		steplib := config.Resolve(runFlags.steplib, config.EnvSteplib, defaults.Steplib)

		var missing []string
		if runFlags.program == "" {
			missing = append(missing, "--program")
		}
		if system == "" {
			missing = append(missing, "--system (or DB2_SYSTEM)")
		}
		if plan == "" {
			missing = append(missing, "--plan (or DB2_PLAN)")
		}
		if toollib == "" {
			missing = append(missing, "--toollib (or DB2_TOOLLIB)")
		}
		if err := requireParams(missing); err != nil {
			return err
		}

		systsprt, sysprint := runFlags.out.destinations()
		rc, err := runner.RunProgram(cmd.Context(), dsn.RunRequest{
			Program: runFlags.program,
			System:  system,
			Plan:    plan,
			Toollib: toollib,
			Parms:   runFlags.parms,
		}, job.Options{
			SYSTSPRT: systsprt,
			SYSPRINT: sysprint,
			Steplib:  splitConcat(steplib),
			Verbose:  runFlags.out.verbose,
		})
		if err != nil {
			return err
		}
		exitCode = rc
		return nil
	},
}

func init() {
	runCmd.Flags().StringVar(&runFlags.program, "program", "", "Name of the program to run")
	runCmd.Flags().StringVar(&runFlags.system, "system", "", "Db2 subsystem ID (or set DB2_SYSTEM)")
	runCmd.Flags().StringVar(&runFlags.plan, "plan", "", "Db2 plan name bound for the program (or set DB2_PLAN)")
	runCmd.Flags().StringVar(&runFlags.toollib, "toollib", "", "Load library containing the program (or set DB2_TOOLLIB)")
	runCmd.Flags().StringVar(&runFlags.parms, "parms", "", "Optional PARM string passed to the program")
	runCmd.Flags().StringVar(&runFlags.steplib, "steplib", "", "STEPLIB dataset name(s), colon-separated for concatenation")
	runCmd.Flags().StringVar(&runFlags.out.systsprt, "systsprt", "stdout", "Path to SYSTSPRT output file or 'stdout'")
	runCmd.Flags().StringVar(&runFlags.out.sysprint, "sysprint", "stdout", "Path to SYSPRINT output file or 'stdout'")
	runCmd.Flags().BoolVarP(&runFlags.out.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.AddCommand(runCmd)
}
