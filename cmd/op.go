// Copyright (c) 2025 batchtsocmd
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"batchtsocmd/cli/internal/config"
	"batchtsocmd/cli/internal/dsn"
	"batchtsocmd/cli/internal/job"

	"github.com/spf13/cobra"
)

var opFlags struct {
	sysin   string
	system  string
	plan    string
	toollib string
	steplib string
	out     outputFlags
}

// opCmd executes Db2 operator commands through DSNTIAD.
var opCmd = &cobra.Command{
	Use:   "op",
	Short: "Execute Db2 operator commands via DSNTIAD",
	Long: `The op command runs Db2 operator commands (-DISPLAY, -START, -STOP, ...)
through DSNTIAD under IKJEFT1B. Commands are read from --sysin or from stdin,
one per line; the leading '-' prefix is added automatically when missing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults := loadDefaults()
		system := config.Resolve(opFlags.system, config.EnvSystem, defaults.System)
		plan := config.Resolve(opFlags.plan, config.EnvPlan, defaults.Plan)
		toollib := config.Resolve(opFlags.toollib, config.EnvToollib, defaults.Toollib)
		steplib := config.Resolve(opFlags.steplib, config.EnvSteplib, defaults.Steplib)

		var missing []string
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

		input := dsn.DataStream{Path: opFlags.sysin}
		if opFlags.sysin == "" {
			content, err := readStdin(opFlags.out.verbose)
			if err != nil {
				return err
			}
			input = dsn.DataStream{Content: content}
		}

		systsprt, sysprint := opFlags.out.destinations()
		rc, err := runner.Operator(cmd.Context(), dsn.OperatorRequest{
			System:  system,
			Plan:    plan,
			Toollib: toollib,
			Input:   input,
		}, job.Options{
			SYSTSPRT: systsprt,
			SYSPRINT: sysprint,
			Steplib:  splitConcat(steplib),
			Verbose:  opFlags.out.verbose,
		})
		if err != nil {
			return err
		}
		exitCode = rc
		return nil
	},
}

func init() {
	opCmd.Flags().StringVar(&opFlags.sysin, "sysin", "", "Path to file containing operator commands (default: stdin)")
	opCmd.Flags().StringVar(&opFlags.system, "system", "", "Db2 subsystem ID (or set DB2_SYSTEM)")
	opCmd.Flags().StringVar(&opFlags.plan, "plan", "", "Db2 plan name for DSNTIAD (or set DB2_PLAN)")
	opCmd.Flags().StringVar(&opFlags.toollib, "toollib", "", "Db2 tool library containing DSNTIAD (or set DB2_TOOLLIB)")
	opCmd.Flags().StringVar(&opFlags.steplib, "steplib", "", "STEPLIB dataset name(s), colon-separated for concatenation")
	opCmd.Flags().StringVar(&opFlags.out.systsprt, "systsprt", "stdout", "Path to SYSTSPRT output file or 'stdout'")
	opCmd.Flags().StringVar(&opFlags.out.sysprint, "sysprint", "stdout", "Path to SYSPRINT output file or 'stdout'")
	opCmd.Flags().BoolVarP(&opFlags.out.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.AddCommand(opCmd)
}
