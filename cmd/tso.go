// Copyright (c) 2025 batchtsocmd
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"batchtsocmd/cli/internal/config"
	"batchtsocmd/cli/internal/job"

	"github.com/spf13/cobra"
)

var tsoFlags struct {
	systsin string
	sysin   string
	steplib string
	dbrmlib string
	out     outputFlags
}

// tsoCmd submits caller-supplied SYSTSIN and SYSIN files without generating
// anything. Both streams still pass through the encoding pipeline.
var tsoCmd = &cobra.Command{
	Use:   "tso",
	Short: "Submit raw SYSTSIN and SYSIN files via IKJEFT1B",
	Long: `The tso command submits caller-supplied SYSTSIN and SYSIN input files
through IKJEFT1B. The SYSIN stream is padded to 80-byte records and both
streams are converted to IBM-1047 before submission.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults := loadDefaults()
		steplib := config.Resolve(tsoFlags.steplib, config.EnvSteplib, defaults.Steplib)
		dbrmlib := config.Resolve(tsoFlags.dbrmlib, config.EnvDbrmlib, defaults.Dbrmlib)

		var missing []string
		if tsoFlags.systsin == "" {
			missing = append(missing, "--systsin")
		}
		if tsoFlags.sysin == "" {
			missing = append(missing, "--sysin")
		}
		if err := requireParams(missing); err != nil {
			return err
		}

		dbrmlibs, err := resolveDbrmlib(dbrmlib, tsoFlags.out.verbose)
		if err != nil {
			return err
		}

		systsprt, sysprint := tsoFlags.out.destinations()
		rc, err := runner.Submit(cmd.Context(), tsoFlags.systsin, tsoFlags.sysin, job.Options{
			SYSTSPRT: systsprt,
			SYSPRINT: sysprint,
			Steplib:  splitConcat(steplib),
			Dbrmlib:  dbrmlibs,
			Verbose:  tsoFlags.out.verbose,
		})
		if err != nil {
			return err
		}
		exitCode = rc
		return nil
	},
}

func init() {
	tsoCmd.Flags().StringVar(&tsoFlags.systsin, "systsin", "", "Path to SYSTSIN input file")
	tsoCmd.Flags().StringVar(&tsoFlags.sysin, "sysin", "", "Path to SYSIN input file")
	tsoCmd.Flags().StringVar(&tsoFlags.steplib, "steplib", "", "STEPLIB dataset name(s), colon-separated for concatenation")
	tsoCmd.Flags().StringVar(&tsoFlags.dbrmlib, "dbrmlib", "", "DBRMLIB dataset name(s) or a directory of .dbm files")
	tsoCmd.Flags().StringVar(&tsoFlags.out.systsprt, "systsprt", "stdout", "Path to SYSTSPRT output file or 'stdout'")
	tsoCmd.Flags().StringVar(&tsoFlags.out.sysprint, "sysprint", "stdout", "Path to SYSPRINT output file or 'stdout'")
	tsoCmd.Flags().BoolVarP(&tsoFlags.out.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.AddCommand(tsoCmd)
}
