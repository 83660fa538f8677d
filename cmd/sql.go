// Copyright (c) 2025 batchtsocmd
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"batchtsocmd/cli/internal/config"
	"batchtsocmd/cli/internal/dsn"
	"batchtsocmd/cli/internal/job"

	"github.com/spf13/cobra"
)

var sqlFlags struct {
	sysin   string
	system  string
	plan    string
	toollib string
	steplib string
	dbrmlib string
	out     outputFlags
}

// sqlCmd executes SQL statements (DDL, DML, DQL, GRANT) through DSNTEP2.
var sqlCmd = &cobra.Command{
	Use:   "sql",
	Short: "Execute SQL statements via DSNTEP2",
	Long: `The sql command runs dynamic SQL (SELECT, INSERT, UPDATE, DELETE, CREATE,
DROP, GRANT, REVOKE, SET CURRENT SQLID, ...) through DSNTEP2 under IKJEFT1B.
The SQL is read from --sysin or from stdin when the flag is omitted.

Defaults for --system, --plan, --toollib, --steplib and --dbrmlib come from
the DB2_SYSTEM, DB2_PLAN, DB2_TOOLLIB, DB2_STEPLIB and DB2_DBRMLIB
environment variables or the config file; command-line values win.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults := loadDefaults()
		system := config.Resolve(sqlFlags.system, config.EnvSystem, defaults.System)
		plan := config.Resolve(sqlFlags.plan, config.EnvPlan, defaults.Plan)
		toollib := config.Resolve(sqlFlags.toollib, config.EnvToollib, defaults.Toollib)
		steplib := config.Resolve(sqlFlags.steplib, config.EnvSteplib, defaults.Steplib)
		dbrmlib := config.Resolve(sqlFlags.dbrmlib, config.EnvDbrmlib, defaults.Dbrmlib)

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

		input := dsn.DataStream{Path: sqlFlags.sysin}
		if sqlFlags.sysin == "" {
			content, err := readStdin(sqlFlags.out.verbose)
			if err != nil {
				return err
			}
			input = dsn.DataStream{Content: content}
		}

		dbrmlibs, err := resolveDbrmlib(dbrmlib, sqlFlags.out.verbose)
		if err != nil {
			return err
		}

		systsprt, sysprint := sqlFlags.out.destinations()
		rc, err := runner.SQL(cmd.Context(), dsn.SQLRequest{
			System:  system,
			Plan:    plan,
			Toollib: toollib,
			Input:   input,
		}, job.Options{
			SYSTSPRT: systsprt,
			SYSPRINT: sysprint,
			Steplib:  splitConcat(steplib),
			Dbrmlib:  dbrmlibs,
			Verbose:  sqlFlags.out.verbose,
		})
		if err != nil {
			return err
		}
		exitCode = rc
		return nil
	},
}

func init() {
	sqlCmd.Flags().StringVar(&sqlFlags.sysin, "sysin", "", "Path to file containing SQL statements (default: stdin)")
	sqlCmd.Flags().StringVar(&sqlFlags.system, "system", "", "Db2 subsystem ID (or set DB2_SYSTEM)")
	sqlCmd.Flags().StringVar(&sqlFlags.plan, "plan", "", "Db2 plan name for DSNTEP2 (or set DB2_PLAN)")
	sqlCmd.Flags().StringVar(&sqlFlags.toollib, "toollib", "", "Db2 tool library containing DSNTEP2 (or set DB2_TOOLLIB)")
	sqlCmd.Flags().StringVar(&sqlFlags.steplib, "steplib", "", "STEPLIB dataset name(s), colon-separated for concatenation")
	sqlCmd.Flags().StringVar(&sqlFlags.dbrmlib, "dbrmlib", "", "DBRMLIB dataset name(s) or a directory of "+".dbm files")
	sqlCmd.Flags().StringVar(&sqlFlags.out.systsprt, "systsprt", "stdout", "Path to SYSTSPRT output file or 'stdout'")
	sqlCmd.Flags().StringVar(&sqlFlags.out.sysprint, "sysprint", "stdout", "Path to SYSPRINT output file or 'stdout'")
	sqlCmd.Flags().BoolVarP(&sqlFlags.out.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.AddCommand(sqlCmd)
}
