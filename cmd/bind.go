// Copyright (c) 2025 batchtsocmd
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"batchtsocmd/cli/internal/config"
	"batchtsocmd/cli/internal/dsn"
	"batchtsocmd/cli/internal/errors"
	"batchtsocmd/cli/internal/job"

	"github.com/spf13/cobra"
)

var bindFlags struct {
	system    string
	pkg       string
	plan      string
	members   []string
	owner     string
	qualifier string
	action    string
	isolation string
	pklist    []string
	dbrmlib   string
	steplib   string
	out       outputFlags
}

// bindCmd issues DSN BIND PACKAGE and/or BIND PLAN subcommands.
var bindCmd = &cobra.Command{
	Use:   "bind",
	Short: "Bind Db2 packages and plans via DSN BIND subcommands",
	Long: `The bind command generates one BIND PACKAGE subcommand per --member,
followed by an optional BIND PLAN subcommand, and submits them through
IKJEFT1B. BIND subcommands are DSN processor commands, not SQL; no SYSIN
input is used.

A bind ending with return code 4 or lower is an acceptable outcome (warnings
only). --dbrmlib accepts dataset name(s) or a directory of .dbm member
exports.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults := loadDefaults()
		system := config.Resolve(bindFlags.system, config.EnvSystem, defaults.System)
		steplib := config.Resolve(bindFlags.steplib, config.EnvSteplib, defaults.Steplib)
		dbrmlib := config.Resolve(bindFlags.dbrmlib, config.EnvDbrmlib, defaults.Dbrmlib)

		if system == "" {
			return requireParams([]string{"--system (or DB2_SYSTEM)"})
		}
		if bindFlags.pkg == "" && bindFlags.plan == "" {
			return errors.New(errors.UsageError, "at least one of --package or --plan must be specified")
		}
		if bindFlags.pkg != "" && len(bindFlags.members) == 0 {
			return errors.New(errors.UsageError, "--member is required when --package is specified")
		}
		switch bindFlags.action {
		case dsn.ActionAdd, dsn.ActionReplace:
		default:
			return errors.New(errors.UsageError, "--action must be ADD or REPLACE")
		}
		switch bindFlags.isolation {
		case "", "UR", "CS", "RS", "RR":
		default:
			return errors.New(errors.UsageError, "--isolation must be one of UR, CS, RS, RR")
		}

		dbrmlibs, err := resolveDbrmlib(dbrmlib, bindFlags.out.verbose)
		if err != nil {
			return err
		}

		systsprt, sysprint := bindFlags.out.destinations()
		rc, err := runner.Bind(cmd.Context(), dsn.BindRequest{
			System:    system,
			Package:   bindFlags.pkg,
			Plan:      bindFlags.plan,
			Members:   bindFlags.members,
			Owner:     bindFlags.owner,
			Qualifier: bindFlags.qualifier,
			Action:    bindFlags.action,
			Isolation: bindFlags.isolation,
			PKList:    bindFlags.pklist,
		}, job.Options{
			SYSTSPRT: systsprt,
			SYSPRINT: sysprint,
			Steplib:  splitConcat(steplib),
			Dbrmlib:  dbrmlibs,
			Verbose:  bindFlags.out.verbose,
		})
		if err != nil {
			return err
		}
		exitCode = rc
		return nil
	},
}

func init() {
	bindCmd.Flags().StringVar(&bindFlags.system, "system", "", "Db2 subsystem ID (or set DB2_SYSTEM)")
	bindCmd.Flags().StringVar(&bindFlags.pkg, "package", "", "Package collection name for BIND PACKAGE (e.g. PCBSA)")
	bindCmd.Flags().StringVar(&bindFlags.plan, "plan", "", "Plan name for BIND PLAN (e.g. CBSA)")
	bindCmd.Flags().StringArrayVar(&bindFlags.members, "member", nil, "DBRM member name to bind as a package; repeat for multiple members")
	bindCmd.Flags().StringVar(&bindFlags.owner, "owner", "", "OWNER for BIND subcommands")
	bindCmd.Flags().StringVar(&bindFlags.qualifier, "qualifier", "", "QUALIFIER for BIND subcommands")
	bindCmd.Flags().StringVar(&bindFlags.action, "action", dsn.ActionReplace, "BIND action: ADD or REPLACE")
	bindCmd.Flags().StringVar(&bindFlags.isolation, "isolation", "", "Isolation level for BIND PLAN (UR, CS, RS, RR)")
	bindCmd.Flags().StringArrayVar(&bindFlags.pklist, "pklist", nil, "Package list entry for BIND PLAN PKLIST; repeat for multiple entries")
	bindCmd.Flags().StringVar(&bindFlags.dbrmlib, "dbrmlib", "", "DBRMLIB dataset name(s) or a directory of .dbm files (or set DB2_DBRMLIB)")
	bindCmd.Flags().StringVar(&bindFlags.steplib, "steplib", "", "STEPLIB dataset name(s), colon-separated for concatenation")
	bindCmd.Flags().StringVar(&bindFlags.out.systsprt, "systsprt", "stdout", "Path to SYSTSPRT output file or 'stdout'")
	bindCmd.Flags().StringVar(&bindFlags.out.sysprint, "sysprint", "stdout", "Path to SYSPRINT output file or 'stdout'")
	bindCmd.Flags().BoolVarP(&bindFlags.out.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.AddCommand(bindCmd)
}
