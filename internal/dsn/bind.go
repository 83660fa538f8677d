// Copyright (c) 2025 batchtsocmd
// Licensed under the MIT License. See LICENSE file in the project root for details.

package dsn

import "fmt"

// Bind actions accepted by BIND PACKAGE.
const (
	ActionAdd     = "ADD"
	ActionReplace = "REPLACE"
)

// BindRequest issues DSN BIND PACKAGE and/or BIND PLAN subcommands.
// At least one of Package or Plan must be set; Members is mandatory when
// Package is set. Packages are bound first, then the plan.
type BindRequest struct {
	// System is the Db2 subsystem ID.
	System string
	// Package is the collection name for BIND PACKAGE.
	Package string
	// Plan is the plan name for BIND PLAN.
	Plan string
	// Members lists the DBRM members bound as packages, in order.
	Members []string
	// Owner is the OWNER qualifier applied to both subcommands.
	Owner string
	// Qualifier is the QUALIFIER applied to BIND PACKAGE.
	Qualifier string
	// Action is ADD or REPLACE; empty defaults to REPLACE.
	Action string
	// Isolation is the BIND PLAN isolation level (UR, CS, RS, RR).
	Isolation string
	// PKList lists the BIND PLAN PKLIST entries, in order.
	PKList []string
}

// Generate builds the SYSTSIN stream. BIND subcommands carry no SQL input,
// so the data stream is the blank placeholder.
func (r BindRequest) Generate() (Stream, DataStream, error) {
	if r.System == "" {
		return Stream{}, DataStream{}, missing("system")
	}
	if r.Package == "" && r.Plan == "" {
		return Stream{}, DataStream{}, missing("at least one of package or plan")
	}
	if r.Package != "" && len(r.Members) == 0 {
		return Stream{}, DataStream{}, missing("members (when package is specified)")
	}

	action := r.Action
	if action == "" {
		action = ActionReplace
	}

	var b builder
	b.block(fmt.Sprintf("  DSN SYSTEM(%s)", r.System))

	// One BIND PACKAGE block per member.
	if r.Package != "" {
		for _, member := range r.Members {
			head := fmt.Sprintf("  BIND PACKAGE(%s)", r.Package)
			if r.Owner != "" {
				head += fmt.Sprintf(" OWNER(%s)", r.Owner)
			}
			lines := []string{head}
			if r.Qualifier != "" {
				lines = append(lines, fmt.Sprintf("  QUALIFIER(%s)", r.Qualifier))
			}
			lines = append(lines,
				fmt.Sprintf("  MEMBER(%s)", member),
				fmt.Sprintf("  ACTION(%s)", action),
			)
			b.block(lines...)
			b.blank()
		}
	}

	if r.Plan != "" {
		lines := []string{fmt.Sprintf("  BIND PLAN(%s)", r.Plan)}
		if r.Owner != "" {
			lines = append(lines, fmt.Sprintf("   OWNER(%s)", r.Owner))
		}
		if r.Isolation != "" {
			lines = append(lines, fmt.Sprintf("   ISOLATION(%s)", r.Isolation))
		}
		if len(r.PKList) > 0 {
			lines = append(lines, "   PKLIST(")
			for i, entry := range r.PKList {
				if i == len(r.PKList)-1 {
					lines = append(lines, fmt.Sprintf("   %s )", entry))
				} else {
					lines = append(lines, fmt.Sprintf("   %s", entry))
				}
			}
		}
		b.block(lines...)
	}

	return b.stream(), Placeholder(), nil
}
