// Copyright (c) 2025 batchtsocmd
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package mvs is the execution adapter for authorized MVS program invocation.
// It models DD statements with dataset and transient-file definitions and
// submits them through the ZOAU mvscmdauth collaborator.
package mvs

import (
	"fmt"
	"strings"
)

// Definition is a single DD resource definition.
type Definition interface {
	// Spec renders the definition in mvscmd argument syntax.
	Spec() string
}

// DatasetDefinition names a cataloged dataset.
type DatasetDefinition struct {
	Name string
}

func (d DatasetDefinition) Spec() string { return d.Name }

// FileDefinition names a UNIX file resource with optional record attributes.
type FileDefinition struct {
	Path  string
	LRecl int
	RecFM string
}

func (f FileDefinition) Spec() string {
	var b strings.Builder
	b.WriteString(f.Path)
	if f.LRecl > 0 {
		fmt.Fprintf(&b, ",lrecl=%d", f.LRecl)
	}
	if f.RecFM != "" {
		fmt.Fprintf(&b, ",recfm=%s", f.RecFM)
	}
	return b.String()
}

// Dummy is the throwaway definition used for unneeded outputs such as SYSUDUMP.
var Dummy = FileDefinition{Path: "DUMMY"}

// DDStatement binds a DD name to one or more definitions. Multiple dataset
// definitions form an order-preserving concatenation.
type DDStatement struct {
	Name string
	Defs []Definition
}

// Spec renders the concatenated definition list, colon-separated.
func (dd DDStatement) Spec() string {
	parts := make([]string, len(dd.Defs))
	for i, d := range dd.Defs {
		parts[i] = d.Spec()
	}
	return strings.Join(parts, ":")
}

// DD builds a single-definition statement.
func DD(name string, def Definition) DDStatement {
	return DDStatement{Name: name, Defs: []Definition{def}}
}

// Concat builds a dataset concatenation statement, preserving order.
func Concat(name string, datasets []string) DDStatement {
	defs := make([]Definition, len(datasets))
	for i, ds := range datasets {
		defs[i] = DatasetDefinition{Name: ds}
	}
	return DDStatement{Name: name, Defs: defs}
}
