// Copyright (c) 2025 batchtsocmd
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package dbrm discovers bind-library members in a UNIX directory.
package dbrm

import (
	"os"
	"sort"
	"strings"
)

// Suffix is the file suffix that marks a DBRM member export.
const Suffix = ".dbm"

// Members returns the member names available under dir, derived by stripping
// Suffix from matching file names. Names are sorted so generated
// concatenations are deterministic.
func Members(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var members []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(name, Suffix) {
			members = append(members, strings.TrimSuffix(name, Suffix))
		}
	}
	sort.Strings(members)
	return members, nil
}
