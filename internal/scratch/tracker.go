// Copyright (c) 2025 batchtsocmd
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package scratch tracks the ephemeral files owned by one submission and
// guarantees their release on every exit path. Each submission owns an
// exclusive, disjoint tracker; nothing is shared across submissions.
package scratch

import (
	"os"
)

// Tracker registers every scratch file at creation time so that ReleaseAll
// can remove them unconditionally, including files that were never fully
// populated because a pipeline stage failed partway through.
type Tracker struct {
	paths []string
}

// New returns an empty tracker.
func New() *Tracker { return &Tracker{} }

// Create makes an empty scratch file and registers it. The pattern follows
// os.CreateTemp conventions (a '*' is replaced by a random string).
func (t *Tracker) Create(pattern string) (string, error) {
	f, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", err
	}
	path := f.Name()
	t.paths = append(t.paths, path)
	if err := f.Close(); err != nil {
		return "", err
	}
	return path, nil
}

// CreateWith makes a scratch file holding content and registers it.
// The file is registered before the write, so a failed write still
// leaves the path covered by ReleaseAll.
func (t *Tracker) CreateWith(pattern, content string) (string, error) {
	path, err := t.Create(pattern)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// ReleaseAll removes every registered file. Files already gone are ignored;
// release is safe to call more than once.
func (t *Tracker) ReleaseAll() {
	for _, p := range t.paths {
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			// Nothing sensible to do beyond best effort.
			continue
		}
	}
	t.paths = nil
}

// Count reports how many registered files still exist on disk.
func (t *Tracker) Count() int {
	n := 0
	for _, p := range t.paths {
		if _, err := os.Stat(p); err == nil {
			n++
		}
	}
	return n
}
