// Copyright (c) 2025 batchtsocmd
// Licensed under the MIT License. See LICENSE file in the project root for details.

package output

import (
	"io"
	"os"

	"batchtsocmd/cli/internal/ccsid"
)

// Compose reads captured output files back in the given order, decodes them
// from the target code page and writes them to w. Empty or missing captures
// are skipped; a capture that cannot be read is skipped rather than failing
// the submission.
func Compose(w io.Writer, paths ...string) {
	for _, p := range paths {
		if p == "" {
			continue
		}
		data, err := os.ReadFile(p)
		if err != nil || len(data) == 0 {
			continue
		}
		text, err := ccsid.Decode(data)
		if err != nil {
			continue
		}
		io.WriteString(w, text)
	}
}
