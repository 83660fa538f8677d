// Copyright (c) 2025 batchtsocmd
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package encode prepares data-stream text for the fixed-record execution
// environment. Only the SYSIN data stream is record-padded; the SYSTSIN
// control stream is submitted unpadded even though its DD declares the same
// record length (observed behavior, kept as-is).
package encode

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// RecordLength is the fixed record length of SYSIN input.
const RecordLength = 80

// PadRecords rewrites src into dst with every line stripped of trailing
// line terminators, truncated to RecordLength when longer, and right-padded
// with blanks to exactly RecordLength. It returns one warning per truncated
// line.
func PadRecords(src, dst string) ([]string, error) {
	in, err := os.Open(src)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return nil, err
	}
	defer out.Close()

	var warnings []string
	w := bufio.NewWriter(out)
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := strings.TrimRight(sc.Text(), "\r")
		if len(line) > RecordLength {
			warnings = append(warnings, fmt.Sprintf("line %d truncated from %d to %d bytes", lineNum, len(line), RecordLength))
			line = line[:RecordLength]
		}
		if _, err := fmt.Fprintf(w, "%-*s\n", RecordLength, line); err != nil {
			return warnings, err
		}
	}
	if err := sc.Err(); err != nil {
		return warnings, err
	}
	if err := w.Flush(); err != nil {
		return warnings, err
	}
	return warnings, out.Close()
}
