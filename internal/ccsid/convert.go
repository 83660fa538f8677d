// Copyright (c) 2025 batchtsocmd
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package ccsid is the character-set conversion collaborator. It moves input
// streams into the execution environment's fixed target code page (IBM-1047)
// and decodes captured output back for console display.
//
// The source code page comes from the file tag when present, otherwise it is
// auto-detected from content. Text that cannot be identified as ASCII is
// assumed to already be in the target code page and is copied as-is, matching
// the host convention that untagged files are EBCDIC.
package ccsid

import (
	"os"
	"os/exec"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// Target is the execution environment's code page.
const Target = "IBM-1047"

// Result describes one conversion.
type Result struct {
	// ConversionNeeded is false when the input was already in the target
	// code page and was copied unchanged.
	ConversionNeeded bool
	// Detected is the detected source code page, or "" when undetectable.
	Detected string
}

// Converter transforms a file into the target code page.
type Converter interface {
	Convert(src, dst string) (Result, error)
}

// Service is the default Converter implementation.
type Service struct{}

// Convert determines the source code page of src (tag first, then content)
// and writes the IBM-1047 rendition to dst. Already-converted or undetectable
// input is copied unchanged.
func (Service) Convert(src, dst string) (Result, error) {
	data, err := os.ReadFile(src)
	if err != nil {
		return Result{}, err
	}

	detected := tagOf(src)
	if detected == "" {
		detected = detect(data)
	}
	if detected != "ISO8859-1" {
		if err := os.WriteFile(dst, data, 0o600); err != nil {
			return Result{}, err
		}
		return Result{ConversionNeeded: false, Detected: detected}, nil
	}

	converted, err := toTarget(data)
	if err != nil {
		return Result{}, err
	}
	if err := os.WriteFile(dst, converted, 0o600); err != nil {
		return Result{}, err
	}
	return Result{ConversionNeeded: true, Detected: detected}, nil
}

// tagOf queries the file's code-page tag. Untagged files, binary tags and
// systems without chtag all yield "", deferring to content detection.
func tagOf(path string) string {
	out, err := exec.Command("chtag", "-p", path).Output()
	if err != nil {
		return ""
	}
	fields := strings.Fields(string(out))
	if len(fields) >= 2 && fields[0] == "t" {
		return fields[1]
	}
	return ""
}

// detect classifies content as ISO8859-1 (ASCII text), the target code page,
// or "" when there is nothing to go on.
func detect(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	for _, b := range data {
		switch {
		case b == '\n' || b == '\r' || b == '\t':
		case b >= 0x20 && b < 0x7f:
		default:
			// Control or high bytes: not plain ASCII, assume host code page.
			return Target
		}
	}
	return "ISO8859-1"
}

// toTarget re-encodes ISO8859-1 bytes as IBM-1047.
func toTarget(data []byte) ([]byte, error) {
	utf8Text, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return nil, err
	}
	return charmap.CodePage1047.NewEncoder().Bytes(utf8Text)
}

// Decode interprets IBM-1047 bytes as text for console display.
func Decode(data []byte) (string, error) {
	out, err := charmap.CodePage1047.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Tag marks path with the target code page tag. Tagging is best-effort:
// on systems without chtag the file is simply left untagged.
func Tag(path string) {
	_ = exec.Command("chtag", "-tc", Target, path).Run()
}
