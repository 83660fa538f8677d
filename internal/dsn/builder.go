// Copyright (c) 2025 batchtsocmd
// Licensed under the MIT License. See LICENSE file in the project root for details.

package dsn

// builder assembles a DSN command stream one subcommand block at a time.
// Within a block every line except the structurally last one receives the
// TSO continuation marker, so no caller ever trims a dangling marker.
type builder struct {
	lines []string
}

// block appends one subcommand. The continuation marker is applied to all
// but the final line.
func (b *builder) block(lines ...string) {
	for i, ln := range lines {
		if i < len(lines)-1 {
			ln += " -"
		}
		b.lines = append(b.lines, ln)
	}
}

// blank appends an empty separator record.
func (b *builder) blank() {
	b.lines = append(b.lines, "")
}

// stream finalizes the builder with the END terminator. Exactly one
// terminator is emitted, always last.
func (b *builder) stream() Stream {
	lines := append(b.lines, "  END")
	return Stream{lines: lines}
}
