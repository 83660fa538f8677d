// Package main is the entry point for the batchtsocmd CLI application.
// It submits TSO and Db2 batch jobs through IKJEFT1B with automatic
// character-set conversion of the input streams.
package main

import (
	"batchtsocmd/cli/cmd"
)

// main is the entry point for the batchtsocmd CLI application.
// It initializes and executes the command-line interface.
func main() {
	cmd.Execute()
}
