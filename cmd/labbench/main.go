// Command labbench runs the matrix-multiplication and maze-BFS benchmarks.
package main

import (
	"os"

	"github.com/katalvlaran/labbench/cmd/labbench/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
