// cmd/cubeshell/main.go
//
// cubeshell is an interactive shell for exercising a Cube from the
// command line.
//
// Usage:
//
//	cubeshell
//
// Use .help for available commands.
package main

import (
	"os"

	"github.com/scandum/binary-cube/pkg/cli"
)

func main() {
	repl := cli.NewREPL(os.Stdout, os.Stderr)
	repl.Run()
}
