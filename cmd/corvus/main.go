// Command corvus is a UCI chess engine. It speaks the protocol over
// stdin/stdout; run it from a GUI or command-line harness that understands
// UCI, not interactively.
package main

import (
	"os"

	"corvus/uci"
)

func main() {
	uci.Run(os.Stdin, os.Stdout)
}
