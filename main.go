// confkit is a CLI for a flat key-value configuration store.
package main

import (
	"fmt"
	"os"

	"confkit/internal/cmd"
)

var (
	run    = func() error { return cmd.Execute() }
	osExit = os.Exit
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		osExit(1)
	}
}
