package main

import (
	"fmt"
	"os"

	"github.com/exlang/exl/cmd/exl/cmd"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run is factored out of main so tests can invoke the CLI's full logic
// in-process (via testscript's custom-command support) without os.Exit
// tearing down the test binary.
func run() error {
	return cmd.Execute()
}
