package main

import (
	"fmt"
	"os"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

// TestMain lets testscript scripts invoke this binary's own main via the
// "exl" command name, avoiding a separate `go build` step for the scripted
// test suite below (complementing the build-and-exec CLI tests in
// cli_test.go, which exercise the real compiled binary end to end).
func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"exl": func() int {
			if err := run(); err != nil {
				fmt.Fprintln(os.Stderr, err)
				return 1
			}
			return 0
		},
	}))
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/script",
	})
}
