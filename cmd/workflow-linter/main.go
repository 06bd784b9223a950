package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// errLintFailed is returned when findings fail the run. The findings have
// already been reported, so nothing more is printed for it.
var errLintFailed = errors.New("lint failed")

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cmd := newRootCmd(newApp(os.Stdout, os.Stderr))
	cmd.SetArgs(args)
	return exitCode(cmd.Execute(), os.Stderr)
}

func exitCode(err error, stderr io.Writer) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errLintFailed):
		return 1
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
}
