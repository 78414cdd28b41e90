// Package main is the entry point for the taskmenu CLI.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/runoshun/taskmenu/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, in io.Reader, out, errOut io.Writer) error {
	// The container is built from the persistent flags before any command runs.
	rootCmd := cli.NewRootCommand(nil, version)
	rootCmd.SetArgs(args)
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	return rootCmd.Execute()
}
