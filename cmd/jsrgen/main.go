package main

import (
	"context"
	"os"

	"github.com/indaco/jsrgen/internal/cli"
	"github.com/indaco/jsrgen/internal/printer"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		printer.PrintError(err.Error())
		os.Exit(1)
	}
}

// runCLI runs the jsrgen command with the given arguments.
func runCLI(args []string) error {
	return cli.New().Run(context.Background(), args)
}
