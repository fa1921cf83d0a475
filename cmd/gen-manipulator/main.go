package main

import (
	"fmt"
	"os"

	"github.com/seitarof/gen-manipulator/internal/cli"
	"github.com/seitarof/gen-manipulator/internal/errors"
)

var version = "dev"

func main() {
	root := cli.NewRootCommand(version, cli.DefaultEnv())
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if hint := errors.FlattenHints(err); hint != "" {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
		}
		os.Exit(1)
	}
}
