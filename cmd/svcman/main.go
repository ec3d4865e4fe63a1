package main

import (
	"os"

	"github.com/grovetools/svcman/cli"
	"github.com/grovetools/svcman/cmd"
)

func main() {
	root := cmd.NewRootCmd()
	if err := root.Execute(); err != nil {
		verbose, _ := root.PersistentFlags().GetBool("verbose")
		os.Exit(cli.NewErrorHandler(verbose).Handle(err))
	}
}
