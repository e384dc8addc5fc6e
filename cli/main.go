package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/indexer-tools/actionq/cli/cmd"
	"github.com/indexer-tools/actionq/cli/core/config"
)

func main() {
	app := &cli.App{
		Name:  "actionq",
		Usage: "Queue, inspect and execute allocation actions on a remote management service",
		Before: func(c *cli.Context) error {
			return config.Init()
		},
		Commands: []*cli.Command{
			cmd.ActionsCommand(),
			cmd.VersionCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
