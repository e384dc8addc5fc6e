package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/indexer-tools/actionq/internal/actionserver"
)

func VersionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print the actionq version",
		Action: func(c *cli.Context) error {
			fmt.Fprintf(c.App.Writer, "actionq %s\n", actionserver.Version)
			return nil
		},
	}
}
