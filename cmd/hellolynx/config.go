package main

import (
	"context"
	"fmt"

	"github.com/atlanticdynamic/hellolynx/internal/config"
	"github.com/urfave/cli/v3"
)

func newConfigCmd() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Print the effective configuration read from the environment",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := config.Load()
			_, err := fmt.Fprintln(cmd.Root().Writer, cfg)
			return err
		},
	}
}
