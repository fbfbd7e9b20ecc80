package main

import (
	"context"

	"github.com/atlanticdynamic/hellolynx/internal/config"
	"github.com/atlanticdynamic/hellolynx/internal/server"
	"github.com/urfave/cli/v3"
)

// serveAction runs the server; it is the root command's default action
func serveAction(ctx context.Context, cmd *cli.Command) error {
	cfg := config.Load()
	logger := setupLogger(cfg)
	logStartup(logger, cfg, cmd.Root().Version)

	if err := server.Run(ctx, logger.With("component", "server"), cfg); err != nil {
		return cli.Exit(err, 1)
	}
	return nil
}
