package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

// Version is set during build using ldflags
var Version = "dev"

func newApp() *cli.Command {
	return &cli.Command{
		Name:    "hellolynx",
		Version: Version,
		Usage:   "Serve fixed hello, health and banner endpoints",
		Description: "Configuration is read from the environment: PORT, COUNTDOWN_SECONDS, " +
			"LOG_LEVEL, LOG_FORMAT, LOG_OUTPUT and METRICS_PORT.",
		Action: serveAction,
		Commands: []*cli.Command{
			newConfigCmd(),
			newVersionCmd(),
		},
	}
}

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
