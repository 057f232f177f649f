package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/secureshare/internal/client/cli"
	"github.com/dmitrijs2005/secureshare/internal/client/config"
	"github.com/dmitrijs2005/secureshare/internal/flagx"
)

// globalFlags are consumed by config and hidden from subcommands.
var globalFlags = []string{"-a", "-w", "-o", "-t", "-i", "-d", "-c", "-config"}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	args := os.Args[1:]
	cfg, err := config.LoadConfig(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if err := app.Run(ctx, flagx.StripArgs(args, globalFlags)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
