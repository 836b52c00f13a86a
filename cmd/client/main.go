package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/UhCardoso/travel-manager-front/internal/buildinfo"
	"github.com/UhCardoso/travel-manager-front/internal/client/cli"
	"github.com/UhCardoso/travel-manager-front/internal/client/config"
	"github.com/UhCardoso/travel-manager-front/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig(ctx, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log := logging.NewZerologLogger(logging.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	app, err := cli.NewApp(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "start client", "error", err)
		os.Exit(1)
	}

	if err := app.Run(ctx, os.Stdin); err != nil {
		log.Error(ctx, "client stopped", "error", err)
		os.Exit(1)
	}
}
