package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/dkrastins/needmarket/internal/buildinfo"
	"github.com/dkrastins/needmarket/internal/client/cli"
	"github.com/dkrastins/needmarket/internal/client/config"
	"github.com/dkrastins/needmarket/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, cleanup, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}
	defer cleanup()

	app.Run(ctx)

}
