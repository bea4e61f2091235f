package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/torqlabs/torq-wallet/internal/buildinfo"
	"github.com/torqlabs/torq-wallet/internal/cli"
	"github.com/torqlabs/torq-wallet/internal/config"
	"github.com/torqlabs/torq-wallet/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, slog.LevelInfo)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
