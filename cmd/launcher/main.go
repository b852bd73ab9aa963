package main

import (
	"context"
	"log"
	"os"

	"github.com/derol/majestic-launcher/internal/launcher/cli"
	"github.com/derol/majestic-launcher/internal/launcher/config"
	"github.com/derol/majestic-launcher/internal/logging"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.New(os.Stderr, cfg.LogLevel)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
