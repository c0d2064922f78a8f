// Command server runs the crowdfunding ledger HTTP API.
//
// Configuration is read from a YAML file (CONFIG_PATH, default
// configs/config.yaml) with environment variable overrides. The process
// shuts down gracefully on SIGINT or SIGTERM.
//
// Exit codes: 0 = clean shutdown, 1 = startup or runtime error.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ahsanali17/crowdfund-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "server: %v\n", err)
		os.Exit(1)
	}
}
