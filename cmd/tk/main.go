package main

import (
	"context"
	"fmt"
	"os"

	"github.com/epsommer/becky-mobile-sub003/internal/cli"
	"github.com/epsommer/becky-mobile-sub003/internal/config"
	"github.com/epsommer/becky-mobile-sub003/internal/engine"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	repo, err := config.CreateRepository(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer repo.Close()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Application.Timeout)
	defer cancel()

	tracker := engine.New(ctx, repo, cfg)
	defer tracker.Close()

	root := cli.NewRootCommand(tracker, cfg)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
