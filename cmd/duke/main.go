package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"duke/internal/cli"
	"duke/internal/config"
)

func main() {
	// Create repository factory based on environment
	factory := NewRepositoryFactory(getEnvironment())

	root := cli.NewRootCommand(config.NewLoader(), factory.CreateRepository)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		// rejected exec commands have already printed their message
		if !errors.Is(err, cli.ErrCommandFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
