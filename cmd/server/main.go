// Package main is the entry point for the hello-go-claude server.
//
// In Go, every executable program must have a `main` package with a `main()`
// function. This file loads configuration, builds the router, and runs the
// server until the process receives SIGINT or SIGTERM.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dlfelps/hello-go-claude/internal/config"
	"github.com/dlfelps/hello-go-claude/internal/handlers"
	"github.com/dlfelps/hello-go-claude/internal/server"
	"github.com/google/uuid"
)

func main() {
	logger := log.New(os.Stderr, "", log.LstdFlags)

	// Fatal calls os.Exit, which skips deferred calls. Keep the defers in run.
	if err := run(logger); err != nil {
		logger.Fatal(err)
	}
}

func run(logger *log.Logger) error {
	// Each process gets its own ID so log lines can be told apart after a
	// container restart.
	instanceID := uuid.New()

	// -----------------------------------------------------------------------
	// Configuration
	// -----------------------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// -----------------------------------------------------------------------
	// Server startup
	// -----------------------------------------------------------------------
	// signal.NotifyContext cancels ctx on the first SIGINT/SIGTERM, which is
	// what Kubernetes sends before killing a pod.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Printf("hello-go-claude instance %s starting on http://%s", instanceID, cfg.Addr())

	srv := server.New(cfg.Addr(), handlers.NewRouter(logger), logger)
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	logger.Printf("hello-go-claude instance %s exited", instanceID)
	return nil
}
