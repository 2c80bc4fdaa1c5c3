// Package main is the entry point for the c2patext CLI application.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/encypherai/c2pa-text/cmd"
)

func main() {
	// Create a context that is cancelled on SIGINT (Ctrl+C) or SIGTERM.
	// This enables graceful shutdown for long-running operations.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	os.Exit(cmd.RunCLI(ctx, cmd.Root(), os.Args[1:], os.Stdout, os.Stderr))
}
