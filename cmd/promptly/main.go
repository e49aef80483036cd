// Package main is the promptly command-line tool.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jbeshir/promptly-mcp/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Execute(ctx, os.Args[1:], cli.DefaultDeps())
	stop()
	os.Exit(code)
}
