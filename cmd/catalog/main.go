// Package main provides a CLI for printing the icon set reference.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	catalogcmd "github.com/iconforge/markdown-icons/internal/cmd/catalog"
	"github.com/iconforge/markdown-icons/internal/platform/config"
)

func main() {
	cfg, err := catalogcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := catalogcmd.Run(ctx, cfg); err != nil {
		config.Exitf("print catalog: %v", err)
	}
}
