// Package main provides a CLI for rendering markdown files to HTML.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	rendercmd "github.com/iconforge/markdown-icons/internal/cmd/render"
	"github.com/iconforge/markdown-icons/internal/platform/config"
)

func main() {
	cfg, err := rendercmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rendercmd.Run(ctx, cfg); err != nil {
		config.Exitf("render: %v", err)
	}
}
