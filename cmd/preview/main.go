package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	previewcmd "github.com/iconforge/markdown-icons/internal/cmd/preview"
)

// main starts the preview playground server.
func main() {
	log.SetPrefix("[PREVIEW] ")

	cfg, err := previewcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := previewcmd.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve preview: %v", err)
	}
}
