package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	tenpincmd "github.com/louisbranch/tenpin/internal/cmd/tenpin"
	"github.com/louisbranch/tenpin/internal/platform/config"
)

func main() {
	cfg, err := tenpincmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := tenpincmd.Run(ctx, cfg, os.Stdin, os.Stdout, os.Stderr); err != nil {
		config.Exitf("Error: %v", err)
	}
}
