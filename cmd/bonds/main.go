// Package main runs one bonds edit over a player record on stdin.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	bondscmd "github.com/louisbranch/playerbonds/internal/cmd/bonds"
)

func main() {
	cfg, err := bondscmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[BONDS] ")
	log.SetOutput(os.Stderr)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := bondscmd.Run(ctx, cfg); err != nil {
		log.Fatalf("edit bonds: %v", err)
	}
}
