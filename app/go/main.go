package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/cedric66/tf-acr/internal/config"
	"github.com/cedric66/tf-acr/internal/server"
)

func main() {
	log.SetPrefix("greeter: ")

	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.New(cfg.APIKey).Run(ctx); err != nil {
		log.Printf("server error: %v", err)
		stop()
		os.Exit(1)
	}
}
