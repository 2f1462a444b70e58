package main

import (
	"context"
	"log"
	"time"

	"github.com/just-manoj/PathoAi-API/internal/bootstrap"
	"github.com/just-manoj/PathoAi-API/internal/shared/config"
	"github.com/just-manoj/PathoAi-API/internal/shared/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Gateway.Disconnect(ctx); err != nil {
			log.Printf("mongo disconnect: %v", err)
		}
	}()

	addr := server.Addr(cfg.Port)
	log.Printf("Starting %s on %s", cfg.AppName, addr)

	if err := app.Router.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
