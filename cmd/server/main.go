package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/vikasavnish/helloservice/internal/api"
	"github.com/vikasavnish/helloservice/internal/config"
	"github.com/vikasavnish/helloservice/internal/server"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("INFO: No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	router := api.SetupRouter()
	if routes, err := api.Routes(router); err == nil {
		for _, route := range routes {
			log.Printf("DEBUG: route %v %s", route.Methods, route.Path)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg.Server, api.NewHandler(cfg, router))
	if err := srv.Run(ctx); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
	log.Println("INFO: Server stopped")
}
