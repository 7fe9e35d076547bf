package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"katalog/internal/config"
)

func main() {
	// --- Configuration ---
	cfg := config.Load()

	app, err := NewApp(cfg)
	if err != nil {
		log.Fatalf("Failed to start catalog: %v", err)
	}

	// Interrupts still save the catalog before leaving.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		log.Println("Shutting down...")
		if err := app.Shutdown(); err != nil {
			log.Printf("Error saving catalog: %v", err)
		}
		os.Exit(130)
	}()

	runErr := app.Run(context.Background(), os.Stdin, os.Stdout)
	if err := app.Shutdown(); err != nil {
		log.Printf("Error saving catalog: %v", err)
	}
	if runErr != nil {
		log.Fatalf("Catalog stopped: %v", runErr)
	}
}
