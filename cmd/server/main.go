package main // Entry point package

import (
	"context"
	"log" // Logging library

	"github.com/joho/godotenv" // Loads .env files into the environment

	"github.com/iliyamo/house-listing-api/internal/app"    // Internal application wiring
	"github.com/iliyamo/house-listing-api/internal/config" // Internal config loader
	"github.com/iliyamo/house-listing-api/internal/queue"  // Listing event consumer
)

func main() {
	_ = godotenv.Load() // Load .env if present; real env vars win

	cfg := config.Load() // Load environment config

	e, err := app.New(context.Background(), cfg) // Build the application
	if err != nil {
		log.Fatal(err)
	}

	if cfg.EventsEnabled { // Start the listing event consumer when enabled
		go func() {
			if err := queue.StartListingConsumer(); err != nil {
				log.Printf("listing consumer stopped: %v", err)
			}
		}()
	}

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
