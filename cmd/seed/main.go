package main

import (
	"context"
	"os"

	"staynest/internal/config"
	"staynest/internal/database"
	"staynest/internal/logger"
	"staynest/internal/repositories"
	"staynest/internal/seed"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load config", "error", err)
	}
	logger.Init(cfg.Server.Env)

	ctx := context.Background()
	client, err := database.Connect(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	code := seedListings(ctx, repositories.NewListingRepository(client.Database(cfg.Database.Name)))
	database.Disconnect(client, cfg.Database.Timeout)
	os.Exit(code)
}

// seedListings loads the sample listings and returns the process exit status.
func seedListings(ctx context.Context, store seed.ListingStore) int {
	if _, err := seed.Run(ctx, store, seed.SampleListings()); err != nil {
		logger.Error("Seeding failed", "error", err)
		return 1
	}
	return 0
}
