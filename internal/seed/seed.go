package seed

import (
	"context"
	"fmt"

	"staynest/internal/logger"
	"staynest/internal/models"
)

// ListingStore is the part of the listing repository the loader needs.
type ListingStore interface {
	DeleteAll(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, listings []models.Listing) (int, error)
}

// Run wipes the listings collection and inserts data in its place.
func Run(ctx context.Context, store ListingStore, data []models.Listing) (int, error) {
	removed, err := store.DeleteAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("seed: wipe listings: %w", err)
	}
	logger.Info("Listings wiped", "deleted", removed)

	inserted, err := store.InsertMany(ctx, data)
	if err != nil {
		return 0, fmt.Errorf("seed: insert listings: %w", err)
	}
	logger.Info("Data was initialized", "inserted", inserted)
	return inserted, nil
}
