package workers

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"staynest/internal/logger"
	"staynest/internal/repositories"
)

// ReviewWorker removes reviews that no listing references any more.
// They are left behind when the second write of a review delete fails.
type ReviewWorker struct {
	listingRepo repositories.ListingRepository
	reviewRepo  repositories.ReviewRepository
	interval    time.Duration
	grace       time.Duration
	now         func() time.Time
}

func NewReviewWorker(listingRepo repositories.ListingRepository, reviewRepo repositories.ReviewRepository, interval, grace time.Duration) *ReviewWorker {
	return &ReviewWorker{
		listingRepo: listingRepo,
		reviewRepo:  reviewRepo,
		interval:    interval,
		grace:       grace,
		now:         time.Now,
	}
}

// Start runs the sweep in the background until ctx is cancelled. A zero interval disables it.
func (w *ReviewWorker) Start(ctx context.Context) {
	if w.interval <= 0 {
		logger.Info("Review worker disabled")
		return
	}
	go w.run(ctx)
}

func (w *ReviewWorker) run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Review worker stopped")
			return
		case <-ticker.C:
			if _, err := w.Sweep(ctx); err != nil {
				logger.Error("Error sweeping unreferenced reviews", "error", err)
			}
		}
	}
}

// Sweep deletes unreferenced reviews older than the grace period and returns how many were removed.
// Younger reviews may still be waiting for their listing to be updated.
func (w *ReviewWorker) Sweep(ctx context.Context) (int64, error) {
	candidates, err := w.reviewRepo.FindCreatedBefore(ctx, w.now().Add(-w.grace))
	if err != nil {
		return 0, err
	}
	if len(candidates) == 0 {
		return 0, nil
	}

	ids := make([]primitive.ObjectID, len(candidates))
	for i, review := range candidates {
		ids[i] = review.ID
	}

	referenced, err := w.listingRepo.ReferencedReviews(ctx, ids)
	if err != nil {
		return 0, err
	}
	keep := make(map[primitive.ObjectID]bool, len(referenced))
	for _, id := range referenced {
		keep[id] = true
	}

	orphans := ids[:0]
	for _, id := range ids {
		if !keep[id] {
			orphans = append(orphans, id)
		}
	}

	removed, err := w.reviewRepo.DeleteByIDs(ctx, orphans)
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		logger.Info("Removed unreferenced reviews", "count", removed)
	}
	return removed, nil
}
