package workers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staynest/internal/models"
	"staynest/internal/repositories/repotest"
)

func TestReviewWorker_Sweep(t *testing.T) {
	store := repotest.NewStore()
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	listingID, err := store.Listings().Create(ctx, &models.Listing{Title: "Loft"})
	require.NoError(t, err)

	attached := store.AddReview(models.Review{Comment: "attached", Rating: 4, CreatedAt: now.Add(-time.Hour)})
	require.NoError(t, store.Listings().AppendReview(ctx, listingID, attached))
	store.AddReview(models.Review{Comment: "orphan", Rating: 2, CreatedAt: now.Add(-time.Hour)})
	store.AddReview(models.Review{Comment: "fresh", Rating: 5, CreatedAt: now.Add(-time.Minute)})

	w := NewReviewWorker(store.Listings(), store.Reviews(), time.Hour, 10*time.Minute)
	w.now = func() time.Time { return now }

	removed, err := w.Sweep(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	left := map[string]bool{}
	for _, r := range store.AllReviews() {
		left[r.Comment] = true
	}
	assert.True(t, left["attached"])
	assert.True(t, left["fresh"])
	assert.False(t, left["orphan"])
}

func TestReviewWorker_SweepNothing(t *testing.T) {
	store := repotest.NewStore()
	w := NewReviewWorker(store.Listings(), store.Reviews(), time.Hour, time.Minute)

	removed, err := w.Sweep(context.Background())

	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestReviewWorker_StartStops(t *testing.T) {
	store := repotest.NewStore()
	w := NewReviewWorker(store.Listings(), store.Reviews(), 5*time.Millisecond, 0)
	store.AddReview(models.Review{Comment: "orphan", Rating: 1, CreatedAt: time.Now().Add(-time.Hour)})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	assert.Eventually(t, func() bool { return len(store.AllReviews()) == 0 }, time.Second, 5*time.Millisecond)
}
