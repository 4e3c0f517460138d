// Package repotest provides in-memory repositories for tests.
package repotest

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"staynest/internal/models"
	"staynest/internal/repositories"
)

// Store holds listings and reviews in insertion order.
// Fail hooks, when set, are returned by the named operation instead of running it.
type Store struct {
	mu       sync.Mutex
	listings []models.Listing
	reviews  []models.Review

	FailReviewCreate      error
	FailReviewDelete      error
	FailReviewDeleteByIDs error
	FailListingFind       error
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Listings() repositories.ListingRepository {
	return &listingRepo{s: s}
}

func (s *Store) Reviews() repositories.ReviewRepository {
	return &reviewRepo{s: s}
}

// AllListings returns a snapshot of every stored listing.
func (s *Store) AllListings() []models.Listing {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Listing, len(s.listings))
	for i, l := range s.listings {
		out[i] = cloneListing(l)
	}
	return out
}

// AllReviews returns a snapshot of every stored review.
func (s *Store) AllReviews() []models.Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Review(nil), s.reviews...)
}

func (s *Store) listingIndex(id primitive.ObjectID) int {
	for i := range s.listings {
		if s.listings[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) reviewIndex(id primitive.ObjectID) int {
	for i := range s.reviews {
		if s.reviews[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneListing(l models.Listing) models.Listing {
	l.Reviews = append([]primitive.ObjectID{}, l.Reviews...)
	if l.Price != nil {
		p := *l.Price
		l.Price = &p
	}
	if l.Image != nil {
		img := *l.Image
		l.Image = &img
	}
	return l
}

type listingRepo struct{ s *Store }

func (r *listingRepo) FindAll(ctx context.Context) ([]models.Listing, error) {
	if r.s.FailListingFind != nil {
		return nil, r.s.FailListingFind
	}
	return r.s.AllListings(), nil
}

func (r *listingRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Listing, error) {
	if r.s.FailListingFind != nil {
		return nil, r.s.FailListingFind
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := r.s.listingIndex(id)
	if i < 0 {
		return nil, repositories.ErrListingNotFound
	}
	l := cloneListing(r.s.listings[i])
	return &l, nil
}

func (r *listingRepo) Create(ctx context.Context, listing *models.Listing) (primitive.ObjectID, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	listing.ID = primitive.NewObjectID()
	if listing.Reviews == nil {
		listing.Reviews = []primitive.ObjectID{}
	}
	r.s.listings = append(r.s.listings, cloneListing(*listing))
	return listing.ID, nil
}

func (r *listingRepo) UpdateByID(ctx context.Context, id primitive.ObjectID, u models.ListingUpdate) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := r.s.listingIndex(id)
	if i < 0 {
		return repositories.ErrListingNotFound
	}
	l := &r.s.listings[i]
	if u.Title != nil {
		l.Title = *u.Title
	}
	if u.Description != nil {
		l.Description = *u.Description
	}
	if u.Image != nil {
		img := *u.Image
		l.Image = &img
	}
	if u.Price != nil {
		p := *u.Price
		l.Price = &p
	}
	if u.Location != nil {
		l.Location = *u.Location
	}
	if u.Country != nil {
		l.Country = *u.Country
	}
	return nil
}

func (r *listingRepo) DeleteByID(ctx context.Context, id primitive.ObjectID) (*models.Listing, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := r.s.listingIndex(id)
	if i < 0 {
		return nil, repositories.ErrListingNotFound
	}
	deleted := r.s.listings[i]
	r.s.listings = append(r.s.listings[:i], r.s.listings[i+1:]...)
	return &deleted, nil
}

func (r *listingRepo) AppendReview(ctx context.Context, listingID, reviewID primitive.ObjectID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := r.s.listingIndex(listingID)
	if i < 0 {
		return repositories.ErrListingNotFound
	}
	r.s.listings[i].Reviews = append(r.s.listings[i].Reviews, reviewID)
	return nil
}

func (r *listingRepo) RemoveReview(ctx context.Context, listingID, reviewID primitive.ObjectID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := r.s.listingIndex(listingID)
	if i < 0 {
		return false, repositories.ErrListingNotFound
	}
	kept := r.s.listings[i].Reviews[:0]
	removed := false
	for _, ref := range r.s.listings[i].Reviews {
		if ref == reviewID {
			removed = true
			continue
		}
		kept = append(kept, ref)
	}
	r.s.listings[i].Reviews = kept
	return removed, nil
}

func (r *listingRepo) ReferencedReviews(ctx context.Context, reviewIDs []primitive.ObjectID) ([]primitive.ObjectID, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	wanted := make(map[primitive.ObjectID]bool, len(reviewIDs))
	for _, id := range reviewIDs {
		wanted[id] = true
	}
	out := []primitive.ObjectID{}
	for _, l := range r.s.listings {
		for _, ref := range l.Reviews {
			if wanted[ref] {
				out = append(out, ref)
				delete(wanted, ref)
			}
		}
	}
	return out, nil
}

func (r *listingRepo) DeleteAll(ctx context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := int64(len(r.s.listings))
	r.s.listings = nil
	return n, nil
}

func (r *listingRepo) InsertMany(ctx context.Context, listings []models.Listing) (int, error) {
	for i := range listings {
		l := listings[i]
		if _, err := r.Create(ctx, &l); err != nil {
			return i, err
		}
	}
	return len(listings), nil
}

type reviewRepo struct{ s *Store }

func (r *reviewRepo) FindAll(ctx context.Context) ([]models.Review, error) {
	return r.s.AllReviews(), nil
}

func (r *reviewRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Review, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := r.s.reviewIndex(id)
	if i < 0 {
		return nil, repositories.ErrReviewNotFound
	}
	review := r.s.reviews[i]
	return &review, nil
}

func (r *reviewRepo) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Review, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]models.Review, 0, len(ids))
	for _, id := range ids {
		if i := r.s.reviewIndex(id); i >= 0 {
			out = append(out, r.s.reviews[i])
		}
	}
	return out, nil
}

func (r *reviewRepo) FindCreatedBefore(ctx context.Context, cutoff time.Time) ([]models.Review, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []models.Review{}
	for _, review := range r.s.reviews {
		if review.CreatedAt.Before(cutoff) {
			out = append(out, review)
		}
	}
	return out, nil
}

// AddReview stores a review without attaching it to any listing.
func (s *Store) AddReview(review models.Review) primitive.ObjectID {
	s.mu.Lock()
	defer s.mu.Unlock()
	if review.ID.IsZero() {
		review.ID = primitive.NewObjectID()
	}
	s.reviews = append(s.reviews, review)
	return review.ID
}

func (r *reviewRepo) Create(ctx context.Context, review *models.Review) (primitive.ObjectID, error) {
	if r.s.FailReviewCreate != nil {
		return primitive.NilObjectID, r.s.FailReviewCreate
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	review.ID = primitive.NewObjectID()
	r.s.reviews = append(r.s.reviews, *review)
	return review.ID, nil
}

func (r *reviewRepo) UpdateByID(ctx context.Context, id primitive.ObjectID, u models.ReviewUpdate) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := r.s.reviewIndex(id)
	if i < 0 {
		return repositories.ErrReviewNotFound
	}
	if u.Comment != nil {
		r.s.reviews[i].Comment = *u.Comment
	}
	if u.Rating != nil {
		r.s.reviews[i].Rating = *u.Rating
	}
	return nil
}

func (r *reviewRepo) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	if r.s.FailReviewDelete != nil {
		return r.s.FailReviewDelete
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := r.s.reviewIndex(id)
	if i < 0 {
		return repositories.ErrReviewNotFound
	}
	r.s.reviews = append(r.s.reviews[:i], r.s.reviews[i+1:]...)
	return nil
}

func (r *reviewRepo) DeleteByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	if r.s.FailReviewDeleteByIDs != nil {
		return 0, r.s.FailReviewDeleteByIDs
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	drop := make(map[primitive.ObjectID]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	kept := r.s.reviews[:0]
	var n int64
	for _, review := range r.s.reviews {
		if drop[review.ID] {
			n++
			continue
		}
		kept = append(kept, review)
	}
	r.s.reviews = kept
	return n, nil
}
