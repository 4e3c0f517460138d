package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"staynest/internal/models"
)

var ErrListingNotFound = errors.New("listing not found")

type ListingRepository interface {
	FindAll(ctx context.Context) ([]models.Listing, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Listing, error)
	Create(ctx context.Context, listing *models.Listing) (primitive.ObjectID, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, update models.ListingUpdate) error
	DeleteByID(ctx context.Context, id primitive.ObjectID) (*models.Listing, error)

	// Review references
	AppendReview(ctx context.Context, listingID, reviewID primitive.ObjectID) error
	RemoveReview(ctx context.Context, listingID, reviewID primitive.ObjectID) (bool, error)
	ReferencedReviews(ctx context.Context, reviewIDs []primitive.ObjectID) ([]primitive.ObjectID, error)

	// Bulk operations for the seed loader
	DeleteAll(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, listings []models.Listing) (int, error)
}

type ListingRepositoryImpl struct {
	coll *mongo.Collection
}

func NewListingRepository(db *mongo.Database) ListingRepository {
	return &ListingRepositoryImpl{coll: db.Collection(models.ListingsCollection)}
}

func (r *ListingRepositoryImpl) FindAll(ctx context.Context) ([]models.Listing, error) {
	start := time.Now()

	cursor, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		observe(models.ListingsCollection, "find", start, err)
		return nil, fmt.Errorf("ListingRepository.FindAll: %w", err)
	}
	defer cursor.Close(ctx)

	listings := []models.Listing{}
	err = cursor.All(ctx, &listings)
	observe(models.ListingsCollection, "find", start, err)
	if err != nil {
		return nil, fmt.Errorf("ListingRepository.FindAll decode: %w", err)
	}
	return listings, nil
}

func (r *ListingRepositoryImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Listing, error) {
	start := time.Now()

	var listing models.Listing
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&listing)
	observe(models.ListingsCollection, "findOne", start, err)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrListingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ListingRepository.FindByID: %w", err)
	}
	return &listing, nil
}

// Create stores the listing with an empty review list and returns its new id.
func (r *ListingRepositoryImpl) Create(ctx context.Context, listing *models.Listing) (primitive.ObjectID, error) {
	start := time.Now()

	listing.ID = primitive.NilObjectID
	if listing.Reviews == nil {
		listing.Reviews = []primitive.ObjectID{}
	}

	res, err := r.coll.InsertOne(ctx, listing)
	observe(models.ListingsCollection, "insertOne", start, err)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("ListingRepository.Create: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("ListingRepository.Create: unexpected id type %T", res.InsertedID)
	}
	listing.ID = id
	return id, nil
}

// UpdateByID sets only the non-nil fields of update. The review list is never touched.
func (r *ListingRepositoryImpl) UpdateByID(ctx context.Context, id primitive.ObjectID, update models.ListingUpdate) error {
	set := listingSet(update)
	if len(set) == 0 {
		_, err := r.FindByID(ctx, id)
		return err
	}

	start := time.Now()
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.D{{Key: "$set", Value: set}})
	observe(models.ListingsCollection, "updateOne", start, err)
	if err != nil {
		return fmt.Errorf("ListingRepository.UpdateByID: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrListingNotFound
	}
	return nil
}

func listingSet(u models.ListingUpdate) bson.D {
	set := bson.D{}
	if u.Title != nil {
		set = append(set, bson.E{Key: "title", Value: *u.Title})
	}
	if u.Description != nil {
		set = append(set, bson.E{Key: "description", Value: *u.Description})
	}
	if u.Image != nil {
		set = append(set, bson.E{Key: "image", Value: u.Image})
	}
	if u.Price != nil {
		set = append(set, bson.E{Key: "price", Value: *u.Price})
	}
	if u.Location != nil {
		set = append(set, bson.E{Key: "location", Value: *u.Location})
	}
	if u.Country != nil {
		set = append(set, bson.E{Key: "country", Value: *u.Country})
	}
	return set
}

// DeleteByID removes the listing and returns it as it was stored.
func (r *ListingRepositoryImpl) DeleteByID(ctx context.Context, id primitive.ObjectID) (*models.Listing, error) {
	start := time.Now()

	var listing models.Listing
	err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&listing)
	observe(models.ListingsCollection, "findOneAndDelete", start, err)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrListingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ListingRepository.DeleteByID: %w", err)
	}
	return &listing, nil
}

func (r *ListingRepositoryImpl) AppendReview(ctx context.Context, listingID, reviewID primitive.ObjectID) error {
	start := time.Now()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": listingID},
		bson.M{"$push": bson.M{"reviews": reviewID}},
	)
	observe(models.ListingsCollection, "push", start, err)
	if err != nil {
		return fmt.Errorf("ListingRepository.AppendReview: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrListingNotFound
	}
	return nil
}

// RemoveReview pulls reviewID from the listing. The bool reports whether the reference was present.
func (r *ListingRepositoryImpl) RemoveReview(ctx context.Context, listingID, reviewID primitive.ObjectID) (bool, error) {
	start := time.Now()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": listingID},
		bson.M{"$pull": bson.M{"reviews": reviewID}},
	)
	observe(models.ListingsCollection, "pull", start, err)
	if err != nil {
		return false, fmt.Errorf("ListingRepository.RemoveReview: %w", err)
	}
	if res.MatchedCount == 0 {
		return false, ErrListingNotFound
	}
	return res.ModifiedCount > 0, nil
}

// ReferencedReviews returns the subset of reviewIDs that some listing still points to.
func (r *ListingRepositoryImpl) ReferencedReviews(ctx context.Context, reviewIDs []primitive.ObjectID) ([]primitive.ObjectID, error) {
	if len(reviewIDs) == 0 {
		return []primitive.ObjectID{}, nil
	}

	start := time.Now()
	values, err := r.coll.Distinct(ctx, "reviews", bson.M{"reviews": bson.M{"$in": reviewIDs}})
	observe(models.ListingsCollection, "distinct", start, err)
	if err != nil {
		return nil, fmt.Errorf("ListingRepository.ReferencedReviews: %w", err)
	}

	wanted := make(map[primitive.ObjectID]bool, len(reviewIDs))
	for _, id := range reviewIDs {
		wanted[id] = true
	}

	// distinct returns every element of the matched arrays, not only the requested ones
	referenced := make([]primitive.ObjectID, 0, len(values))
	for _, v := range values {
		if id, ok := v.(primitive.ObjectID); ok && wanted[id] {
			referenced = append(referenced, id)
		}
	}
	return referenced, nil
}

func (r *ListingRepositoryImpl) DeleteAll(ctx context.Context) (int64, error) {
	start := time.Now()

	res, err := r.coll.DeleteMany(ctx, bson.D{})
	observe(models.ListingsCollection, "deleteMany", start, err)
	if err != nil {
		return 0, fmt.Errorf("ListingRepository.DeleteAll: %w", err)
	}
	return res.DeletedCount, nil
}

func (r *ListingRepositoryImpl) InsertMany(ctx context.Context, listings []models.Listing) (int, error) {
	if len(listings) == 0 {
		return 0, nil
	}

	docs := make([]interface{}, len(listings))
	for i := range listings {
		l := listings[i]
		l.ID = primitive.NilObjectID
		if l.Reviews == nil {
			l.Reviews = []primitive.ObjectID{}
		}
		docs[i] = l
	}

	start := time.Now()
	res, err := r.coll.InsertMany(ctx, docs)
	observe(models.ListingsCollection, "insertMany", start, err)
	if err != nil {
		return 0, fmt.Errorf("ListingRepository.InsertMany: %w", err)
	}
	return len(res.InsertedIDs), nil
}
