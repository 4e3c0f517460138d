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

var ErrReviewNotFound = errors.New("review not found")

type ReviewRepository interface {
	FindAll(ctx context.Context) ([]models.Review, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Review, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Review, error)
	FindCreatedBefore(ctx context.Context, cutoff time.Time) ([]models.Review, error)
	Create(ctx context.Context, review *models.Review) (primitive.ObjectID, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, update models.ReviewUpdate) error
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
	DeleteByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error)
}

type ReviewRepositoryImpl struct {
	coll *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) ReviewRepository {
	return &ReviewRepositoryImpl{coll: db.Collection(models.ReviewsCollection)}
}

func (r *ReviewRepositoryImpl) FindAll(ctx context.Context) ([]models.Review, error) {
	return r.find(ctx, bson.D{}, "FindAll")
}

func (r *ReviewRepositoryImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Review, error) {
	start := time.Now()

	var review models.Review
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&review)
	observe(models.ReviewsCollection, "findOne", start, err)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrReviewNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ReviewRepository.FindByID: %w", err)
	}
	return &review, nil
}

// FindByIDs returns the reviews in the order of ids. Ids without a stored review are skipped.
func (r *ReviewRepositoryImpl) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Review, error) {
	if len(ids) == 0 {
		return []models.Review{}, nil
	}

	found, err := r.find(ctx, bson.M{"_id": bson.M{"$in": ids}}, "FindByIDs")
	if err != nil {
		return nil, err
	}

	byID := make(map[primitive.ObjectID]models.Review, len(found))
	for _, review := range found {
		byID[review.ID] = review
	}

	ordered := make([]models.Review, 0, len(ids))
	for _, id := range ids {
		if review, ok := byID[id]; ok {
			ordered = append(ordered, review)
		}
	}
	return ordered, nil
}

func (r *ReviewRepositoryImpl) FindCreatedBefore(ctx context.Context, cutoff time.Time) ([]models.Review, error) {
	return r.find(ctx, bson.M{"createdAt": bson.M{"$lt": cutoff}}, "FindCreatedBefore")
}

func (r *ReviewRepositoryImpl) find(ctx context.Context, filter interface{}, method string) ([]models.Review, error) {
	start := time.Now()

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		observe(models.ReviewsCollection, "find", start, err)
		return nil, fmt.Errorf("ReviewRepository.%s: %w", method, err)
	}
	defer cursor.Close(ctx)

	reviews := []models.Review{}
	err = cursor.All(ctx, &reviews)
	observe(models.ReviewsCollection, "find", start, err)
	if err != nil {
		return nil, fmt.Errorf("ReviewRepository.%s decode: %w", method, err)
	}
	return reviews, nil
}

func (r *ReviewRepositoryImpl) Create(ctx context.Context, review *models.Review) (primitive.ObjectID, error) {
	start := time.Now()

	review.ID = primitive.NilObjectID
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now().UTC()
	}

	res, err := r.coll.InsertOne(ctx, review)
	observe(models.ReviewsCollection, "insertOne", start, err)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("ReviewRepository.Create: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("ReviewRepository.Create: unexpected id type %T", res.InsertedID)
	}
	review.ID = id
	return id, nil
}

func (r *ReviewRepositoryImpl) UpdateByID(ctx context.Context, id primitive.ObjectID, update models.ReviewUpdate) error {
	set := bson.D{}
	if update.Comment != nil {
		set = append(set, bson.E{Key: "comment", Value: *update.Comment})
	}
	if update.Rating != nil {
		set = append(set, bson.E{Key: "rating", Value: *update.Rating})
	}
	if len(set) == 0 {
		_, err := r.FindByID(ctx, id)
		return err
	}

	start := time.Now()
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.D{{Key: "$set", Value: set}})
	observe(models.ReviewsCollection, "updateOne", start, err)
	if err != nil {
		return fmt.Errorf("ReviewRepository.UpdateByID: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrReviewNotFound
	}
	return nil
}

func (r *ReviewRepositoryImpl) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	start := time.Now()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	observe(models.ReviewsCollection, "deleteOne", start, err)
	if err != nil {
		return fmt.Errorf("ReviewRepository.DeleteByID: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrReviewNotFound
	}
	return nil
}

func (r *ReviewRepositoryImpl) DeleteByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	start := time.Now()
	res, err := r.coll.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	observe(models.ReviewsCollection, "deleteMany", start, err)
	if err != nil {
		return 0, fmt.Errorf("ReviewRepository.DeleteByIDs: %w", err)
	}
	return res.DeletedCount, nil
}
