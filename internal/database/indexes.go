package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"staynest/internal/logger"
	"staynest/internal/models"
)

// EnsureIndexes creates the secondary indexes the repositories rely on. It is safe to run on every start.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		models.ListingsCollection: {
			{Keys: bson.D{{Key: "reviews", Value: 1}}, Options: options.Index().SetName("reviews_1")},
		},
		models.ReviewsCollection: {
			{Keys: bson.D{{Key: "createdAt", Value: 1}}, Options: options.Index().SetName("createdAt_1")},
		},
	}

	for _, coll := range []string{models.ListingsCollection, models.ReviewsCollection} {
		names, err := db.Collection(coll).Indexes().CreateMany(ctx, indexes[coll])
		if err != nil {
			return fmt.Errorf("create indexes on %s: %w", coll, err)
		}
		logger.Debug("Indexes ensured", "collection", coll, "indexes", names)
	}
	return nil
}
