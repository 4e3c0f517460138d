package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"staynest/internal/models"
)

const reviewsNS = "staynest.reviews"

func reviewDoc(id primitive.ObjectID, comment string, rating int32) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "comment", Value: comment},
		{Key: "rating", Value: rating},
		{Key: "createdAt", Value: primitive.NewDateTimeFromTime(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))},
	}
}

func TestReviewRepository_FindByIDs(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("keeps reference order and skips missing", func(mt *mtest.T) {
		a, b, missing := primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, reviewsNS, mtest.FirstBatch,
			reviewDoc(a, "first", 5),
			reviewDoc(b, "second", 3),
		))

		reviews, err := NewReviewRepository(mt.DB).FindByIDs(context.Background(), []primitive.ObjectID{b, missing, a})

		require.NoError(mt, err)
		require.Len(mt, reviews, 2)
		assert.Equal(mt, "second", reviews[0].Comment)
		assert.Equal(mt, "first", reviews[1].Comment)
		assert.Equal(mt, 5, reviews[1].Rating)
		assert.Equal(mt, 2024, reviews[1].CreatedAt.Year())
	})

	mt.Run("no ids skips the store", func(mt *mtest.T) {
		reviews, err := NewReviewRepository(mt.DB).FindByIDs(context.Background(), nil)

		require.NoError(mt, err)
		assert.Empty(mt, reviews)
	})
}

func TestReviewRepository_FindByID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, reviewsNS, mtest.FirstBatch, reviewDoc(id, "great", 4)))

		review, err := NewReviewRepository(mt.DB).FindByID(context.Background(), id)

		require.NoError(mt, err)
		assert.Equal(mt, id, review.ID)
	})

	mt.Run("not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, reviewsNS, mtest.FirstBatch))

		_, err := NewReviewRepository(mt.DB).FindByID(context.Background(), primitive.NewObjectID())

		assert.ErrorIs(mt, err, ErrReviewNotFound)
	})
}

func TestReviewRepository_Create(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("sets id and timestamp", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		review := &models.Review{Comment: "ok", Rating: 3}
		id, err := NewReviewRepository(mt.DB).Create(context.Background(), review)

		require.NoError(mt, err)
		assert.Equal(mt, id, review.ID)
		assert.False(mt, review.CreatedAt.IsZero())
	})
}

func TestReviewRepository_UpdateByID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	rating := 2

	mt.Run("matched", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))

		err := NewReviewRepository(mt.DB).UpdateByID(context.Background(), primitive.NewObjectID(), models.ReviewUpdate{Rating: &rating})

		assert.NoError(mt, err)
	})

	mt.Run("no match", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}))

		err := NewReviewRepository(mt.DB).UpdateByID(context.Background(), primitive.NewObjectID(), models.ReviewUpdate{Rating: &rating})

		assert.ErrorIs(mt, err, ErrReviewNotFound)
	})
}

func TestReviewRepository_Delete(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("delete one", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		err := NewReviewRepository(mt.DB).DeleteByID(context.Background(), primitive.NewObjectID())

		assert.NoError(mt, err)
	})

	mt.Run("delete missing", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		err := NewReviewRepository(mt.DB).DeleteByID(context.Background(), primitive.NewObjectID())

		assert.ErrorIs(mt, err, ErrReviewNotFound)
	})

	mt.Run("delete many", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 2}))

		n, err := NewReviewRepository(mt.DB).DeleteByIDs(context.Background(), []primitive.ObjectID{primitive.NewObjectID(), primitive.NewObjectID()})

		require.NoError(mt, err)
		assert.Equal(mt, int64(2), n)
	})

	mt.Run("delete many without ids", func(mt *mtest.T) {
		n, err := NewReviewRepository(mt.DB).DeleteByIDs(context.Background(), nil)

		require.NoError(mt, err)
		assert.Zero(mt, n)
	})
}

func TestReviewRepository_FindCreatedBefore(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns matches", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, reviewsNS, mtest.FirstBatch, reviewDoc(id, "old", 2)))

		reviews, err := NewReviewRepository(mt.DB).FindCreatedBefore(context.Background(), time.Now())

		require.NoError(mt, err)
		require.Len(mt, reviews, 1)
		assert.Equal(mt, id, reviews[0].ID)
	})
}
