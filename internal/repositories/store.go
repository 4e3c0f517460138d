package repositories

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"staynest/internal/logger"
)

// observe logs a store call. A missing document is not a store failure.
func observe(collection, operation string, start time.Time, err error) {
	if errors.Is(err, mongo.ErrNoDocuments) {
		err = nil
	}
	logger.StoreLog(collection, operation, time.Since(start), err)
}
