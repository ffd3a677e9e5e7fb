package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates indexes for frequently used booking queries.
func (r *MongoBookingRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	idIdx := mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	phoneIdx := mongo.IndexModel{
		Keys: bson.D{{Key: "phone", Value: 1}, {Key: "createdAt", Value: -1}},
	}
	statusIdx := mongo.IndexModel{
		Keys: bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: -1}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{idIdx, phoneIdx, statusIdx}); err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}
