package bookingRepo

import (
	"context"
	"time"

	"sanocare/database"
	"sanocare/models"
	"sanocare/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a BookingRepository backed by the "bookings" collection.
func NewMongoBookingRepo() *MongoBookingRepo {
	return &MongoBookingRepo{coll: database.Collection("bookings")}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// sanitizeRow validates a decoded row at the repository boundary so that
// malformed backend data never reaches business logic. Rows with no id are
// rejected; an unknown status string is rejected rather than guessed at.
func sanitizeRow(b *models.Booking) bool {
	if b.ID == "" {
		return false
	}
	if !models.IsValidStatus(b.Status) {
		utils.GetLogger().Warn("dropping booking row with unknown status",
			zap.String("id", b.ID), zap.String("status", string(b.Status)))
		return false
	}
	return true
}
