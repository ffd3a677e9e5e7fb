package feed

import (
	"context"
	"fmt"

	"sanocare/database"
	"sanocare/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Stream delivers booking change events until the context is cancelled.
type Stream interface {
	Run(ctx context.Context, events chan<- Event) error
}

// MongoBookingStream implements Stream over a MongoDB change stream on the
// bookings collection.
type MongoBookingStream struct {
	coll *mongo.Collection
}

// NewMongoBookingStream creates the production stream.
func NewMongoBookingStream() *MongoBookingStream {
	return &MongoBookingStream{coll: database.Collection("bookings")}
}

type changeDocument struct {
	OperationType string         `bson:"operationType"`
	FullDocument  models.Booking `bson:"fullDocument"`
}

// Run watches inserts and updates, forwarding them in arrival order.
func (s *MongoBookingStream) Run(ctx context.Context, events chan<- Event) error {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"operationType": bson.M{"$in": bson.A{"insert", "update", "replace"}},
		}}},
	}
	opts := options.ChangeStream().SetFullDocument(options.UpdateLookup)

	cs, err := s.coll.Watch(ctx, pipeline, opts)
	if err != nil {
		return fmt.Errorf("failed to open booking change stream: %w", err)
	}
	defer cs.Close(ctx)

	for cs.Next(ctx) {
		var doc changeDocument
		if err := cs.Decode(&doc); err != nil {
			return fmt.Errorf("failed to decode change event: %w", err)
		}

		eventType := EventUpdate
		if doc.OperationType == "insert" {
			eventType = EventInsert
		}

		select {
		case events <- Event{Type: eventType, Booking: doc.FullDocument}:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if err := cs.Err(); err != nil {
		return fmt.Errorf("booking change stream failed: %w", err)
	}
	return nil
}
