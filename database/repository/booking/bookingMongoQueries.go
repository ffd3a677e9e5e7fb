package bookingRepo

import (
	"errors"
	"fmt"
	"time"

	"sanocare/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetByID retrieves a booking by its unique id.
func (r *MongoBookingRepo) GetByID(id string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}
	if !sanitizeRow(&booking) {
		return nil, fmt.Errorf("booking %s: malformed row", id)
	}
	return &booking, nil
}

// GetByPhone returns all bookings for a phone number, newest first.
func (r *MongoBookingRepo) GetByPhone(phone string) ([]models.Booking, error) {
	return r.find(bson.M{"phone": phone})
}

// GetAll returns every booking, newest first.
func (r *MongoBookingRepo) GetAll() ([]models.Booking, error) {
	return r.find(bson.M{})
}

func (r *MongoBookingRepo) find(filter bson.M) ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode booking: %w", err)
		}
		if sanitizeRow(&b) {
			bookings = append(bookings, b)
		}
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error while reading bookings: %w", err)
	}
	return bookings, nil
}
