package bookingRepo

import (
	"fmt"
	"time"

	"sanocare/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new booking document with a store-assigned id.
func (r *MongoBookingRepo) Create(input models.BookingInput, amount int, status models.BookingStatus) (string, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	booking := models.Booking{
		ID:              uuid.New().String(),
		PatientName:     input.PatientName,
		Phone:           input.Phone,
		ServiceCategory: input.ServiceCategory,
		ManualAddress:   input.ManualAddress,
		GPSLocation:     input.GPSLocation,
		SpecificAilment: input.SpecificAilment,
		Status:          status,
		Amount:          amount,
		CreatedAt:       time.Now().UTC(),
	}

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return "", fmt.Errorf("failed to create booking: %w", err)
	}
	return booking.ID, nil
}

// UpdateStatus sets the status of an existing booking.
func (r *MongoBookingRepo) UpdateStatus(id string, status models.BookingStatus) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	update := bson.M{"$set": bson.M{"status": status}}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update booking %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateStatusFrom performs a compare-and-set status transition. The filter
// matches on the expected current status, so two operators racing to move
// the same booking cannot both win.
func (r *MongoBookingRepo) UpdateStatusFrom(id string, from, to models.BookingStatus, dispatch *DispatchFields) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	set := bson.M{"status": to}
	if dispatch != nil {
		set["assignedParamedicId"] = dispatch.AssignedParamedicID
		set["dispatchedAt"] = dispatch.DispatchedAt.UTC()
	}

	filter := bson.M{"id": id, "status": from}
	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update booking %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		// Distinguish a missing row from a lost race.
		count, cerr := r.coll.CountDocuments(ctx, bson.M{"id": id})
		if cerr == nil && count == 0 {
			return ErrNotFound
		}
		return ErrStatusConflict
	}
	return nil
}
