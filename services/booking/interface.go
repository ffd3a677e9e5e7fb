package booking

import (
	"time"

	bookingRepo "sanocare/database/repository/booking"
	"sanocare/models"
)

// CreateTimeout bounds a booking submission independently of any transport
// timeout. A write that outlives it is reported as a network failure.
const CreateTimeout = 15 * time.Second

// BookingService orchestrates validation, pricing and persistence for the
// public booking flow. It is the one place the "what makes a booking valid"
// rules live.
type BookingService interface {
	// CreateBooking validates and persists a new PENDING booking, returning
	// the stored row. Failures are always *ServiceError.
	CreateBooking(input models.BookingInput) (*models.ConfirmedBooking, error)
	// GetByPhone returns the caller's bookings, newest first.
	GetByPhone(phone string) ([]models.Booking, error)
	// UpdateStatus moves a booking along the lifecycle, enforcing the
	// forward-only transition table.
	UpdateStatus(id string, status models.BookingStatus) error
	// CancelBooking moves a non-terminal booking to CANCELLED.
	CancelBooking(id string) error
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo bookingRepo.BookingRepository

	// now is swappable for tests; defaults to time.Now.
	now func() time.Time
}
