package bookingRepo

import (
	"errors"
	"time"

	"sanocare/models"
)

// ErrNotFound is returned when a booking id matches no row.
var ErrNotFound = errors.New("booking not found")

// ErrStatusConflict is returned when a guarded status update finds the
// booking no longer in the expected state (e.g. a second operator already
// dispatched it).
var ErrStatusConflict = errors.New("booking status changed concurrently")

// DispatchFields carries the assignment fields set together with the
// PENDING -> DISPATCHED transition.
type DispatchFields struct {
	AssignedParamedicID string
	DispatchedAt        time.Time
}

// BookingRepository defines booking data access. Implementations assign
// the booking id and creation timestamp; clients never choose either.
type BookingRepository interface {
	// Create inserts a new booking row and returns the assigned id.
	Create(input models.BookingInput, amount int, status models.BookingStatus) (string, error)
	// GetByID retrieves a booking, or ErrNotFound.
	GetByID(id string) (*models.Booking, error)
	// GetByPhone returns the caller's bookings, newest first.
	GetByPhone(phone string) ([]models.Booking, error)
	// GetAll returns every booking, newest first.
	GetAll() ([]models.Booking, error)
	// UpdateStatus sets the status unconditionally (caller validates the transition).
	UpdateStatus(id string, status models.BookingStatus) error
	// UpdateStatusFrom sets the status only if the row is still in the
	// expected state, returning ErrStatusConflict otherwise. A non-nil
	// dispatch attaches the assignment fields in the same write.
	UpdateStatusFrom(id string, from, to models.BookingStatus, dispatch *DispatchFields) error
}
