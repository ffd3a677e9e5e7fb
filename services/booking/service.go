package booking

import (
	"errors"
	"strings"
	"time"

	bookingRepo "sanocare/database/repository/booking"
	"sanocare/models"
	"sanocare/utils"

	"go.uber.org/zap"
)

// NewDefaultBookingService wires a booking service over the given repository.
func NewDefaultBookingService(repo bookingRepo.BookingRepository) *DefaultBookingService {
	return &DefaultBookingService{Repo: repo, now: time.Now}
}

type createResult struct {
	id  string
	err error
}

// CreateBooking runs validation, normalizes the input, computes the quoted
// amount and persists a PENDING row. The repository call races a timer so a
// hung transport cannot hold the patient's submission open; a late success
// after the timer fired is drained without touching any state.
func (s *DefaultBookingService) CreateBooking(input models.BookingInput) (*models.ConfirmedBooking, error) {
	if result := Validate(input); !result.Valid {
		return nil, newValidationError(result.FirstError())
	}

	input.PatientName = strings.TrimSpace(input.PatientName)
	input.Phone = strings.TrimSpace(input.Phone)
	input.ManualAddress = strings.TrimSpace(input.ManualAddress)
	input.SpecificAilment = strings.TrimSpace(input.SpecificAilment)

	amount := models.ServicePrice(input.ServiceCategory)

	done := make(chan createResult, 1)
	go func() {
		id, err := s.Repo.Create(input, amount, models.StatusPending)
		done <- createResult{id: id, err: err}
	}()

	timer := time.NewTimer(CreateTimeout)
	defer timer.Stop()

	select {
	case res := <-done:
		if res.err != nil {
			utils.GetLogger().Error("booking create failed", zap.Error(res.err))
			return nil, categorize(res.err)
		}
		return &models.ConfirmedBooking{
			ID:              res.id,
			Name:            input.PatientName,
			Phone:           input.Phone,
			Location:        input.ManualAddress,
			ServiceCategory: input.ServiceCategory,
			Amount:          amount,
			ConfirmedAt:     s.clock()(),
		}, nil
	case <-timer.C:
		utils.GetLogger().Warn("booking create timed out", zap.Duration("timeout", CreateTimeout))
		return nil, newNetworkError()
	}
}

// GetByPhone returns the caller's bookings, newest first.
func (s *DefaultBookingService) GetByPhone(phone string) ([]models.Booking, error) {
	bookings, err := s.Repo.GetByPhone(strings.TrimSpace(phone))
	if err != nil {
		utils.GetLogger().Error("booking lookup failed", zap.Error(err))
		return nil, categorize(err)
	}
	return bookings, nil
}

// UpdateStatus moves a booking to the requested status, rejecting unknown
// statuses and backward moves. The write is guarded on the current status
// so concurrent operators cannot both win.
func (s *DefaultBookingService) UpdateStatus(id string, status models.BookingStatus) error {
	if !models.IsValidStatus(status) {
		return newValidationError("Unknown booking status.")
	}

	current, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return newValidationError("Booking not found.")
		}
		return categorize(err)
	}
	if !models.CanTransition(current.Status, status) {
		return newValidationError("This booking cannot move to the requested status.")
	}

	if err := s.Repo.UpdateStatusFrom(id, current.Status, status, nil); err != nil {
		if errors.Is(err, bookingRepo.ErrStatusConflict) {
			return newValidationError("The booking was updated by someone else. Please refresh and retry.")
		}
		return categorize(err)
	}
	return nil
}

// CancelBooking moves a non-terminal booking to CANCELLED.
func (s *DefaultBookingService) CancelBooking(id string) error {
	return s.UpdateStatus(id, models.StatusCancelled)
}

func (s *DefaultBookingService) clock() func() time.Time {
	if s.now != nil {
		return s.now
	}
	return time.Now
}

// categorize maps a repository-level failure onto a user-facing category.
func categorize(err error) *ServiceError {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "network"), strings.Contains(msg, "connection"),
		strings.Contains(msg, "dial"), strings.Contains(msg, "deadline exceeded"):
		return newNetworkError()
	case strings.Contains(msg, "duplicate"), strings.Contains(msg, "unavailable"),
		strings.Contains(msg, "server"):
		return newServerError()
	default:
		return newUnknownError()
	}
}
