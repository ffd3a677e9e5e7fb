package dispatch

import (
	"errors"
	"time"

	bookingRepo "sanocare/database/repository/booking"
	paramedicRepo "sanocare/database/repository/paramedic"
	"sanocare/models"
	"sanocare/utils"

	"go.uber.org/zap"
)

// Dispatch assigns a paramedic to a PENDING booking. The status write is
// guarded on the booking still being PENDING, so two operators racing to
// dispatch the same booking cannot both succeed. The responder notice is
// queued only after the write commits.
func (s *DefaultDispatchService) Dispatch(bookingID, paramedicID string) (*Result, error) {
	booking, err := s.Bookings.GetByID(bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, &DispatchError{Code: CodeNotFound, Message: "Booking not found."}
		}
		return nil, backendError(err)
	}
	if booking.Status != models.StatusPending {
		return nil, &DispatchError{Code: CodeInvalid, Message: "Only a PENDING booking can be dispatched."}
	}

	paramedic, err := s.Paramedics.GetByID(paramedicID)
	if err != nil {
		if errors.Is(err, paramedicRepo.ErrNotFound) {
			return nil, &DispatchError{Code: CodeNotFound, Message: "Paramedic not found."}
		}
		return nil, backendError(err)
	}
	if !paramedic.IsActive {
		return nil, &DispatchError{Code: CodeInvalid, Message: "Paramedic is off duty and cannot be dispatched."}
	}

	dispatchedAt := s.clock()()
	fields := bookingRepo.DispatchFields{
		AssignedParamedicID: paramedic.ID,
		DispatchedAt:        dispatchedAt,
	}
	if err := s.Bookings.UpdateStatusFrom(bookingID, models.StatusPending, models.StatusDispatched, &fields); err != nil {
		if errors.Is(err, bookingRepo.ErrStatusConflict) {
			return nil, &DispatchError{Code: CodeConflict, Message: "Booking was already dispatched. Refresh and retry."}
		}
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, &DispatchError{Code: CodeNotFound, Message: "Booking not found."}
		}
		return nil, backendError(err)
	}

	updated := *booking
	updated.Status = models.StatusDispatched
	updated.AssignedParamedicID = paramedic.ID
	updated.DispatchedAt = &dispatchedAt

	result := &Result{Booking: updated, Notified: true}

	// The write committed; the notice must be attempted, and a queueing
	// failure is a warning, never a rollback.
	message := BuildDispatchMessage(&updated)
	if err := s.Queue.EnqueueDispatchNotice(paramedic.Phone, message); err != nil {
		utils.GetLogger().Error("failed to queue dispatch notice",
			zap.String("bookingId", bookingID), zap.Error(err))
		result.Notified = false
		result.Warning = "Booking dispatched, but the responder notice could not be queued. Contact the paramedic directly."
	}
	return result, nil
}

// CompleteVisit moves a dispatched booking to COMPLETED after the operator
// affirms the combined checklist.
func (s *DefaultDispatchService) CompleteVisit(bookingID string, attested bool) error {
	if !attested {
		return &DispatchError{Code: CodeInvalid, Message: "Please confirm that you have verified all requirements."}
	}

	booking, err := s.Bookings.GetByID(bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return &DispatchError{Code: CodeNotFound, Message: "Booking not found."}
		}
		return backendError(err)
	}
	if !models.CanTransition(booking.Status, models.StatusCompleted) {
		return &DispatchError{Code: CodeInvalid, Message: "Only a dispatched booking can be completed."}
	}

	if err := s.Bookings.UpdateStatusFrom(bookingID, booking.Status, models.StatusCompleted, nil); err != nil {
		if errors.Is(err, bookingRepo.ErrStatusConflict) {
			return &DispatchError{Code: CodeConflict, Message: "Booking changed concurrently. Refresh and retry."}
		}
		return backendError(err)
	}
	return nil
}

// Cancel moves a non-terminal booking to CANCELLED.
func (s *DefaultDispatchService) Cancel(bookingID string) error {
	booking, err := s.Bookings.GetByID(bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return &DispatchError{Code: CodeNotFound, Message: "Booking not found."}
		}
		return backendError(err)
	}
	if !models.CanTransition(booking.Status, models.StatusCancelled) {
		return &DispatchError{Code: CodeInvalid, Message: "Booking is already closed."}
	}

	if err := s.Bookings.UpdateStatusFrom(bookingID, booking.Status, models.StatusCancelled, nil); err != nil {
		if errors.Is(err, bookingRepo.ErrStatusConflict) {
			return &DispatchError{Code: CodeConflict, Message: "Booking changed concurrently. Refresh and retry."}
		}
		return backendError(err)
	}
	return nil
}

func (s *DefaultDispatchService) clock() func() time.Time {
	if s.now != nil {
		return s.now
	}
	return time.Now
}

func backendError(err error) *DispatchError {
	utils.GetLogger().Error("dispatch backend error", zap.Error(err))
	return &DispatchError{Code: CodeBackend, Message: "Backend error. Retry the action."}
}
