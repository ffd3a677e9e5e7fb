package dispatch

import (
	"fmt"
	"time"

	bookingRepo "sanocare/database/repository/booking"
	paramedicRepo "sanocare/database/repository/paramedic"
	"sanocare/models"
)

// Error codes for operations-dashboard actions. The audience is staff, so
// messages stay terse; prior state is always left intact for a retry.
const (
	CodeNotFound = "notFound"
	CodeConflict = "conflict"
	CodeInvalid  = "invalid"
	CodeBackend  = "backend"
)

// DispatchError is a categorized dispatch-console failure.
type DispatchError struct {
	Code    string
	Message string
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Retryable reports whether the operator can simply retry the action.
func (e *DispatchError) Retryable() bool {
	return e.Code == CodeBackend || e.Code == CodeConflict
}

// Result is the outcome of a successful dispatch. Notified is false when
// the status write committed but the notice could not be queued; the
// booking is still correctly DISPATCHED and Warning says what happened.
type Result struct {
	Booking  models.Booking `json:"booking"`
	Notified bool           `json:"notified"`
	Warning  string         `json:"warning,omitempty"`
}

// Enqueuer hands a dispatch notice to the delivery queue.
type Enqueuer interface {
	EnqueueDispatchNotice(recipientPhone, message string) error
}

// DispatchService drives the booking status lifecycle from the operations
// dashboard.
type DispatchService interface {
	// Dispatch assigns an on-duty paramedic to a PENDING booking, moving it
	// to DISPATCHED and queueing the responder notice.
	Dispatch(bookingID, paramedicID string) (*Result, error)
	// CompleteVisit moves a DISPATCHED or IN_PROGRESS booking to COMPLETED.
	// The operator must have affirmed the combined checklist; the checklist
	// itself is advisory, not machine-verified.
	CompleteVisit(bookingID string, attested bool) error
	// Cancel moves a non-terminal booking to CANCELLED.
	Cancel(bookingID string) error
}

// DefaultDispatchService implements DispatchService.
type DefaultDispatchService struct {
	Bookings   bookingRepo.BookingRepository
	Paramedics paramedicRepo.ParamedicRepository
	Queue      Enqueuer

	now func() time.Time
}

// NewDefaultDispatchService wires the dispatch service.
func NewDefaultDispatchService(
	bookings bookingRepo.BookingRepository,
	paramedics paramedicRepo.ParamedicRepository,
	queue Enqueuer,
) *DefaultDispatchService {
	return &DefaultDispatchService{
		Bookings:   bookings,
		Paramedics: paramedics,
		Queue:      queue,
		now:        time.Now,
	}
}
