package dispatch

import (
	"errors"
	"testing"
	"time"

	bookingRepo "sanocare/database/repository/booking"
	paramedicRepo "sanocare/database/repository/paramedic"
	"sanocare/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBookings struct {
	rows map[string]*models.Booking
}

func (f *fakeBookings) Create(input models.BookingInput, amount int, status models.BookingStatus) (string, error) {
	return "", errors.New("not used")
}

func (f *fakeBookings) GetByID(id string) (*models.Booking, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	copied := *row
	return &copied, nil
}

func (f *fakeBookings) GetByPhone(phone string) ([]models.Booking, error) { return nil, nil }
func (f *fakeBookings) GetAll() ([]models.Booking, error)                 { return nil, nil }

func (f *fakeBookings) UpdateStatus(id string, status models.BookingStatus) error {
	row, ok := f.rows[id]
	if !ok {
		return bookingRepo.ErrNotFound
	}
	row.Status = status
	return nil
}

func (f *fakeBookings) UpdateStatusFrom(id string, from, to models.BookingStatus, dispatch *bookingRepo.DispatchFields) error {
	row, ok := f.rows[id]
	if !ok {
		return bookingRepo.ErrNotFound
	}
	if row.Status != from {
		return bookingRepo.ErrStatusConflict
	}
	row.Status = to
	if dispatch != nil {
		row.AssignedParamedicID = dispatch.AssignedParamedicID
		at := dispatch.DispatchedAt
		row.DispatchedAt = &at
	}
	return nil
}

type fakeParamedics struct {
	rows map[string]*models.Paramedic
}

func (f *fakeParamedics) Create(p *models.Paramedic) (string, error) { return "", nil }
func (f *fakeParamedics) GetByID(id string) (*models.Paramedic, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, paramedicRepo.ErrNotFound
	}
	copied := *row
	return &copied, nil
}
func (f *fakeParamedics) GetAll() ([]models.Paramedic, error)    { return nil, nil }
func (f *fakeParamedics) Update(p *models.Paramedic) error       { return nil }
func (f *fakeParamedics) SetActive(id string, active bool) error { return nil }
func (f *fakeParamedics) Delete(id string) error                 { return nil }

type fakeQueue struct {
	notices []string
	phones  []string
	err     error
}

func (q *fakeQueue) EnqueueDispatchNotice(recipientPhone, message string) error {
	if q.err != nil {
		return q.err
	}
	q.phones = append(q.phones, recipientPhone)
	q.notices = append(q.notices, message)
	return nil
}

func pendingBooking() *models.Booking {
	return &models.Booking{
		ID:              "bk-1",
		PatientName:     "Asha Verma",
		Phone:           "+91 98765 43210",
		ServiceCategory: "home-visit",
		ManualAddress:   "12 Park Street, Kalkaji, New Delhi",
		Status:          models.StatusPending,
		Amount:          499,
		CreatedAt:       time.Now().UTC(),
	}
}

func newTestService(booking *models.Booking, paramedic *models.Paramedic, queue *fakeQueue) (*DefaultDispatchService, *fakeBookings) {
	bookings := &fakeBookings{rows: map[string]*models.Booking{}}
	if booking != nil {
		bookings.rows[booking.ID] = booking
	}
	paramedics := &fakeParamedics{rows: map[string]*models.Paramedic{}}
	if paramedic != nil {
		paramedics.rows[paramedic.ID] = paramedic
	}
	return NewDefaultDispatchService(bookings, paramedics, queue), bookings
}

func onDutyParamedic() *models.Paramedic {
	return &models.Paramedic{ID: "pm-1", Name: "Ravi", Phone: "+91 91111 22222", IsActive: true}
}

func TestDispatchAssignsParamedicAndQueuesNotice(t *testing.T) {
	queue := &fakeQueue{}
	svc, bookings := newTestService(pendingBooking(), onDutyParamedic(), queue)

	result, err := svc.Dispatch("bk-1", "pm-1")
	require.NoError(t, err)
	assert.True(t, result.Notified)
	assert.Empty(t, result.Warning)
	assert.Equal(t, models.StatusDispatched, result.Booking.Status)
	assert.Equal(t, "pm-1", result.Booking.AssignedParamedicID)
	require.NotNil(t, result.Booking.DispatchedAt)

	stored := bookings.rows["bk-1"]
	assert.Equal(t, models.StatusDispatched, stored.Status)
	assert.Equal(t, "pm-1", stored.AssignedParamedicID)
	require.NotNil(t, stored.DispatchedAt)

	require.Len(t, queue.notices, 1)
	assert.Equal(t, "+91 91111 22222", queue.phones[0])
	assert.Contains(t, queue.notices[0], "Asha Verma")
}

func TestDispatchRejectsNonPendingBooking(t *testing.T) {
	booking := pendingBooking()
	booking.Status = models.StatusDispatched
	svc, _ := newTestService(booking, onDutyParamedic(), &fakeQueue{})

	_, err := svc.Dispatch("bk-1", "pm-1")
	var dispErr *DispatchError
	require.ErrorAs(t, err, &dispErr)
	assert.Equal(t, CodeInvalid, dispErr.Code)
}

func TestDispatchRejectsOffDutyParamedic(t *testing.T) {
	paramedic := onDutyParamedic()
	paramedic.IsActive = false
	queue := &fakeQueue{}
	svc, bookings := newTestService(pendingBooking(), paramedic, queue)

	_, err := svc.Dispatch("bk-1", "pm-1")
	var dispErr *DispatchError
	require.ErrorAs(t, err, &dispErr)
	assert.Equal(t, CodeInvalid, dispErr.Code)

	// Nothing written, nothing queued.
	assert.Equal(t, models.StatusPending, bookings.rows["bk-1"].Status)
	assert.Empty(t, queue.notices)
}

func TestDispatchMissingRows(t *testing.T) {
	svc, _ := newTestService(nil, onDutyParamedic(), &fakeQueue{})
	_, err := svc.Dispatch("bk-1", "pm-1")
	var dispErr *DispatchError
	require.ErrorAs(t, err, &dispErr)
	assert.Equal(t, CodeNotFound, dispErr.Code)

	svc, _ = newTestService(pendingBooking(), nil, &fakeQueue{})
	_, err = svc.Dispatch("bk-1", "pm-1")
	require.ErrorAs(t, err, &dispErr)
	assert.Equal(t, CodeNotFound, dispErr.Code)
}

func TestDispatchConcurrentLoserGetsConflict(t *testing.T) {
	queue := &fakeQueue{}
	svc, bookings := newTestService(pendingBooking(), onDutyParamedic(), queue)

	// A second operator wins the race between the read and the write.
	bookings.rows["bk-1"].Status = models.StatusPending
	_, err := svc.Dispatch("bk-1", "pm-1")
	require.NoError(t, err)

	_, err = svc.Dispatch("bk-1", "pm-1")
	var dispErr *DispatchError
	require.ErrorAs(t, err, &dispErr)
	assert.Equal(t, CodeInvalid, dispErr.Code)
	assert.True(t, (&DispatchError{Code: CodeConflict}).Retryable())

	require.Len(t, queue.notices, 1)
}

func TestDispatchEnqueueFailureWarnsWithoutRollback(t *testing.T) {
	queue := &fakeQueue{err: errors.New("redis down")}
	svc, bookings := newTestService(pendingBooking(), onDutyParamedic(), queue)

	result, err := svc.Dispatch("bk-1", "pm-1")
	require.NoError(t, err)
	assert.False(t, result.Notified)
	assert.NotEmpty(t, result.Warning)

	// The status write stands even though the notice failed.
	assert.Equal(t, models.StatusDispatched, bookings.rows["bk-1"].Status)
}

func TestCompleteVisitRequiresAttestation(t *testing.T) {
	booking := pendingBooking()
	booking.Status = models.StatusDispatched
	svc, bookings := newTestService(booking, nil, &fakeQueue{})

	err := svc.CompleteVisit("bk-1", false)
	var dispErr *DispatchError
	require.ErrorAs(t, err, &dispErr)
	assert.Equal(t, CodeInvalid, dispErr.Code)
	assert.Equal(t, models.StatusDispatched, bookings.rows["bk-1"].Status)

	require.NoError(t, svc.CompleteVisit("bk-1", true))
	assert.Equal(t, models.StatusCompleted, bookings.rows["bk-1"].Status)
}

func TestCompleteVisitRejectsPendingBooking(t *testing.T) {
	svc, _ := newTestService(pendingBooking(), nil, &fakeQueue{})
	err := svc.CompleteVisit("bk-1", true)
	var dispErr *DispatchError
	require.ErrorAs(t, err, &dispErr)
	assert.Equal(t, CodeInvalid, dispErr.Code)
}

func TestCancelClosesNonTerminalOnly(t *testing.T) {
	svc, bookings := newTestService(pendingBooking(), nil, &fakeQueue{})
	require.NoError(t, svc.Cancel("bk-1"))
	assert.Equal(t, models.StatusCancelled, bookings.rows["bk-1"].Status)

	err := svc.Cancel("bk-1")
	var dispErr *DispatchError
	require.ErrorAs(t, err, &dispErr)
	assert.Equal(t, CodeInvalid, dispErr.Code)
}
