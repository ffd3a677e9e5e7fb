package models

import "time"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	StatusPending    BookingStatus = "PENDING"
	StatusDispatched BookingStatus = "DISPATCHED"
	StatusInProgress BookingStatus = "IN_PROGRESS" // reserved for a future "responder arrived" signal
	StatusCompleted  BookingStatus = "COMPLETED"
	StatusCancelled  BookingStatus = "CANCELLED"
)

// IsValidStatus reports whether s is a member of the status enumeration.
func IsValidStatus(s BookingStatus) bool {
	switch s {
	case StatusPending, StatusDispatched, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition may leave s.
func (s BookingStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// forwardTransitions enumerates every allowed move. The lifecycle is
// monotonic forward; CANCELLED is reachable from any non-terminal state.
var forwardTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:    {StatusDispatched, StatusCancelled},
	StatusDispatched: {StatusInProgress, StatusCompleted, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusCancelled},
}

// CanTransition reports whether a booking may move from one status to
// another through any exposed operation.
func CanTransition(from, to BookingStatus) bool {
	for _, next := range forwardTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Booking is a patient's request for a home-health service.
type Booking struct {
	ID                  string        `bson:"id" json:"id"`
	PatientName         string        `bson:"patientName" json:"patientName"`
	Phone               string        `bson:"phone" json:"phone"` // canonical "+91 XXXXX XXXXX"
	ServiceCategory     string        `bson:"serviceCategory" json:"serviceCategory"`
	ManualAddress       string        `bson:"manualAddress" json:"manualAddress"`
	GPSLocation         *GPSLocation  `bson:"gpsLocation,omitempty" json:"gpsLocation,omitempty"` // supplementary, never replaces the address
	SpecificAilment     string        `bson:"specificAilment,omitempty" json:"specificAilment,omitempty"`
	Status              BookingStatus `bson:"status" json:"status"`
	Amount              int           `bson:"amount" json:"amount"` // quoted estimate in INR, fixed at creation
	AssignedParamedicID string        `bson:"assignedParamedicId,omitempty" json:"assignedParamedicId,omitempty"`
	DispatchedAt        *time.Time    `bson:"dispatchedAt,omitempty" json:"dispatchedAt,omitempty"`
	CreatedAt           time.Time     `bson:"createdAt" json:"createdAt"`
}

// BookingInput carries the client-settable fields of a new booking.
// Amount, status and timestamps are assigned server-side.
type BookingInput struct {
	PatientName     string       `json:"patientName"`
	Phone           string       `json:"phone"`
	ServiceCategory string       `json:"serviceCategory"`
	ManualAddress   string       `json:"manualAddress"`
	GPSLocation     *GPSLocation `json:"gpsLocation,omitempty"`
	SpecificAilment string       `json:"specificAilment,omitempty"`
}
