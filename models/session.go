package models

import "time"

// BookingDraft is the in-progress form state for one client session.
// GPS coordinates and the transient flags are never persisted: a reload
// must re-acquire position and recompute UI state from scratch.
type BookingDraft struct {
	Name              string       `json:"name"`
	Phone             string       `json:"phone"`
	Location          string       `json:"location"`
	ServiceCategory   string       `json:"serviceCategory"`
	SpecificAilment   string       `json:"specificAilment,omitempty"`
	IsBookingForOther bool         `json:"isBookingForOther"`
	GPSLocation       *GPSLocation `json:"gpsLocation,omitempty"`

	// Transient UI state, session-scoped only.
	IsLocating    bool   `json:"isLocating,omitempty"`
	IsSubmitting  bool   `json:"isSubmitting,omitempty"`
	LocationError string `json:"locationError,omitempty"`
}

// ConfirmedBooking is the client-side snapshot of a just-created booking.
// It expires ConfirmationTTL after ConfirmedAt.
type ConfirmedBooking struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Phone           string    `json:"phone"`
	Location        string    `json:"location"`
	ServiceCategory string    `json:"serviceCategory"`
	Amount          int       `json:"amount"`
	ConfirmedAt     time.Time `json:"confirmedAt"`
}

// ConfirmationTTL bounds how long a success screen stays valid across reloads.
const ConfirmationTTL = 30 * time.Minute

// Expired reports whether the record is stale as of now.
func (c *ConfirmedBooking) Expired(now time.Time) bool {
	return now.Sub(c.ConfirmedAt) > ConfirmationTTL
}
