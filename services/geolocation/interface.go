package geolocation

import (
	"context"
	"fmt"
	"time"
)

// Reading is one raw position fix from the sensing capability.
type Reading struct {
	Lat      float64
	Lng      float64
	Accuracy float64 // meters
}

// PositionWatch is one active observation of the device position. The
// capability pushes successive readings, typically improving in accuracy.
type PositionWatch interface {
	// Readings delivers fixes in arrival order. The channel may be closed
	// when the capability ends the stream.
	Readings() <-chan Reading
	// Errors delivers hard sensor failures (permission denied, unavailable,
	// sensor timeout).
	Errors() <-chan error
	// Stop releases the underlying subscription. It must be safe to call
	// more than once.
	Stop()
}

// PositionProvider starts position observations.
type PositionProvider interface {
	Watch() (PositionWatch, error)
}

// AddressComponents is the structured result of a reverse lookup.
type AddressComponents struct {
	HouseNumber string
	Road        string
	Locality    string // neighbourhood or suburb
	City        string // city, town or village
	State       string
	PostalCode  string
	Country     string
	Formatted   string
}

// Geocoder resolves coordinates into structured address components.
type Geocoder interface {
	ReverseGeocode(ctx context.Context, lat, lng float64) (*AddressComponents, error)
}

// AcquireOptions tunes the accuracy-refinement loop.
type AcquireOptions struct {
	TargetAccuracy    float64       // meters; resolve as soon as the best reading is at or under this
	MaxAttempts       int           // resolve with the best seen after this many readings
	PerAttemptTimeout time.Duration // ceiling on waiting for the next reading
	OverallTimeout    time.Duration // fallback: resolve with whatever best exists
}

// PreciseOptions is the main booking-form mode: converge on a fix good
// enough to put a medic at the right gate.
var PreciseOptions = AcquireOptions{
	TargetAccuracy:    5,
	MaxAttempts:       5,
	PerAttemptTimeout: 15 * time.Second,
	OverallTimeout:    10 * time.Second,
}

// CoarseOptions is the one-shot "detect my city" mode.
var CoarseOptions = AcquireOptions{
	TargetAccuracy:    500,
	MaxAttempts:       1,
	PerAttemptTimeout: 10 * time.Second,
	OverallTimeout:    8 * time.Second,
}

// Failure categories for position acquisition.
const (
	CodePermissionDenied = "permission-denied"
	CodeUnavailable      = "unavailable"
	CodeTimeout          = "timeout"
	CodeUnknown          = "unknown"
)

// GeoError is a categorized position-acquisition failure.
type GeoError struct {
	Code    string
	Message string
}

func (e *GeoError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}
