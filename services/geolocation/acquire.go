package geolocation

import (
	"errors"
	"math"
	"time"

	"sanocare/models"
)

// Sentinel errors a PositionProvider may report on its Errors channel.
var (
	ErrPermissionDenied = errors.New("location permission denied")
	ErrUnavailable      = errors.New("position unavailable")
	ErrSensorTimeout    = errors.New("position request timed out")
)

// Acquire converges a noisy position stream onto a single best-effort fix.
// It keeps the most accurate reading seen (ties keep the first) and resolves
// when the target accuracy is reached or the attempt budget is spent. The
// overall timer independently resolves with the best partial fix; with zero
// readings it is a timeout failure. The watch is released on every exit path.
func Acquire(provider PositionProvider, opts AcquireOptions) (*models.GPSLocation, error) {
	watch, err := provider.Watch()
	if err != nil {
		return nil, &GeoError{Code: CodeUnavailable, Message: "Location unavailable. Please try again."}
	}
	defer watch.Stop()

	var best *Reading
	attempts := 0

	overall := time.NewTimer(opts.OverallTimeout)
	defer overall.Stop()
	idle := time.NewTimer(opts.PerAttemptTimeout)
	defer idle.Stop()

	for {
		select {
		case r, ok := <-watch.Readings():
			if !ok {
				if best != nil {
					return toLocation(best), nil
				}
				return nil, &GeoError{Code: CodeUnavailable, Message: "Location unavailable. Please try again."}
			}
			attempts++
			if best == nil || r.Accuracy < best.Accuracy {
				reading := r
				best = &reading
			}
			if best.Accuracy <= opts.TargetAccuracy || attempts >= opts.MaxAttempts {
				return toLocation(best), nil
			}
			if !idle.Stop() {
				<-idle.C
			}
			idle.Reset(opts.PerAttemptTimeout)

		case err := <-watch.Errors():
			return nil, categorizeSensorError(err)

		case <-idle.C:
			if best != nil {
				return toLocation(best), nil
			}
			return nil, &GeoError{Code: CodeTimeout, Message: "Location request timed out. Please try again."}

		case <-overall.C:
			if best != nil {
				return toLocation(best), nil
			}
			return nil, &GeoError{Code: CodeTimeout, Message: "Location request timed out. Please try again."}
		}
	}
}

func toLocation(r *Reading) *models.GPSLocation {
	return &models.GPSLocation{
		Lat:      r.Lat,
		Lng:      r.Lng,
		Accuracy: math.Round(r.Accuracy),
	}
}

func categorizeSensorError(err error) *GeoError {
	switch {
	case errors.Is(err, ErrPermissionDenied):
		return &GeoError{Code: CodePermissionDenied, Message: "Location access denied. Please enable location permissions."}
	case errors.Is(err, ErrUnavailable):
		return &GeoError{Code: CodeUnavailable, Message: "Location unavailable. Please try again."}
	case errors.Is(err, ErrSensorTimeout):
		return &GeoError{Code: CodeTimeout, Message: "Location request timed out. Please try again."}
	default:
		return &GeoError{Code: CodeUnknown, Message: "Unable to get location. Please try again."}
	}
}
