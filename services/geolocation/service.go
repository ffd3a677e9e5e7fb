package geolocation

import (
	"context"
	"time"

	"sanocare/models"
	"sanocare/utils"

	"go.uber.org/zap"
)

// GeolocationService pairs position acquisition with address enrichment.
// GPS is supplementary throughout: a sensing or lookup failure degrades
// gracefully and never blocks a booking.
type GeolocationService struct {
	Provider PositionProvider
	Geocoder Geocoder
}

// LocalityResult is the outcome of a detect-and-enrich pass.
type LocalityResult struct {
	Position       *models.GPSLocation `json:"position,omitempty"`
	UpdatedAddress string              `json:"updatedAddress"`
	Error          string              `json:"error,omitempty"` // categorized, user-presentable
}

// DetectWithLocality acquires a position and merges the derived locality
// into the existing free-text address. On acquisition failure the address
// is returned unchanged with the categorized message; on lookup failure
// only the position is returned.
func (s *GeolocationService) DetectWithLocality(existingAddress string, opts AcquireOptions) LocalityResult {
	position, err := Acquire(s.Provider, opts)
	if err != nil {
		geoErr, ok := err.(*GeoError)
		msg := "Unable to get location. Please try again."
		if ok {
			msg = geoErr.Message
		}
		return LocalityResult{UpdatedAddress: existingAddress, Error: msg}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 8*time.Second)
	defer cancel()

	components, err := s.Geocoder.ReverseGeocode(ctx, position.Lat, position.Lng)
	if err != nil {
		// Lookup failure must not fail the operation.
		utils.GetLogger().Warn("reverse geocode failed", zap.Error(err))
		return LocalityResult{Position: position, UpdatedAddress: existingAddress}
	}

	locality := ExtractLocality(components)
	return LocalityResult{
		Position:       position,
		UpdatedAddress: MergeLocality(existingAddress, locality),
	}
}
