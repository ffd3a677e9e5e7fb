package handlers

import (
	"net/http"

	"sanocare/services/geolocation"
	"sanocare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GeolocationHandler enriches a typed address with the locality derived
// from device coordinates. The browser owns the sensor; the server owns
// the reverse lookup and the merge.
type GeolocationHandler struct {
	Geocoder geolocation.Geocoder
}

func NewGeolocationHandler(geocoder geolocation.Geocoder) *GeolocationHandler {
	return &GeolocationHandler{Geocoder: geocoder}
}

// ResolveLocality reverse-geocodes a coordinate and merges the locality
// into the caller's existing address. Lookup failure degrades to the
// address unchanged; coordinates are supplementary and never block a
// booking.
func (h *GeolocationHandler) ResolveLocality(c *gin.Context) {
	var req struct {
		Lat      float64 `json:"lat" binding:"required"`
		Lng      float64 `json:"lng" binding:"required"`
		Accuracy float64 `json:"accuracy"`
		Address  string  `json:"address"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Coordinates are required", err.Error())
		return
	}

	components, err := h.Geocoder.ReverseGeocode(c.Request.Context(), req.Lat, req.Lng)
	if err != nil {
		utils.GetLogger().Warn("reverse geocode failed", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"updatedAddress": req.Address})
		return
	}

	locality := geolocation.ExtractLocality(components)
	c.JSON(http.StatusOK, gin.H{
		"locality":       locality,
		"updatedAddress": geolocation.MergeLocality(req.Address, locality),
	})
}
