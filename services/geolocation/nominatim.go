package geolocation

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"sanocare/config"
)

// NominatimGeocoder resolves coordinates through the OpenStreetMap
// Nominatim reverse endpoint.
type NominatimGeocoder struct {
	BaseURL string
	Client  *http.Client
}

// NewNominatimGeocoder builds a geocoder against the configured base URL.
func NewNominatimGeocoder() *NominatimGeocoder {
	base := config.AppConfig.NominatimBaseURL
	if base == "" {
		base = "https://nominatim.openstreetmap.org"
	}
	return &NominatimGeocoder{
		BaseURL: base,
		Client:  &http.Client{Timeout: 8 * time.Second},
	}
}

type nominatimResponse struct {
	DisplayName string `json:"display_name"`
	Address     struct {
		HouseNumber   string `json:"house_number"`
		Road          string `json:"road"`
		Neighbourhood string `json:"neighbourhood"`
		Suburb        string `json:"suburb"`
		Village       string `json:"village"`
		Town          string `json:"town"`
		City          string `json:"city"`
		Municipality  string `json:"municipality"`
		State         string `json:"state"`
		Postcode      string `json:"postcode"`
		Country       string `json:"country"`
	} `json:"address"`
}

// ReverseGeocode looks up structured address components for a coordinate.
func (g *NominatimGeocoder) ReverseGeocode(ctx context.Context, lat, lng float64) (*AddressComponents, error) {
	endpoint := fmt.Sprintf("%s/reverse?%s", g.BaseURL, url.Values{
		"format":         {"json"},
		"lat":            {fmt.Sprintf("%f", lat)},
		"lon":            {fmt.Sprintf("%f", lng)},
		"zoom":           {"18"},
		"addressdetails": {"1"},
	}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build reverse geocode request: %w", err)
	}
	req.Header.Set("Accept-Language", "en")
	req.Header.Set("User-Agent", "Sanocare-Server/1.0")

	resp, err := g.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("reverse geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoding service returned status %d", resp.StatusCode)
	}

	var payload nominatimResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode reverse geocode response: %w", err)
	}

	addr := payload.Address
	locality := firstNonEmpty(addr.Neighbourhood, addr.Suburb)
	city := firstNonEmpty(addr.City, addr.Town, addr.Village, addr.Municipality)

	return &AddressComponents{
		HouseNumber: addr.HouseNumber,
		Road:        addr.Road,
		Locality:    locality,
		City:        city,
		State:       addr.State,
		PostalCode:  addr.Postcode,
		Country:     addr.Country,
		Formatted:   payload.DisplayName,
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
