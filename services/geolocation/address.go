package geolocation

import "strings"

// ExtractLocality builds a short place-name fragment from structured
// components: neighbourhood-or-suburb, then city-or-town-or-village,
// skipping empties and a city that repeats the first fragment.
func ExtractLocality(addr *AddressComponents) string {
	if addr == nil {
		return ""
	}
	var parts []string
	if addr.Locality != "" {
		parts = append(parts, addr.Locality)
	}
	if addr.City != "" && addr.City != addr.Locality {
		parts = append(parts, addr.City)
	}
	return strings.Join(parts, ", ")
}

// MergeLocality enriches a free-text address with a locality without
// duplicating information the user already typed. If any comma-separated
// fragment of the locality already appears in the address, the address is
// returned unchanged.
func MergeLocality(existingAddress, locality string) string {
	trimmed := strings.TrimSpace(existingAddress)
	if locality == "" {
		return trimmed
	}
	if trimmed == "" {
		return locality
	}

	lowerAddress := strings.ToLower(trimmed)
	for _, fragment := range strings.Split(strings.ToLower(locality), ",") {
		fragment = strings.TrimSpace(fragment)
		if fragment != "" && strings.Contains(lowerAddress, fragment) {
			return trimmed
		}
	}
	return trimmed + ", " + locality
}
