package models

import (
	"strings"
	"time"
)

// DefaultSpecialty is assigned when a paramedic record carries none.
const DefaultSpecialty = "General Care"

// Specialties lists the recognised field-staff specialisations.
var Specialties = []string{
	"General Care",
	"Emergency Response",
	"IV Administration",
	"Wound Care",
	"Elder Care",
	"Pediatric Care",
	"Physiotherapy",
}

// NormalizeSpecialty maps a submitted specialty onto the recognised list.
// An empty value falls back to DefaultSpecialty; anything outside the list
// is rejected.
func NormalizeSpecialty(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultSpecialty, true
	}
	for _, known := range Specialties {
		if s == known {
			return known, true
		}
	}
	return "", false
}

// Paramedic is a field-staff record managed from the operations dashboard.
// An off-duty paramedic is not offered as a dispatch target; past
// assignments are unaffected by the flag.
type Paramedic struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Phone     string    `bson:"phone" json:"phone"`
	Specialty string    `bson:"specialty" json:"specialty"`
	IsActive  bool      `bson:"isActive" json:"isActive"` // on-duty flag
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
