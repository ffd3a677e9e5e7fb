package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSpecialty(t *testing.T) {
	// Empty falls back to the default.
	got, ok := NormalizeSpecialty("")
	assert.True(t, ok)
	assert.Equal(t, DefaultSpecialty, got)

	got, ok = NormalizeSpecialty("   ")
	assert.True(t, ok)
	assert.Equal(t, DefaultSpecialty, got)

	// Every listed specialty is accepted as-is.
	for _, s := range Specialties {
		got, ok = NormalizeSpecialty(s)
		assert.True(t, ok, "%s", s)
		assert.Equal(t, s, got)
	}

	got, ok = NormalizeSpecialty("  Wound Care  ")
	assert.True(t, ok)
	assert.Equal(t, "Wound Care", got)

	// Anything outside the list is rejected, including case variants.
	for _, s := range []string{"Surgery", "wound care", "GENERAL CARE"} {
		_, ok = NormalizeSpecialty(s)
		assert.False(t, ok, "%s", s)
	}
}

func TestSpecialtyListCarriesDefault(t *testing.T) {
	assert.Contains(t, Specialties, DefaultSpecialty)
	assert.Len(t, Specialties, 7)
}
