package geolocation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractLocality(t *testing.T) {
	assert.Equal(t, "", ExtractLocality(nil))
	assert.Equal(t, "", ExtractLocality(&AddressComponents{}))

	assert.Equal(t, "Kalkaji, New Delhi", ExtractLocality(&AddressComponents{
		Locality: "Kalkaji",
		City:     "New Delhi",
	}))

	// City alone when no neighbourhood resolved.
	assert.Equal(t, "New Delhi", ExtractLocality(&AddressComponents{City: "New Delhi"}))

	// A city that repeats the locality is dropped.
	assert.Equal(t, "Gurugram", ExtractLocality(&AddressComponents{
		Locality: "Gurugram",
		City:     "Gurugram",
	}))
}

func TestMergeLocalityAppendsNewInformation(t *testing.T) {
	got := MergeLocality("12 Park Street", "Kalkaji, New Delhi")
	assert.Equal(t, "12 Park Street, Kalkaji, New Delhi", got)
}

func TestMergeLocalitySkipsDuplicatedFragments(t *testing.T) {
	// Any fragment already present keeps the address untouched.
	assert.Equal(t, "12 Park Street, Kalkaji",
		MergeLocality("12 Park Street, Kalkaji", "Kalkaji, New Delhi"))
	assert.Equal(t, "12 Park Street, new delhi",
		MergeLocality("12 Park Street, new delhi", "Kalkaji, New Delhi"))
}

func TestMergeLocalityIsIdempotent(t *testing.T) {
	once := MergeLocality("12 Park Street", "Kalkaji, New Delhi")
	assert.Equal(t, once, MergeLocality(once, "Kalkaji, New Delhi"))
}

func TestMergeLocalityEdges(t *testing.T) {
	assert.Equal(t, "12 Park Street", MergeLocality("  12 Park Street  ", ""))
	assert.Equal(t, "Kalkaji, New Delhi", MergeLocality("", "Kalkaji, New Delhi"))
	assert.Equal(t, "", MergeLocality("", ""))
}
