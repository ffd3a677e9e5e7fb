package session

import (
	"context"
	"testing"
	"time"

	"sanocare/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryKV is an in-memory KV; TTLs are recorded but not enforced, the
// store's own expiry logic is what is under test.
type memoryKV struct {
	data map[string][]byte
	ttls map[string]time.Duration
}

func newMemoryKV() *memoryKV {
	return &memoryKV{data: make(map[string][]byte), ttls: make(map[string]time.Duration)}
}

func (m *memoryKV) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.data[key] = value
	m.ttls[key] = ttl
	return nil
}

func (m *memoryKV) Get(ctx context.Context, key string) ([]byte, error) {
	data, ok := m.data[key]
	if !ok {
		return nil, ErrMissing
	}
	return data, nil
}

func (m *memoryKV) Del(ctx context.Context, key string) error {
	delete(m.data, key)
	delete(m.ttls, key)
	return nil
}

func draft() models.BookingDraft {
	return models.BookingDraft{
		Name:            "Asha Verma",
		Phone:           "+91 98765 43210",
		Location:        "12 Park Street, Kalkaji, New Delhi",
		ServiceCategory: "home-visit",
	}
}

func TestDraftRoundTrip(t *testing.T) {
	store := NewStore(newMemoryKV())
	ctx := context.Background()

	require.NoError(t, store.SaveDraft(ctx, "s1", draft()))

	loaded, err := store.LoadDraft(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, draft(), loaded)
}

func TestDraftNeverPersistsGPSOrTransientState(t *testing.T) {
	kv := newMemoryKV()
	store := NewStore(kv)
	ctx := context.Background()

	d := draft()
	d.GPSLocation = &models.GPSLocation{Lat: 28.5, Lng: 77.2, Accuracy: 4}
	d.IsLocating = true
	d.IsSubmitting = true
	d.LocationError = "timed out"
	require.NoError(t, store.SaveDraft(ctx, "s1", d))

	raw := string(kv.data[draftPrefix+"s1"])
	assert.NotContains(t, raw, "gpsLocation")
	assert.NotContains(t, raw, "isLocating")
	assert.NotContains(t, raw, "timed out")

	loaded, err := store.LoadDraft(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, loaded.GPSLocation)
	assert.False(t, loaded.IsLocating)
	assert.False(t, loaded.IsSubmitting)
	assert.Empty(t, loaded.LocationError)
}

func TestLoadDraftMissingKeyYieldsZeroDraft(t *testing.T) {
	store := NewStore(newMemoryKV())
	loaded, err := store.LoadDraft(context.Background(), "absent")
	require.NoError(t, err)
	assert.Equal(t, models.BookingDraft{}, loaded)
}

func TestClearDraft(t *testing.T) {
	kv := newMemoryKV()
	store := NewStore(kv)
	ctx := context.Background()

	require.NoError(t, store.SaveDraft(ctx, "s1", draft()))
	require.NoError(t, store.ClearDraft(ctx, "s1"))
	assert.Empty(t, kv.data)
}

func TestConfirmationRoundTripWithinWindow(t *testing.T) {
	store := NewStore(newMemoryKV())
	ctx := context.Background()

	record := models.ConfirmedBooking{
		ID:          "bk-1",
		Name:        "Asha Verma",
		Amount:      499,
		ConfirmedAt: time.Now(),
	}
	require.NoError(t, store.SaveConfirmation(ctx, "s1", record))

	loaded, err := store.LoadConfirmation(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "bk-1", loaded.ID)
}

func TestConfirmationExpiresAfterWindow(t *testing.T) {
	kv := newMemoryKV()
	store := NewStore(kv)
	ctx := context.Background()

	confirmedAt := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	record := models.ConfirmedBooking{ID: "bk-1", ConfirmedAt: confirmedAt}
	require.NoError(t, store.SaveConfirmation(ctx, "s1", record))

	// 29 minutes later the receipt is still live.
	store.now = func() time.Time { return confirmedAt.Add(29 * time.Minute) }
	loaded, err := store.LoadConfirmation(ctx, "s1")
	require.NoError(t, err)
	assert.NotNil(t, loaded)

	// 31 minutes later it is discarded and the key deleted.
	store.now = func() time.Time { return confirmedAt.Add(31 * time.Minute) }
	loaded, err = store.LoadConfirmation(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, loaded)
	assert.Empty(t, kv.data)
}

func TestLoadConfirmationMissingKeyIsNil(t *testing.T) {
	store := NewStore(newMemoryKV())
	loaded, err := store.LoadConfirmation(context.Background(), "absent")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestConfirmationSavedWithItsTTL(t *testing.T) {
	kv := newMemoryKV()
	store := NewStore(kv)
	require.NoError(t, store.SaveConfirmation(context.Background(), "s1", models.ConfirmedBooking{ID: "bk-1"}))
	assert.Equal(t, models.ConfirmationTTL, kv.ttls[confirmedPrefix+"s1"])
}
