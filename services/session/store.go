package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"sanocare/models"
)

const (
	draftPrefix     = "bookingDraft:"
	confirmedPrefix = "confirmedBooking:"

	// A draft kept across visits; long enough to survive a night's sleep,
	// short enough not to hoard abandoned forms.
	draftTTL = 7 * 24 * time.Hour
)

// ErrMissing is returned by a KV when a key is absent.
var ErrMissing = errors.New("key not found")

// KV is the persistence boundary for client session state.
type KV interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Get(ctx context.Context, key string) ([]byte, error)
	Del(ctx context.Context, key string) error
}

// Store holds per-session booking state: the in-progress draft and the
// confirmed-booking record. Serialization is the one place the persistence
// rules live: GPS coordinates and transient UI flags are stripped on save,
// and a confirmation older than its expiry window is discarded on load.
type Store struct {
	kv  KV
	now func() time.Time
}

// NewStore builds a session store over the given KV.
func NewStore(kv KV) *Store {
	return &Store{kv: kv, now: time.Now}
}

// SaveDraft persists the durable part of a draft. GPS must be considered
// stale across sessions and is deliberately excluded, as are the
// locating/submitting flags and any error string.
func (s *Store) SaveDraft(ctx context.Context, sessionID string, draft models.BookingDraft) error {
	draft.GPSLocation = nil
	draft.IsLocating = false
	draft.IsSubmitting = false
	draft.LocationError = ""

	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal booking draft: %w", err)
	}
	if err := s.kv.Set(ctx, draftPrefix+sessionID, data, draftTTL); err != nil {
		return fmt.Errorf("failed to save booking draft: %w", err)
	}
	return nil
}

// LoadDraft rehydrates a session's draft; a missing key yields a zero draft.
func (s *Store) LoadDraft(ctx context.Context, sessionID string) (models.BookingDraft, error) {
	var draft models.BookingDraft
	data, err := s.kv.Get(ctx, draftPrefix+sessionID)
	if errors.Is(err, ErrMissing) {
		return draft, nil
	}
	if err != nil {
		return draft, fmt.Errorf("failed to load booking draft: %w", err)
	}
	if err := json.Unmarshal(data, &draft); err != nil {
		return models.BookingDraft{}, fmt.Errorf("failed to unmarshal booking draft: %w", err)
	}
	// Transient state is recomputed fresh each session regardless of what
	// was stored.
	draft.GPSLocation = nil
	draft.IsLocating = false
	draft.IsSubmitting = false
	draft.LocationError = ""
	return draft, nil
}

// ClearDraft removes a session's draft.
func (s *Store) ClearDraft(ctx context.Context, sessionID string) error {
	return s.kv.Del(ctx, draftPrefix+sessionID)
}

// SaveConfirmation stores the post-submit snapshot with its expiry window.
func (s *Store) SaveConfirmation(ctx context.Context, sessionID string, record models.ConfirmedBooking) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal confirmed booking: %w", err)
	}
	if err := s.kv.Set(ctx, confirmedPrefix+sessionID, data, models.ConfirmationTTL); err != nil {
		return fmt.Errorf("failed to save confirmed booking: %w", err)
	}
	return nil
}

// LoadConfirmation returns the session's confirmed booking, or nil when
// absent or older than the expiry window. Stale records are deleted so the
// client shows the booking form again, not a dead success screen.
func (s *Store) LoadConfirmation(ctx context.Context, sessionID string) (*models.ConfirmedBooking, error) {
	data, err := s.kv.Get(ctx, confirmedPrefix+sessionID)
	if errors.Is(err, ErrMissing) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load confirmed booking: %w", err)
	}

	var record models.ConfirmedBooking
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal confirmed booking: %w", err)
	}
	if record.Expired(s.now()) {
		_ = s.kv.Del(ctx, confirmedPrefix+sessionID)
		return nil, nil
	}
	return &record, nil
}

// ClearConfirmation removes a session's confirmed booking.
func (s *Store) ClearConfirmation(ctx context.Context, sessionID string) error {
	return s.kv.Del(ctx, confirmedPrefix+sessionID)
}
