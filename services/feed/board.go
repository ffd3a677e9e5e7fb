package feed

import (
	"strings"
	"sync"

	"sanocare/models"
)

// EventType mirrors the row-store change kinds the board consumes.
type EventType string

const (
	EventInsert EventType = "INSERT"
	EventUpdate EventType = "UPDATE"
)

// Event is one realtime change to the bookings table.
type Event struct {
	Type    EventType      `json:"type"`
	Booking models.Booking `json:"booking"`
}

// ListOptions filters a board snapshot.
type ListOptions struct {
	Status models.BookingStatus // empty means all
	Query  string               // case-insensitive match on name, phone or address
}

// Board is the operations console's local view of the bookings table,
// newest first. Identity is the booking id: an insert prepends, an update
// replaces in place, and an update for an unknown id is ignored until the
// next full refresh reconciles it.
type Board struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]models.Booking
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{byID: make(map[string]models.Booking)}
}

// Reset replaces the board content with a full fetch, newest first.
func (b *Board) Reset(bookings []models.Booking) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.order = b.order[:0]
	b.byID = make(map[string]models.Booking, len(bookings))
	for _, booking := range bookings {
		b.order = append(b.order, booking.ID)
		b.byID[booking.ID] = booking
	}
}

// Apply folds one realtime event into the board and reports whether the
// board changed.
func (b *Board) Apply(ev Event) bool {
	if ev.Booking.ID == "" || !models.IsValidStatus(ev.Booking.Status) {
		return false
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	_, known := b.byID[ev.Booking.ID]
	switch ev.Type {
	case EventInsert:
		if known {
			// Duplicate delivery; never create a second row.
			b.byID[ev.Booking.ID] = ev.Booking
			return true
		}
		b.order = append([]string{ev.Booking.ID}, b.order...)
		b.byID[ev.Booking.ID] = ev.Booking
		return true
	case EventUpdate:
		if !known {
			// Arrived before the initial fetch; the next refresh picks it up.
			return false
		}
		b.byID[ev.Booking.ID] = ev.Booking
		return true
	}
	return false
}

// List returns a filtered snapshot in board order.
func (b *Board) List(opts ListOptions) []models.Booking {
	b.mu.RLock()
	defer b.mu.RUnlock()

	query := strings.ToLower(strings.TrimSpace(opts.Query))
	var out []models.Booking
	for _, id := range b.order {
		booking := b.byID[id]
		if opts.Status != "" && booking.Status != opts.Status {
			continue
		}
		if query != "" && !matchesQuery(&booking, query) {
			continue
		}
		out = append(out, booking)
	}
	return out
}

// PendingCount returns the number of bookings awaiting dispatch.
func (b *Board) PendingCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	count := 0
	for _, booking := range b.byID {
		if booking.Status == models.StatusPending {
			count++
		}
	}
	return count
}

func matchesQuery(b *models.Booking, query string) bool {
	return strings.Contains(strings.ToLower(b.PatientName), query) ||
		strings.Contains(strings.ToLower(b.Phone), query) ||
		strings.Contains(strings.ToLower(b.ManualAddress), query)
}
