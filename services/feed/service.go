package feed

import (
	"context"
	"encoding/json"
	"time"

	bookingRepo "sanocare/database/repository/booking"
	"sanocare/utils"

	"go.uber.org/zap"
)

// Service keeps the operations board current: an initial full fetch, then
// change-stream events folded in, re-fetching whenever the stream drops so
// missed events are reconciled.
type Service struct {
	Board  *Board
	Repo   bookingRepo.BookingRepository
	Stream Stream
	Hub    *Hub
}

// NewService wires the realtime feed.
func NewService(repo bookingRepo.BookingRepository, stream Stream, hub *Hub) *Service {
	return &Service{
		Board:  NewBoard(),
		Repo:   repo,
		Stream: stream,
		Hub:    hub,
	}
}

// Refresh replaces the board with a full fetch.
func (s *Service) Refresh() error {
	bookings, err := s.Repo.GetAll()
	if err != nil {
		return err
	}
	s.Board.Reset(bookings)
	return nil
}

// Run consumes the change stream until ctx is cancelled, reconnecting with
// backoff on failure.
func (s *Service) Run(ctx context.Context) {
	logger := utils.GetLogger()

	if err := s.Refresh(); err != nil {
		logger.Error("initial booking fetch failed", zap.Error(err))
	}

	backoff := time.Second
	for {
		events := make(chan Event, 64)
		streamErr := make(chan error, 1)
		streamCtx, cancel := context.WithCancel(ctx)

		go func() {
			streamErr <- s.Stream.Run(streamCtx, events)
		}()

		s.consume(ctx, events, streamErr)
		cancel()

		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}
		if backoff < 30*time.Second {
			backoff *= 2
		}

		// The stream dropped; reconcile anything missed while disconnected.
		if err := s.Refresh(); err != nil {
			logger.Error("booking refresh after stream drop failed", zap.Error(err))
		} else {
			backoff = time.Second
		}
	}
}

func (s *Service) consume(ctx context.Context, events <-chan Event, streamErr <-chan error) {
	logger := utils.GetLogger()
	for {
		select {
		case <-ctx.Done():
			return
		case err := <-streamErr:
			if err != nil && ctx.Err() == nil {
				logger.Warn("booking change stream dropped", zap.Error(err))
			}
			return
		case ev := <-events:
			if !s.Board.Apply(ev) {
				continue
			}
			payload, err := json.Marshal(ev)
			if err != nil {
				logger.Error("failed to marshal feed event", zap.Error(err))
				continue
			}
			s.Hub.Broadcast(payload)
		}
	}
}
