// README: Usage service; fans generation events out to the configured backends.
package usage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// EventStore persists generation events.
type EventStore interface {
	Insert(ctx context.Context, e Event) error
	CountByOutcome(ctx context.Context) (Summary, error)
}

// DestinationCounter tracks how often each destination is requested.
type DestinationCounter interface {
	Incr(ctx context.Context, destination string) error
	Top(ctx context.Context, n int) ([]DestinationCount, error)
}

// Service records usage. Either backend may be nil.
type Service struct {
	store   EventStore
	counter DestinationCounter
	now     func() time.Time
}

func NewService(store EventStore, counter DestinationCounter) *Service {
	return &Service{store: store, counter: counter, now: time.Now}
}

// Record writes e to every configured backend and joins their errors.
func (s *Service) Record(ctx context.Context, e Event) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = s.now()
	}
	var errs []error
	if s.store != nil {
		if err := s.store.Insert(ctx, e); err != nil {
			errs = append(errs, fmt.Errorf("usage: insert event: %w", err))
		}
	}
	if s.counter != nil && strings.TrimSpace(e.Destination) != "" {
		if err := s.counter.Incr(ctx, e.Destination); err != nil {
			errs = append(errs, fmt.Errorf("usage: incr destination: %w", err))
		}
	}
	return errors.Join(errs...)
}

// TopDestinations returns up to limit destinations. limit is clamped to [1, MaxTopLimit];
// non-positive values use DefaultTopLimit.
func (s *Service) TopDestinations(ctx context.Context, limit int) ([]DestinationCount, error) {
	if s.counter == nil {
		return nil, ErrNotConfigured
	}
	if limit <= 0 {
		limit = DefaultTopLimit
	}
	if limit > MaxTopLimit {
		limit = MaxTopLimit
	}
	return s.counter.Top(ctx, limit)
}

func (s *Service) Summary(ctx context.Context) (Summary, error) {
	if s.store == nil {
		return Summary{}, ErrNotConfigured
	}
	return s.store.CountByOutcome(ctx)
}
