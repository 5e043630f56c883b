// README: Usage store backed by Postgres (trip_generations table).
package usage

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store handles trip_generations persistence.
type Store struct {
	db *pgxpool.Pool
}

// NewStore returns a Store backed by the given connection pool.
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Insert(ctx context.Context, e Event) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO trip_generations
			(destination, days, theme, pace, provider, latency_ms, success, error_message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, e.Destination, e.Days, e.Theme, e.Pace, e.Provider, e.LatencyMs, e.Success, e.ErrorMessage, e.CreatedAt)
	return err
}

// CountByOutcome returns the number of successful and failed generations.
func (s *Store) CountByOutcome(ctx context.Context) (Summary, error) {
	var sum Summary
	err := s.db.QueryRow(ctx, `
		SELECT
			COUNT(*) FILTER (WHERE success),
			COUNT(*) FILTER (WHERE NOT success)
		FROM trip_generations
	`).Scan(&sum.Succeeded, &sum.Failed)
	return sum, err
}
