// README: Usage module models (per-generation metadata, never itinerary text).
package usage

import (
	"errors"
	"time"
)

// ErrNotConfigured is returned when the backend needed for an operation is not wired.
var ErrNotConfigured = errors.New("usage backend not configured")

const (
	DefaultTopLimit = 10
	MaxTopLimit     = 100
)

// Event describes one itinerary generation attempt.
type Event struct {
	Destination  string
	Days         int
	Theme        string
	Pace         string
	Provider     string
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	CreatedAt    time.Time
}

type DestinationCount struct {
	Destination string `json:"destination"`
	Count       int64  `json:"count"`
}

type Summary struct {
	Succeeded int64 `json:"succeeded"`
	Failed    int64 `json:"failed"`
}
