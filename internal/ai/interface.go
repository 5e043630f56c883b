package ai

import (
	"context"
)

// NoItineraryFound is returned as the itinerary when the provider answers without any choice.
const NoItineraryFound = "No itinerary found."

// ItineraryProvider defines the contract for completion backends.
// This interface allows swapping OpenRouter, Gemini, or a fallback chain of both.
type ItineraryProvider interface {
	// Name identifies the backend in logs and usage records.
	Name() string

	// GenerateItinerary sends prompt as a single user message and returns the sanitized reply.
	// An empty choice list is not an error; it yields NoItineraryFound.
	GenerateItinerary(ctx context.Context, prompt string) (string, error)
}
