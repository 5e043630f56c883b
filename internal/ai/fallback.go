package ai

import (
	"context"
	"errors"
)

// Fallback tries Primary first; if it returns an error, tries Secondary.
type Fallback struct {
	Primary   ItineraryProvider
	Secondary ItineraryProvider
}

func (f *Fallback) Name() string {
	if f.Secondary == nil {
		return f.Primary.Name()
	}
	return f.Primary.Name() + "+" + f.Secondary.Name()
}

// GenerateItinerary calls Primary; on any error other than cancellation it calls Secondary.
func (f *Fallback) GenerateItinerary(ctx context.Context, prompt string) (string, error) {
	s, err := f.Primary.GenerateItinerary(ctx, prompt)
	if err == nil || f.Secondary == nil || errors.Is(err, context.Canceled) {
		return s, err
	}
	s, err2 := f.Secondary.GenerateItinerary(ctx, prompt)
	if err2 != nil {
		return "", errors.Join(err, err2)
	}
	return s, nil
}
