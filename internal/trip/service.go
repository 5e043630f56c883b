// README: Trip planner; renders the prompt, calls the completion provider and records usage.
package trip

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"travelplanner/internal/ai"
	"travelplanner/internal/modules/usage"
)

// DestinationResolver turns a free-text destination into a canonical address.
type DestinationResolver interface {
	Resolve(ctx context.Context, destination string) (string, error)
}

// UsageRecorder receives one event per generation attempt.
type UsageRecorder interface {
	Record(ctx context.Context, e usage.Event) error
}

// Planner orchestrates prompt rendering and itinerary generation.
type Planner struct {
	provider ai.ItineraryProvider
	resolver DestinationResolver
	recorder UsageRecorder
	now      func() time.Time
}

// NewPlanner creates a Planner. resolver and recorder may be nil.
func NewPlanner(provider ai.ItineraryProvider, resolver DestinationResolver, recorder UsageRecorder) *Planner {
	return &Planner{
		provider: provider,
		resolver: resolver,
		recorder: recorder,
		now:      time.Now,
	}
}

// PlanTrip generates the itinerary text for req.
func (p *Planner) PlanTrip(ctx context.Context, req Request) (string, error) {
	log := logrus.WithFields(logrus.Fields{
		"destination": req.Destination,
		"days":        req.Days,
		"provider":    p.provider.Name(),
	})

	var resolved string
	if p.resolver != nil && req.Destination != "" {
		addr, err := p.resolver.Resolve(ctx, req.Destination)
		if err != nil {
			log.WithError(err).Warn("destination lookup failed, using raw destination")
		} else {
			resolved = addr
		}
	}

	prompt := BuildPrompt(req, resolved)

	start := p.now()
	itinerary, err := p.provider.GenerateItinerary(ctx, prompt)
	latency := p.now().Sub(start)

	p.record(ctx, req, latency, err)

	if err != nil {
		log.WithError(err).Error("itinerary generation failed")
		return "", err
	}
	log.WithField("latency_ms", latency.Milliseconds()).Info("itinerary generated")
	return itinerary, nil
}

func (p *Planner) record(ctx context.Context, req Request, latency time.Duration, genErr error) {
	if p.recorder == nil {
		return
	}
	e := usage.Event{
		Destination: req.Destination,
		Days:        req.Days,
		Theme:       req.Theme,
		Pace:        req.Pace,
		Provider:    p.provider.Name(),
		LatencyMs:   latency.Milliseconds(),
		Success:     genErr == nil,
		CreatedAt:   p.now(),
	}
	if genErr != nil {
		e.ErrorMessage = genErr.Error()
	}
	// The request context may already be done when generation timed out.
	recCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
	defer cancel()
	if err := p.recorder.Record(recCtx, e); err != nil {
		logrus.WithError(err).Warn("usage record failed")
	}
}
