// README: Entry point; loads config, wires the completion provider and usage backends, starts the HTTP server.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"travelplanner/internal/ai"
	"travelplanner/internal/config"
	httptransport "travelplanner/internal/http"
	"travelplanner/internal/infra"
	"travelplanner/internal/logging"
	"travelplanner/internal/maps"
	"travelplanner/internal/modules/usage"
	"travelplanner/internal/trip"
)

func main() {
	if err := config.LoadDotEnv(".env.local", ".env"); err != nil {
		logrus.Fatal(err)
	}
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}
	logging.Init(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider, closeProvider, err := newProvider(ctx, cfg.AI)
	if err != nil {
		logrus.Fatalf("ai provider init: %v", err)
	}
	defer closeProvider()

	var resolver trip.DestinationResolver
	if cfg.Maps.APIKey != "" {
		geocoder, err := maps.NewGeocodeService(cfg.Maps.APIKey)
		if err != nil {
			logrus.Fatalf("maps init: %v", err)
		}
		resolver = geocoder
	}

	var store usage.EventStore
	if cfg.DB.DSN != "" {
		dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			logrus.Fatal(err)
		}
		defer dbPool.Close()
		store = usage.NewStore(dbPool)
	}

	var counter usage.DestinationCounter
	if cfg.Redis.Addr != "" {
		redisClient, err := infra.NewRedis(ctx, cfg.Redis.Addr)
		if err != nil {
			logrus.Fatal(err)
		}
		defer redisClient.Close()
		counter = usage.NewCounter(redisClient)
	}

	usageSvc := usage.NewService(store, counter)
	planner := trip.NewPlanner(provider, resolver, usageSvc)

	handler := httptransport.NewServer(httptransport.ServerDeps{
		Planner: planner,
		Usage:   usageSvc,
		// Covers a fallback chain of two provider calls.
		PlanTimeout: 2*cfg.AI.Timeout + 10*time.Second,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler.Routes()}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logrus.WithError(err).Error("http shutdown")
		}
	}()

	logrus.WithFields(logrus.Fields{
		"addr":     cfg.HTTP.Addr,
		"provider": provider.Name(),
		"model":    cfg.AI.Model,
		"geocode":  resolver != nil,
		"postgres": store != nil,
		"redis":    counter != nil,
	}).Info("travel api listening")

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logrus.Fatal(err)
	}
}

// newProvider builds the configured completion provider. When both an OpenRouter and a
// Gemini key are present, the non-selected one becomes the fallback.
func newProvider(ctx context.Context, cfg config.AIConfig) (ai.ItineraryProvider, func(), error) {
	noop := func() {}

	var openRouter ai.ItineraryProvider
	if cfg.OpenRouterKey != "" {
		openRouter = ai.NewOpenRouterProvider(ai.OpenRouterConfig{
			APIKey:  cfg.OpenRouterKey,
			BaseURL: cfg.OpenRouterURL,
			Model:   cfg.Model,
			Referer: cfg.Referer,
			Title:   cfg.Title,
			Timeout: cfg.Timeout,
		})
	}

	var gemini *ai.GeminiProvider
	closer := noop
	if cfg.GeminiKey != "" {
		g, err := ai.NewGeminiProvider(ctx, cfg.GeminiKey, cfg.GeminiModel)
		if err != nil {
			return nil, noop, err
		}
		gemini = g
		closer = g.Close
	}

	switch {
	case cfg.Provider == config.ProviderGemini && openRouter != nil:
		return &ai.Fallback{Primary: gemini, Secondary: openRouter}, closer, nil
	case cfg.Provider == config.ProviderGemini:
		return gemini, closer, nil
	case gemini != nil:
		return &ai.Fallback{Primary: openRouter, Secondary: gemini}, closer, nil
	default:
		return openRouter, closer, nil
	}
}
