package integration

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

// TestPlanTripEndpoint calls a running API (TRAVEL_API_BASE_URL) backed by a real provider.
func TestPlanTripEndpoint(t *testing.T) {
	loadDotEnv(t)

	baseURL := strings.TrimRight(os.Getenv("TRAVEL_API_BASE_URL"), "/")
	if baseURL == "" {
		t.Skip("TRAVEL_API_BASE_URL not set; skipping integration test")
	}
	client := resty.New().SetTimeout(2 * time.Minute)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	waitForAPIReady(t, ctx, client, baseURL)

	destination := "Porto"
	resp, err := client.R().
		SetContext(ctx).
		SetBody(map[string]any{"destination": destination, "days": 2, "theme": "food", "pace": "relaxed"}).
		Post(baseURL + "/api/plan-trip")
	if err != nil {
		t.Fatalf("call /api/plan-trip: %v", err)
	}
	if resp.StatusCode() != 200 {
		t.Fatalf("expected 200, got %d, body=%s", resp.StatusCode(), resp.String())
	}
	body := resp.String()
	if strings.HasPrefix(body, "Error: ") {
		t.Fatalf("upstream failure: %s", body)
	}
	if strings.Contains(body, "```") {
		t.Fatalf("itinerary still contains code fences: %s", body)
	}
	if !strings.Contains(body, "Day 1") {
		t.Errorf("expected a Day 1 section, got %s", body)
	}
	t.Logf("[TEST LOG] itinerary: %s", body)

	dsn := strings.TrimSpace(os.Getenv("TRAVEL_TEST_DSN"))
	if dsn == "" {
		return
	}
	db, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	var n int
	if err := db.QueryRow(ctx,
		"SELECT COUNT(*) FROM trip_generations WHERE destination = $1 AND success AND created_at > now() - interval '5 minutes'",
		destination).Scan(&n); err != nil {
		t.Fatalf("query trip_generations: %v", err)
	}
	if n == 0 {
		t.Errorf("expected a recorded generation for %s", destination)
	}
}

func waitForAPIReady(t *testing.T, ctx context.Context, client *resty.Client, baseURL string) {
	t.Helper()

	deadline := time.Now().Add(20 * time.Second)
	for time.Now().Before(deadline) {
		resp, err := client.R().SetContext(ctx).Get(baseURL + "/health")
		if err == nil && resp.StatusCode() == 200 {
			return
		}
		time.Sleep(500 * time.Millisecond)
	}
	t.Fatalf("api not ready: GET %s/health did not return 200 in time", baseURL)
}

// loadDotEnv loads the nearest .env walking up from the test directory.
func loadDotEnv(t *testing.T) {
	t.Helper()

	dir, err := os.Getwd()
	if err != nil {
		return
	}
	for i := 0; i < 8; i++ {
		candidate := filepath.Join(dir, ".env")
		if _, err := os.Stat(candidate); err == nil {
			_ = godotenv.Load(candidate)
			return
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return
		}
		dir = parent
	}
}
