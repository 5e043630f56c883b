// README: Load runner; fires concurrent plan-trip requests at a running API and prints latency results.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg := loadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	runner := NewRunner(cfg)
	if err := runner.WaitReady(ctx); err != nil {
		logrus.Fatalf("api not ready: %v", err)
	}
	report := runner.Run(ctx)

	fmt.Println("\n== Summary ==")
	fmt.Printf("OK=%d ERROR_BODY=%d FAILED=%d\n", report.OK, report.ErrorBodies, report.Failed)
	fmt.Printf("p50=%s p95=%s max=%s\n", report.Percentile(50), report.Percentile(95), report.Percentile(100))

	if report.Failed > 0 || (cfg.Strict && report.ErrorBodies > 0) {
		os.Exit(1)
	}
}

type Config struct {
	BaseURL     string
	Destination string
	Days        int
	Theme       string
	Pace        string
	Requests    int
	Concurrency int
	Strict      bool
	Timeout     time.Duration
}

func loadConfig() Config {
	var cfg Config
	flag.StringVar(&cfg.BaseURL, "base-url", envOrDefault("TRAVEL_BENCH_BASE_URL", "http://localhost:8080"), "API base URL")
	flag.StringVar(&cfg.Destination, "destination", envOrDefault("TRAVEL_BENCH_DESTINATION", "Lisbon"), "Destination to plan")
	flag.IntVar(&cfg.Days, "days", envOrDefaultInt("TRAVEL_BENCH_DAYS", 3), "Trip length in days")
	flag.StringVar(&cfg.Theme, "theme", os.Getenv("TRAVEL_BENCH_THEME"), "Optional theme")
	flag.StringVar(&cfg.Pace, "pace", os.Getenv("TRAVEL_BENCH_PACE"), "Optional pace")
	flag.IntVar(&cfg.Requests, "requests", envOrDefaultInt("TRAVEL_BENCH_REQUESTS", 20), "Total requests")
	flag.IntVar(&cfg.Concurrency, "concurrency", envOrDefaultInt("TRAVEL_BENCH_CONCURRENCY", 4), "Concurrent workers")
	flag.BoolVar(&cfg.Strict, "strict", envOrDefaultBool("TRAVEL_BENCH_STRICT", false), "Fail on Error: bodies")
	flag.DurationVar(&cfg.Timeout, "timeout", envOrDefaultDuration("TRAVEL_BENCH_TIMEOUT", 5*time.Minute), "Total timeout")
	flag.Parse()
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return cfg
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		v = strings.ToLower(v)
		return v == "1" || v == "true" || v == "yes"
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		var n int
		_, _ = fmt.Sscanf(v, "%d", &n)
		if n > 0 {
			return n
		}
	}
	return def
}

func envOrDefaultDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
