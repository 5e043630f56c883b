package main

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

type Runner struct {
	cfg  Config
	http *resty.Client
}

type Report struct {
	OK          int
	ErrorBodies int
	Failed      int
	Latencies   []time.Duration
}

func NewRunner(cfg Config) *Runner {
	return &Runner{
		cfg:  cfg,
		http: resty.New().SetTimeout(3 * time.Minute),
	}
}

// WaitReady polls /health until it returns 200 or ctx expires.
func (r *Runner) WaitReady(ctx context.Context) error {
	for {
		resp, err := r.http.R().SetContext(ctx).Get(r.cfg.BaseURL + "/health")
		if err == nil && resp.StatusCode() == http.StatusOK {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(500 * time.Millisecond):
		}
	}
}

func (r *Runner) Run(ctx context.Context) Report {
	jobs := make(chan int)
	var (
		mu     sync.Mutex
		report Report
		wg     sync.WaitGroup
	)

	workers := r.cfg.Concurrency
	if workers > r.cfg.Requests {
		workers = r.cfg.Requests
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				lat, body, err := r.planOnce(ctx)
				mu.Lock()
				switch {
				case err != nil:
					report.Failed++
					logrus.WithError(err).WithField("request", i).Warn("request failed")
				case strings.HasPrefix(body, "Error: "):
					report.ErrorBodies++
					report.Latencies = append(report.Latencies, lat)
				default:
					report.OK++
					report.Latencies = append(report.Latencies, lat)
				}
				mu.Unlock()
			}
		}()
	}

dispatch:
	for i := 0; i < r.cfg.Requests; i++ {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break dispatch
		}
	}
	close(jobs)
	wg.Wait()
	return report
}

func (r *Runner) planOnce(ctx context.Context) (time.Duration, string, error) {
	start := time.Now()
	resp, err := r.http.R().
		SetContext(ctx).
		SetBody(map[string]any{
			"destination": r.cfg.Destination,
			"days":        r.cfg.Days,
			"theme":       r.cfg.Theme,
			"pace":        r.cfg.Pace,
		}).
		Post(r.cfg.BaseURL + "/api/plan-trip")
	if err != nil {
		return 0, "", err
	}
	if resp.StatusCode() != http.StatusOK {
		return 0, "", fmt.Errorf("unexpected status %d", resp.StatusCode())
	}
	return time.Since(start), resp.String(), nil
}

// Percentile returns the p-th percentile latency (nearest rank).
func (rep Report) Percentile(p int) time.Duration {
	if len(rep.Latencies) == 0 {
		return 0
	}
	sorted := append([]time.Duration(nil), rep.Latencies...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	idx := (p*len(sorted)+99)/100 - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}
