// README: Handler tests for trip planning and usage statistics.
package handlers_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"travelplanner/internal/http/handlers"
	"travelplanner/internal/modules/usage"
	"travelplanner/internal/trip"
)

// stubPlanner is a test double for handlers.ItineraryPlanner.
type stubPlanner struct {
	out string
	err error
	got trip.Request
}

func (s *stubPlanner) PlanTrip(_ context.Context, req trip.Request) (string, error) {
	s.got = req
	return s.out, s.err
}

type stubUsage struct {
	top []usage.DestinationCount
	sum usage.Summary
	err error

	lastLimit int
}

func (s *stubUsage) TopDestinations(_ context.Context, limit int) ([]usage.DestinationCount, error) {
	s.lastLimit = limit
	return s.top, s.err
}

func (s *stubUsage) Summary(_ context.Context) (usage.Summary, error) {
	return s.sum, s.err
}

func buildTestRouter(p handlers.ItineraryPlanner, u handlers.UsageReader) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	th := handlers.NewTripHandler(p, time.Second)
	r.POST("/api/plan-trip", th.PlanTrip)
	sh := handlers.NewStatsHandler(u)
	r.GET("/api/stats/destinations", sh.TopDestinations)
	r.GET("/api/stats/summary", sh.Summary)
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPlanTripSuccess(t *testing.T) {
	planner := &stubPlanner{out: "Day 1: Beach\nMorning: swim"}
	r := buildTestRouter(planner, nil)

	w := doRequest(r, http.MethodPost, "/api/plan-trip", `{"destination":"Bali","days":3,"theme":"surf","pace":"relaxed"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != "Day 1: Beach\nMorning: swim" {
		t.Errorf("unexpected body %q", w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("expected text/plain, got %q", ct)
	}
	want := trip.Request{Destination: "Bali", Days: 3, Theme: "surf", Pace: "relaxed"}
	if planner.got != want {
		t.Errorf("planner got %+v, want %+v", planner.got, want)
	}
}

func TestPlanTripNullOptionalFields(t *testing.T) {
	planner := &stubPlanner{out: "ok"}
	r := buildTestRouter(planner, nil)

	w := doRequest(r, http.MethodPost, "/api/plan-trip", `{"destination":"Bali","days":2,"theme":null,"pace":null}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if planner.got.Theme != "" || planner.got.Pace != "" {
		t.Errorf("expected empty theme/pace, got %+v", planner.got)
	}
}

func TestPlanTripMissingFieldsDefault(t *testing.T) {
	planner := &stubPlanner{out: "ok"}
	r := buildTestRouter(planner, nil)

	w := doRequest(r, http.MethodPost, "/api/plan-trip", `{}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if planner.got != (trip.Request{}) {
		t.Errorf("expected zero request, got %+v", planner.got)
	}
}

func TestPlanTripPlannerError(t *testing.T) {
	planner := &stubPlanner{err: errors.New("openrouter: do request: connection refused")}
	r := buildTestRouter(planner, nil)

	w := doRequest(r, http.MethodPost, "/api/plan-trip", `{"destination":"Bali","days":3}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.HasPrefix(w.Body.String(), "Error: ") {
		t.Errorf("expected Error: prefix, got %q", w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "connection refused") {
		t.Errorf("expected error message in body, got %q", w.Body.String())
	}
}

func TestPlanTripInvalidJSON(t *testing.T) {
	r := buildTestRouter(&stubPlanner{}, nil)

	w := doRequest(r, http.MethodPost, "/api/plan-trip", `not json`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if w.Body.String() != "Error: invalid request body" {
		t.Errorf("unexpected body %q", w.Body.String())
	}
}

func TestTopDestinations(t *testing.T) {
	u := &stubUsage{top: []usage.DestinationCount{{Destination: "kyoto", Count: 4}}}
	r := buildTestRouter(&stubPlanner{}, u)

	w := doRequest(r, http.MethodGet, "/api/stats/destinations?limit=5", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if u.lastLimit != 5 {
		t.Errorf("expected limit 5, got %d", u.lastLimit)
	}
	if !strings.Contains(w.Body.String(), `"destination":"kyoto"`) || !strings.Contains(w.Body.String(), `"count":4`) {
		t.Errorf("unexpected body %s", w.Body.String())
	}
}

func TestTopDestinationsInvalidLimit(t *testing.T) {
	r := buildTestRouter(&stubPlanner{}, &stubUsage{})
	for _, q := range []string{"abc", "0", "-3"} {
		w := doRequest(r, http.MethodGet, "/api/stats/destinations?limit="+q, "")
		if w.Code != http.StatusBadRequest {
			t.Errorf("limit=%s: expected 400, got %d", q, w.Code)
		}
	}
}

func TestStatsNotConfigured(t *testing.T) {
	r := buildTestRouter(&stubPlanner{}, &stubUsage{err: usage.ErrNotConfigured})
	for _, path := range []string{"/api/stats/destinations", "/api/stats/summary"} {
		w := doRequest(r, http.MethodGet, path, "")
		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("%s: expected 503, got %d", path, w.Code)
		}
	}

	r = buildTestRouter(&stubPlanner{}, nil)
	if w := doRequest(r, http.MethodGet, "/api/stats/summary", ""); w.Code != http.StatusServiceUnavailable {
		t.Errorf("nil usage: expected 503, got %d", w.Code)
	}
}

func TestSummaryBackendError(t *testing.T) {
	r := buildTestRouter(&stubPlanner{}, &stubUsage{err: errors.New("db down")})
	w := doRequest(r, http.MethodGet, "/api/stats/summary", "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestSummary(t *testing.T) {
	r := buildTestRouter(&stubPlanner{}, &stubUsage{sum: usage.Summary{Succeeded: 7, Failed: 2}})
	w := doRequest(r, http.MethodGet, "/api/stats/summary", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != `{"failed":2,"succeeded":7}` && w.Body.String() != `{"succeeded":7,"failed":2}` {
		t.Errorf("unexpected body %s", w.Body.String())
	}
}
