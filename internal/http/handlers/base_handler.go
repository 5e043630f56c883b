// README: Base handler utilities (JSON/text helpers, service interfaces).
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"travelplanner/internal/modules/usage"
	"travelplanner/internal/trip"
)

// ItineraryPlanner produces the itinerary text for a trip request.
type ItineraryPlanner interface {
	PlanTrip(ctx context.Context, req trip.Request) (string, error)
}

// UsageReader exposes aggregated usage statistics.
type UsageReader interface {
	TopDestinations(ctx context.Context, limit int) ([]usage.DestinationCount, error)
	Summary(ctx context.Context) (usage.Summary, error)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// writeText writes body verbatim as text/plain.
func writeText(c *gin.Context, status int, body string) {
	c.Data(status, "text/plain; charset=utf-8", []byte(body))
}

// writeFailure renders an error the way the trip endpoint reports it: "Error: <message>".
func writeFailure(c *gin.Context, status int, msg string) {
	writeText(c, status, "Error: "+msg)
}

func writeUnavailable(c *gin.Context) {
	writeError(c, http.StatusServiceUnavailable, usage.ErrNotConfigured.Error())
}
