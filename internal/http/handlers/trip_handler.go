// README: Trip planning handler (POST /api/plan-trip, plain-text itinerary).
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"travelplanner/internal/trip"
)

const defaultPlanTimeout = 2 * time.Minute

type TripHandler struct {
	planner ItineraryPlanner
	timeout time.Duration
}

func NewTripHandler(planner ItineraryPlanner, timeout time.Duration) *TripHandler {
	if timeout <= 0 {
		timeout = defaultPlanTimeout
	}
	return &TripHandler{planner: planner, timeout: timeout}
}

// PlanTrip handles POST /api/plan-trip.
// Generation failures are reported as 200 with an "Error: <message>" body.
func (h *TripHandler) PlanTrip(c *gin.Context) {
	var req trip.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		writeFailure(c, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	itinerary, err := h.planner.PlanTrip(ctx, req)
	if err != nil {
		writeFailure(c, http.StatusOK, err.Error())
		return
	}
	writeText(c, http.StatusOK, itinerary)
}
