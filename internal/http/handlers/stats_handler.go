// README: Usage statistics handlers.
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"travelplanner/internal/modules/usage"
)

type StatsHandler struct {
	usage UsageReader
}

func NewStatsHandler(u UsageReader) *StatsHandler {
	return &StatsHandler{usage: u}
}

// TopDestinations handles GET /api/stats/destinations?limit=N.
func (h *StatsHandler) TopDestinations(c *gin.Context) {
	if h.usage == nil {
		writeUnavailable(c)
		return
	}
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(c, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	top, err := h.usage.TopDestinations(c.Request.Context(), limit)
	if err != nil {
		writeUsageError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{"destinations": top})
}

// Summary handles GET /api/stats/summary.
func (h *StatsHandler) Summary(c *gin.Context) {
	if h.usage == nil {
		writeUnavailable(c)
		return
	}
	sum, err := h.usage.Summary(c.Request.Context())
	if err != nil {
		writeUsageError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, sum)
}

func writeUsageError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usage.ErrNotConfigured):
		writeUnavailable(c)
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
