// README: API gateway; registers HTTP routes and delegates to the planner and usage services.
package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"travelplanner/internal/http/handlers"
	"travelplanner/internal/http/middleware"
)

type ServerDeps struct {
	Planner     handlers.ItineraryPlanner
	Usage       handlers.UsageReader
	PlanTimeout time.Duration
}

type Server struct {
	planner     handlers.ItineraryPlanner
	usage       handlers.UsageReader
	planTimeout time.Duration
}

func NewServer(deps ServerDeps) *Server {
	return &Server{
		planner:     deps.Planner,
		usage:       deps.Usage,
		planTimeout: deps.PlanTimeout,
	}
}

func (s *Server) Routes() http.Handler {
	r := gin.New()
	r.Use(middleware.Recovery(), middleware.RequestID(), middleware.Logging(), middleware.CORS())

	tripHandler := handlers.NewTripHandler(s.planner, s.planTimeout)
	r.POST("/api/plan-trip", tripHandler.PlanTrip)

	statsHandler := handlers.NewStatsHandler(s.usage)
	r.GET("/api/stats/destinations", statsHandler.TopDestinations)
	r.GET("/api/stats/summary", statsHandler.Summary)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	return r
}
