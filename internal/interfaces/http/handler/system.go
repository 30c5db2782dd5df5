package handler

import (
	"net/http"
	"runtime"
	"time"

	"github.com/farmcore/backend/internal/infrastructure/persistence"
	"github.com/gin-gonic/gin"
)

// Pinger reports whether a backing dependency is reachable
type Pinger interface {
	Ping() error
}

// statsReporter exposes connection pool counters. The database handle
// satisfies it; pool details are reported only when available.
type statsReporter interface {
	Stats() (persistence.ConnectionStats, error)
}

// SystemHandler handles health and liveness endpoints
type SystemHandler struct {
	BaseHandler
	startTime time.Time
	db        Pinger
}

// NewSystemHandler creates a new SystemHandler. The pinger may be nil,
// in which case the health check reports liveness only.
func NewSystemHandler(db Pinger) *SystemHandler {
	return &SystemHandler{
		startTime: time.Now(),
		db:        db,
	}
}

// RegisterRoutes registers the ping route on the given group
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", h.Ping)
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string      `json:"status"`
	Version   string      `json:"version"`
	GoVersion string      `json:"go_version"`
	Uptime    string      `json:"uptime"`
	Database  string      `json:"database,omitempty"`
	Pool      *PoolHealth `json:"pool,omitempty"`
}

// PoolHealth reports connection pool usage alongside the health status
type PoolHealth struct {
	Open  int `json:"open"`
	InUse int `json:"in_use"`
	Idle  int `json:"idle"`
}

// Health reports service liveness and database reachability
func (h *SystemHandler) Health(c *gin.Context) {
	resp := HealthResponse{
		Status:    "ok",
		Version:   "1.0.0",
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
	}
	if h.db != nil {
		if err := h.db.Ping(); err != nil {
			resp.Status = "unhealthy"
			resp.Database = "error"
			c.JSON(http.StatusServiceUnavailable, resp)
			return
		}
		resp.Database = "ok"
		if reporter, ok := h.db.(statsReporter); ok {
			if stats, err := reporter.Stats(); err == nil {
				resp.Pool = &PoolHealth{
					Open:  stats.OpenConnections,
					InUse: stats.InUse,
					Idle:  stats.Idle,
				}
			}
		}
	}
	c.JSON(http.StatusOK, resp)
}

// PingResponse represents the ping response
type PingResponse struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// Ping checks that the API is responsive
func (h *SystemHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{
		Message:   "pong",
		Timestamp: time.Now().Format(time.RFC3339),
	})
}
