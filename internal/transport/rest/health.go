package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	db      dbPinger
	cache   dbPinger // optional
	version string
}

// NewHealthHandler creates a HealthHandler. cache may be nil.
func NewHealthHandler(db dbPinger, cache dbPinger, version string) *HealthHandler {
	return &HealthHandler{db: db, cache: cache, version: version}
}

// RegisterRoutes registers the probes.
func (h *HealthHandler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/health/live", h.Live)
	r.GET("/health/ready", h.Ready)
	r.GET("/health", h.Health)
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe. Pings DB: 200 if OK, 503 if not.
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, HealthResponse{
			Status:    "down",
			Timestamp: time.Now(),
		})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health is the full health check. Pings DB (and the cache, when
// configured) with latency measurement and includes version. A failing
// cache degrades the status but still answers 200.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	components := make(map[string]CompStatus)
	overallStatus := "ok"

	db := probe(ctx, h.db)
	components["database"] = db
	if db.Status != "ok" {
		overallStatus = "down"
	}

	if h.cache != nil {
		cache := probe(ctx, h.cache)
		components["cache"] = cache
		if cache.Status != "ok" && overallStatus == "ok" {
			overallStatus = "degraded"
		}
	}

	status := http.StatusOK
	if overallStatus == "down" {
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, HealthResponse{
		Status:     overallStatus,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func probe(ctx context.Context, p dbPinger) CompStatus {
	start := time.Now()
	if err := p.Ping(ctx); err != nil {
		return CompStatus{Status: "down"}
	}
	return CompStatus{Status: "ok", Latency: time.Since(start).String()}
}
