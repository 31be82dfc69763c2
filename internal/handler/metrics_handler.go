package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/drivingschool-api/internal/service"
)

const readyTimeout = 2 * time.Second

// Pinger reports whether a backing dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// MetricsHandler exposes observability endpoints.
type MetricsHandler struct {
	metrics *service.MetricsService
	cache   Pinger
}

// NewMetricsHandler constructs a metrics handler. cache may be nil when caching is off.
func NewMetricsHandler(metrics *service.MetricsService, cache Pinger) *MetricsHandler {
	return &MetricsHandler{metrics: metrics, cache: cache}
}

// Prometheus serves the Prometheus metrics endpoint.
func (h *MetricsHandler) Prometheus(c *gin.Context) {
	h.metrics.Handler().ServeHTTP(c.Writer, c.Request)
}

// Health responds with a generic OK payload for liveness usage.
func (h *MetricsHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready reports readiness together with a metrics digest. A configured but
// unreachable cache degrades the status without failing the probe.
func (h *MetricsHandler) Ready(c *gin.Context) {
	cacheState := "disabled"
	if h.cache != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
		defer cancel()
		cacheState = "ok"
		if err := h.cache.Ping(ctx); err != nil {
			cacheState = "unreachable"
		}
	}
	status := "ready"
	if cacheState == "unreachable" {
		status = "degraded"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  status,
		"cache":   cacheState,
		"metrics": h.metrics.Snapshot(),
	})
}
