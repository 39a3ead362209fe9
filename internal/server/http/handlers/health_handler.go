package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/userhub/internal/health"
	"github.com/polkiloo/userhub/internal/server/http/dto"
)

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	probes []health.Probe
}

// NewHealthHandler creates HealthHandler over the given probes.
func NewHealthHandler(probes []health.Probe) *HealthHandler {
	return &HealthHandler{probes: probes}
}

// Healthz handles GET /healthz. No dependency checks.
func (h *HealthHandler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{Status: health.StatusOK})
}

// Readyz handles GET /readyz.
func (h *HealthHandler) Readyz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	report := health.Check(ctx, h.probes)
	if !report.Healthy {
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "unavailable", Checks: report.Checks})
		return
	}
	c.JSON(http.StatusOK, dto.HealthResponse{Status: health.StatusOK, Checks: report.Checks})
}
