package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/platformbuilds/mirador-relay/pkg/logger"
)

// ReadinessChecker is a downstream dependency whose availability gates /readyz.
type ReadinessChecker interface {
	Name() string
	HealthCheck(ctx context.Context) error
}

type HealthHandler struct {
	checkers []ReadinessChecker
	logger   logger.Logger
}

func NewHealthHandler(logger logger.Logger, checkers ...ReadinessChecker) *HealthHandler {
	return &HealthHandler{
		checkers: checkers,
		logger:   logger,
	}
}

// GET /health - Quick liveness check
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "mirador-relay",
		"version":   "v0.3.1",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// GET /readyz - Downstream readiness probe
//
// With ?verbose (any value or none), the body lists each component with a
// [+]/[-] marker, one per line, and the status is 200/503. Without it the
// response is bodyless 204/503.
func (h *HealthHandler) ReadinessCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	_, verbose := c.GetQuery("verbose")

	ready := true
	var report strings.Builder
	for _, checker := range h.checkers {
		if err := checker.HealthCheck(ctx); err != nil {
			ready = false
			h.logger.Warn("Readiness check failed", "component", checker.Name(), "error", err)
			fmt.Fprintf(&report, "[-] %s\n", checker.Name())
		} else {
			fmt.Fprintf(&report, "[+] %s\n", checker.Name())
		}
	}

	if verbose {
		status := http.StatusOK
		if !ready {
			status = http.StatusServiceUnavailable
		}
		c.String(status, report.String())
		return
	}

	if ready {
		c.Status(http.StatusNoContent)
		return
	}
	c.Status(http.StatusServiceUnavailable)
}
