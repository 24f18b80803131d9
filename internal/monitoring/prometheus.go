// Package monitoring exposes the Prometheus scrape endpoint and build info
// for mirador-relay. Request-level metrics are collected by the existing
// middleware (internal/api/middleware/metrics.middleware.go).
package monitoring

import (
	"runtime"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var buildInfo = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "mirador_relay_build_info",
		Help: "Build information for mirador-relay",
	},
	[]string{"version", "go_version"},
)

// SetupPrometheusMetrics registers GET /metrics and records build info.
func SetupPrometheusMetrics(router *gin.Engine, version string) {
	buildInfo.WithLabelValues(version, runtime.Version()).Set(1)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
