// Package middleware provides HTTP middleware for the Gin framework.
package middleware

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"news-crud/internal/metrics"
)

// Surfaces used as the "surface" label of the HTTP metrics.
const (
	SurfacePublic    = "public"
	SurfaceAdmin     = "admin"
	SurfaceOps       = "ops"
	SurfaceUnmatched = "unmatched"
)

var opsPaths = map[string]bool{"/health": true, "/ready": true, "/live": true}

// Metrics returns a Gin middleware that records Prometheus metrics for HTTP requests,
// labelled by route template so article ids and slugs do not explode cardinality.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip metrics endpoint to avoid self-referential metrics
		if c.FullPath() == "/metrics" {
			c.Next()
			return
		}

		start := time.Now()

		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		c.Next()

		path := c.FullPath()
		surface := Surface(path)
		if path == "" {
			path = SurfaceUnmatched
		}
		status := strconv.Itoa(c.Writer.Status())

		metrics.HTTPRequestsTotal.WithLabelValues(surface, c.Request.Method, path, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(surface, c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

// Surface classifies a route template. Everything that is neither the public
// API nor a probe is served by the admin panel.
func Surface(routePath string) string {
	switch {
	case routePath == "":
		return SurfaceUnmatched
	case opsPaths[routePath]:
		return SurfaceOps
	case strings.HasPrefix(routePath, "/api/"):
		return SurfacePublic
	default:
		return SurfaceAdmin
	}
}
