package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"news-crud/internal/metrics"
)

func TestSurface(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/api/v1/articles/:slug/next", SurfacePublic},
		{"/admin/article/:id", SurfaceAdmin},
		{"/backoffice/article/bulk-clone", SurfaceAdmin},
		{"/health", SurfaceOps},
		{"/live", SurfaceOps},
		{"", SurfaceUnmatched},
	}

	for _, tt := range tests {
		t.Run(tt.want+" "+tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, Surface(tt.path))
		})
	}
}

func TestMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(Metrics())
	router.GET("/api/v1/articles/:slug", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"slug": c.Param("slug")})
	})
	router.DELETE("/admin/article/:id", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
	})
	router.GET("/metrics", func(c *gin.Context) {
		c.String(http.StatusOK, "metrics data")
	})

	tests := []struct {
		name    string
		method  string
		target  string
		surface string
		route   string
		status  string
	}{
		{"public route template", http.MethodGet, "/api/v1/articles/hello-world", SurfacePublic, "/api/v1/articles/:slug", "200"},
		{"admin delete", http.MethodDelete, "/admin/article/42", SurfaceAdmin, "/admin/article/:id", "204"},
		{"failing probe", http.MethodGet, "/health", SurfaceOps, "/health", "503"},
		{"unknown route", http.MethodGet, "/nope", SurfaceUnmatched, SurfaceUnmatched, "404"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := metrics.HTTPRequestsTotal.WithLabelValues(tt.surface, tt.method, tt.route, tt.status)
			initialTotal := testutil.ToFloat64(counter)
			initialInFlight := testutil.ToFloat64(metrics.HTTPRequestsInFlight)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tt.method, tt.target, nil))

			assert.Equal(t, tt.status, strconv.Itoa(w.Code))
			assert.Equal(t, initialTotal+1, testutil.ToFloat64(counter))
			assert.Equal(t, initialInFlight, testutil.ToFloat64(metrics.HTTPRequestsInFlight))
		})
	}

	t.Run("skips metrics endpoint", func(t *testing.T) {
		before := testutil.CollectAndCount(metrics.HTTPRequestsTotal)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, before, testutil.CollectAndCount(metrics.HTTPRequestsTotal))
	})
}
