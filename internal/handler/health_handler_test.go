package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

var (
	pingOK   = pingerFunc(func(context.Context) error { return nil })
	pingFail = pingerFunc(func(context.Context) error { return errors.New("unreachable") })
)

func healthRouter(h *HealthHandler) *gin.Engine {
	router := gin.New()
	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)
	router.GET("/live", h.Live)
	return router
}

func TestHealthHandler_Health(t *testing.T) {
	tests := []struct {
		name         string
		db           Pinger
		extras       map[string]Pinger
		wantStatus   int
		wantOverall  string
		wantServices map[string]string
	}{
		{
			name:         "all healthy",
			db:           pingOK,
			extras:       map[string]Pinger{"audit": pingOK},
			wantStatus:   http.StatusOK,
			wantOverall:  "healthy",
			wantServices: map[string]string{"database": "healthy", "audit": "healthy"},
		},
		{
			name:         "optional dependency down",
			db:           pingOK,
			extras:       map[string]Pinger{"audit": pingFail},
			wantStatus:   http.StatusOK,
			wantOverall:  "healthy",
			wantServices: map[string]string{"database": "healthy", "audit": "degraded"},
		},
		{
			name:         "database down",
			db:           pingFail,
			wantStatus:   http.StatusServiceUnavailable,
			wantOverall:  "unhealthy",
			wantServices: map[string]string{"database": "unhealthy"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := healthRouter(NewHealthHandler(tt.db, tt.extras))

			w := doRequest(router, http.MethodGet, "/health", "")
			require.Equal(t, tt.wantStatus, w.Code)

			var resp HealthResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantOverall, resp.Status)
			assert.Equal(t, tt.wantServices, resp.Services)
		})
	}
}

func TestHealthHandler_Probes(t *testing.T) {
	router := healthRouter(NewHealthHandler(pingOK, nil))
	assert.Equal(t, http.StatusOK, doRequest(router, http.MethodGet, "/ready", "").Code)
	assert.Equal(t, http.StatusOK, doRequest(router, http.MethodGet, "/live", "").Code)

	router = healthRouter(NewHealthHandler(pingFail, nil))
	assert.Equal(t, http.StatusServiceUnavailable, doRequest(router, http.MethodGet, "/ready", "").Code)
	assert.Equal(t, http.StatusOK, doRequest(router, http.MethodGet, "/live", "").Code)
}
