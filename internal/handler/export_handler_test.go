package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"news-crud/internal/mocks"
	"news-crud/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestStreamExport_NDJSON(t *testing.T) {
	mockService := mocks.NewMockExportServiceInterface(t)
	handler := NewExportHandler(mockService)

	mockService.EXPECT().
		StreamArticles(mock.Anything, "ndjson", mock.AnythingOfType("*handler.ginStreamWriter")).
		Run(func(ctx context.Context, format string, writer service.StreamWriter) {
			_ = writer.Write([]byte(`{"id":1,"title":"First","slug":"first"}` + "\n"))
			_ = writer.Write([]byte(`{"id":2,"title":"Second","slug":"second"}` + "\n"))
			writer.Flush()
		}).
		Return(2, nil)

	router := gin.New()
	router.GET("/admin/article/export", handler.StreamExport)

	req := httptest.NewRequest(http.MethodGet, "/admin/article/export?format=ndjson", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Header().Get("Content-Type"), "application/x-ndjson")
	require.Contains(t, w.Header().Get("Content-Disposition"), "articles.ndjson")

	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	require.Equal(t, 2, len(lines), "Expected 2 lines")

	for i, line := range lines {
		var article map[string]interface{}
		err := json.Unmarshal([]byte(line), &article)
		require.NoError(t, err, "Line %d should be valid JSON", i)
		require.Contains(t, article, "slug", "Line %d should have slug field", i)
	}
}

func TestStreamExport_CSV(t *testing.T) {
	mockService := mocks.NewMockExportServiceInterface(t)
	handler := NewExportHandler(mockService)

	mockService.EXPECT().
		StreamArticles(mock.Anything, "csv", mock.AnythingOfType("*handler.ginStreamWriter")).
		Run(func(ctx context.Context, format string, writer service.StreamWriter) {
			_ = writer.Write([]byte("id,title,slug\n1,First,first\n"))
		}).
		Return(1, nil)

	router := gin.New()
	router.GET("/admin/article/export", handler.StreamExport)

	req := httptest.NewRequest(http.MethodGet, "/admin/article/export?format=csv", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	require.Equal(t, "id,title,slug\n1,First,first\n", w.Body.String())
}

func TestStreamExport_DefaultFormat(t *testing.T) {
	mockService := mocks.NewMockExportServiceInterface(t)
	handler := NewExportHandler(mockService)

	mockService.EXPECT().
		StreamArticles(mock.Anything, "ndjson", mock.Anything).
		Return(0, nil)

	router := gin.New()
	router.GET("/admin/article/export", handler.StreamExport)

	req := httptest.NewRequest(http.MethodGet, "/admin/article/export", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Header().Get("Content-Type"), "application/x-ndjson")
}

func TestStreamExport_InvalidFormat(t *testing.T) {
	mockService := mocks.NewMockExportServiceInterface(t)
	handler := NewExportHandler(mockService)

	router := gin.New()
	router.GET("/admin/article/export", handler.StreamExport)

	req := httptest.NewRequest(http.MethodGet, "/admin/article/export?format=xml", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStreamExport_ServiceErrorKeepsPartialBody(t *testing.T) {
	mockService := mocks.NewMockExportServiceInterface(t)
	handler := NewExportHandler(mockService)

	mockService.EXPECT().
		StreamArticles(mock.Anything, "ndjson", mock.Anything).
		Run(func(ctx context.Context, format string, writer service.StreamWriter) {
			_ = writer.Write([]byte(`{"id":1}` + "\n"))
		}).
		Return(1, errors.New("connection reset"))

	router := gin.New()
	router.GET("/admin/article/export", handler.StreamExport)

	req := httptest.NewRequest(http.MethodGet, "/admin/article/export?format=ndjson", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `{"id":1}`+"\n", w.Body.String())
}
