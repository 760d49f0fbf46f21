package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"news-crud/internal/logger"
	"news-crud/internal/service"
)

// ExportHandler handles export-related HTTP requests.
type ExportHandler struct {
	exportService service.ExportServiceInterface
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exportService service.ExportServiceInterface) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
	}
}

// StreamExportRequest represents query parameters for streaming export.
type StreamExportRequest struct {
	Format string `form:"format" binding:"omitempty,oneof=csv ndjson"`
}

// ginStreamWriter wraps gin.ResponseWriter for streaming.
type ginStreamWriter struct {
	writer gin.ResponseWriter
}

func (w *ginStreamWriter) Write(data []byte) error {
	_, err := w.writer.Write(data)
	return err
}

func (w *ginStreamWriter) Flush() {
	w.writer.Flush()
}

// StreamExport handles GET /admin/article/export?format=...
func (h *ExportHandler) StreamExport(c *gin.Context) {
	var req StreamExportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	// Default format is ndjson
	if req.Format == "" {
		req.Format = service.FormatNDJSON
	}

	log := logger.FromContext(c.Request.Context())
	log.Info("Streaming export", slog.String("format", req.Format))

	contentType := "application/x-ndjson"
	if req.Format == service.FormatCSV {
		contentType = "text/csv"
	}

	c.Header("Content-Type", contentType)
	c.Header("X-Content-Type-Options", "nosniff")
	c.Header("Content-Disposition", "attachment; filename=\"articles."+req.Format+"\"")
	c.Status(http.StatusOK)

	writer := &ginStreamWriter{writer: c.Writer}

	count, err := h.exportService.StreamArticles(c.Request.Context(), req.Format, writer)
	if err != nil {
		// Headers are already sent; the truncated body is all the client gets.
		log.Error("Streaming export error",
			slog.Int("count", count),
			slog.String("error", err.Error()))
		return
	}

	log.Info("Streaming export completed", slog.Int("count", count))
}
