package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"news-crud/internal/domain"
	"news-crud/internal/logger"
	"news-crud/internal/metrics"
	"news-crud/internal/repository"
)

const (
	FormatCSV    = "csv"
	FormatNDJSON = "ndjson"

	// exportFlushEvery is the number of records written between flushes.
	exportFlushEvery = 100

	exportResource = "articles"
)

var articleCSVHeader = []string{
	"id", "title", "slug", "status", "author_id", "category_id", "featured",
	"date", "published_at", "expired_at", "tag_ids", "section_ids", "created_at", "updated_at",
}

// ExportService streams articles to the client without buffering the whole result.
type ExportService struct {
	articleRepo repository.ArticleRepository
}

// NewExportService creates a new ExportService.
func NewExportService(articleRepo repository.ArticleRepository) *ExportService {
	return &ExportService{articleRepo: articleRepo}
}

// IsValidExportFormat reports whether format is supported by StreamArticles.
func IsValidExportFormat(format string) bool {
	return format == FormatCSV || format == FormatNDJSON
}

// StreamArticles writes every article to writer in the requested format and
// returns the number of records written.
func (s *ExportService) StreamArticles(ctx context.Context, format string, writer StreamWriter) (int, error) {
	if !IsValidExportFormat(format) {
		return 0, fmt.Errorf("unsupported export format: %s", format)
	}

	metrics.StartStreamingExport(exportResource)
	timer := metrics.NewTimer()

	var count int
	var err error
	switch format {
	case FormatCSV:
		count, err = s.streamCSV(ctx, writer)
	default:
		count, err = s.streamNDJSON(ctx, writer)
	}

	result := "success"
	if err != nil {
		result = "error"
	}
	metrics.EndStreamingExport(exportResource, format, result, timer.Seconds(), count)

	log := logger.FromContext(ctx)
	if err != nil {
		log.Error("Article export failed",
			slog.String("format", format),
			slog.Int("records", count),
			slog.String("error", err.Error()))
		return count, fmt.Errorf("stream articles: %w", err)
	}

	log.Info("Article export completed",
		slog.String("format", format),
		slog.Int("records", count))
	return count, nil
}

func (s *ExportService) streamCSV(ctx context.Context, writer StreamWriter) (int, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	flush := func() error {
		w.Flush()
		if err := w.Error(); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
		if buf.Len() == 0 {
			return nil
		}
		if err := writer.Write(buf.Bytes()); err != nil {
			return err
		}
		buf.Reset()
		writer.Flush()
		return nil
	}

	if err := w.Write(articleCSVHeader); err != nil {
		return 0, fmt.Errorf("write header: %w", err)
	}

	var count int
	err := s.articleRepo.StreamAll(ctx, func(a domain.Article) error {
		if err := w.Write(articleRecord(a)); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
		count++
		if count%exportFlushEvery == 0 {
			return flush()
		}
		return nil
	})
	if err != nil {
		return count, err
	}

	return count, flush()
}

func (s *ExportService) streamNDJSON(ctx context.Context, writer StreamWriter) (int, error) {
	var count int
	err := s.articleRepo.StreamAll(ctx, func(a domain.Article) error {
		line, err := json.Marshal(a)
		if err != nil {
			return fmt.Errorf("write json: %w", err)
		}
		if err := writer.Write(append(line, '\n')); err != nil {
			return err
		}
		count++
		if count%exportFlushEvery == 0 {
			writer.Flush()
		}
		return nil
	})
	if err != nil {
		return count, err
	}

	writer.Flush()
	return count, nil
}

func articleRecord(a domain.Article) []string {
	expiredAt := ""
	if a.ExpiredAt != nil {
		expiredAt = a.ExpiredAt.Format(time.RFC3339)
	}

	return []string{
		strconv.FormatInt(a.ID, 10),
		a.Title,
		a.Slug,
		string(a.Status),
		strconv.FormatInt(a.AuthorID, 10),
		strconv.FormatInt(a.CategoryID, 10),
		strconv.FormatBool(a.Featured),
		a.Date.Format(time.DateOnly),
		a.PublishedAt.Format(time.RFC3339),
		expiredAt,
		joinIDs(a.TagIDs),
		joinIDs(a.SectionIDs),
		a.CreatedAt.Format(time.RFC3339),
		a.UpdatedAt.Format(time.RFC3339),
	}
}

func joinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, " ")
}
