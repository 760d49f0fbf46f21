package service

import (
	"context"

	"news-crud/internal/audit"
	"news-crud/internal/domain"
)

// StreamWriter interface for streaming export data.
type StreamWriter interface {
	Write(data []byte) error
	Flush()
}

// ArticleServiceInterface defines the admin operations on articles.
// Used for dependency injection and mocking in tests.
type ArticleServiceInterface interface {
	// Create validates the form, derives the slug and stores the article with its associations.
	Create(ctx context.Context, in *domain.ArticleInput) (*domain.Article, error)
	// Update replaces the editable fields and associations of an existing article.
	Update(ctx context.Context, id int64, in *domain.ArticleInput) (*domain.Article, error)
	// Get returns one article regardless of its publication state.
	Get(ctx context.Context, id int64) (*domain.Article, error)
	// List returns one page of articles for the admin list.
	List(ctx context.Context, q domain.ListQuery) (domain.ArticlePage, error)
	// Delete removes an article and its tag and section rows.
	Delete(ctx context.Context, id int64) error
	// BulkDelete removes several articles and returns how many existed.
	BulkDelete(ctx context.Context, ids []int64) (int, error)
	// Clone stores a draft copy of an article.
	Clone(ctx context.Context, id int64) (*domain.Article, error)
	// BulkClone stores draft copies of several articles in one transaction.
	BulkClone(ctx context.Context, ids []int64) ([]domain.Article, error)
	// History returns the audit trail of an article, newest first.
	History(ctx context.Context, id int64, limit int) ([]audit.Entry, error)
}

// PublicationServiceInterface defines the read operations over published articles.
// A nil article with a nil error from the navigation methods means there is none.
type PublicationServiceInterface interface {
	ListPublished(ctx context.Context, page, perPage int) (domain.ArticlePage, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*domain.Article, error)
	Earliest(ctx context.Context) (*domain.Article, error)
	Latest(ctx context.Context) (*domain.Article, error)
	Previous(ctx context.Context, slug string) (*domain.Article, error)
	Next(ctx context.Context, slug string) (*domain.Article, error)
}

// FetchServiceInterface defines the option lookups used by the admin form widgets.
type FetchServiceInterface interface {
	FetchCategories(ctx context.Context, q string, page int) (domain.OptionPage, error)
	FetchTags(ctx context.Context, q string, page int) (domain.OptionPage, error)
}

// ExportServiceInterface defines the interface for export operations.
// Used for dependency injection and mocking in tests.
type ExportServiceInterface interface {
	// StreamArticles streams articles directly to the writer.
	StreamArticles(ctx context.Context, format string, writer StreamWriter) (int, error)
}
