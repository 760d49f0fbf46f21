package repository

import (
	"context"
	"time"

	"news-crud/internal/domain"
)

// ArticleRepository defines methods for article data access.
// Write methods persist the article together with its tag and section
// associations in a single transaction.
type ArticleRepository interface {
	Create(ctx context.Context, article *domain.Article) error
	CreateMany(ctx context.Context, articles []*domain.Article) error
	Update(ctx context.Context, article *domain.Article) error
	Delete(ctx context.Context, id int64) error
	DeleteMany(ctx context.Context, ids []int64) ([]int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Article, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Article, error)
	List(ctx context.Context, q domain.ListQuery) (domain.ArticlePage, error)
	ListPublished(ctx context.Context, now time.Time, page, perPage int) (domain.ArticlePage, error)
	SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error)
	StreamAll(ctx context.Context, callback func(domain.Article) error) error

	// Navigation over published articles. A nil article with a nil error means absent.
	Earliest(ctx context.Context, now time.Time) (*domain.Article, error)
	Latest(ctx context.Context, now time.Time) (*domain.Article, error)
	Previous(ctx context.Context, current *domain.Article, now time.Time) (*domain.Article, error)
	Next(ctx context.Context, current *domain.Article, now time.Time) (*domain.Article, error)
}

// TaxonomyRepository defines methods for categories, tags and sections.
type TaxonomyRepository interface {
	CreateCategory(ctx context.Context, category *domain.Category) error
	CreateTag(ctx context.Context, tag *domain.Tag) error
	CreateSection(ctx context.Context, section *domain.Section) error
	SearchCategories(ctx context.Context, term string, limit, offset int) ([]domain.Option, int, error)
	SearchTags(ctx context.Context, term string, limit, offset int) ([]domain.Option, int, error)
}

// UserRepository defines methods for author data access.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}
