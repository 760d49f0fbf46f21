package repository_test

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"news-crud/internal/domain"
	"news-crud/internal/infrastructure/database"
	"news-crud/internal/repository"
)

// TestDB holds the test database connection and container
type TestDB struct {
	Pool      *pgxpool.Pool
	Container testcontainers.Container
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL container and applies migrations
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()
	ctx := context.Background()

	_, currentFile, _, _ := runtime.Caller(0)
	migrationsPath := filepath.Join(filepath.Dir(currentFile), "..", "..", "migrations")

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("Failed to start postgres container: %v", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		t.Fatalf("Failed to get connection string: %v", err)
	}

	if _, err := database.Migrate(connStr, migrationsPath, 0); err != nil {
		_ = pgContainer.Terminate(ctx)
		t.Fatalf("Failed to run migrations: %v", err)
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		t.Fatalf("Failed to create connection pool: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		_ = pgContainer.Terminate(ctx)
		t.Fatalf("Failed to ping database: %v", err)
	}

	return &TestDB{
		Pool:      pool,
		Container: pgContainer,
		ConnStr:   connStr,
	}
}

// Cleanup closes the connection pool and terminates the container
func (tdb *TestDB) Cleanup(t *testing.T) {
	t.Helper()
	if tdb.Pool != nil {
		tdb.Pool.Close()
	}
	if tdb.Container != nil {
		if err := tdb.Container.Terminate(context.Background()); err != nil {
			t.Logf("Warning: failed to terminate container: %v", err)
		}
	}
}

// TruncateTables clears all data from tables for test isolation
func (tdb *TestDB) TruncateTables(t *testing.T) {
	t.Helper()
	tables := []string{"sectionables", "article_tag", "articles", "sections", "tags", "categories", "users"}
	_, err := tdb.Pool.Exec(context.Background(),
		fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", strings.Join(tables, ", ")))
	if err != nil {
		t.Fatalf("Failed to truncate tables: %v", err)
	}
}

// Fixtures holds the referenced rows every article needs.
type Fixtures struct {
	Author   domain.User
	Category domain.Category
	Tags     []domain.Tag
	Sections []domain.Section
}

// SeedFixtures creates one author, one category, two tags and two sections.
func (tdb *TestDB) SeedFixtures(t *testing.T) Fixtures {
	t.Helper()
	ctx := context.Background()
	users := repository.NewPostgresUserRepository(tdb.Pool)
	taxonomy := repository.NewPostgresTaxonomyRepository(tdb.Pool)

	f := Fixtures{
		Author:   domain.User{Name: "Test Author", Email: "author@example.com"},
		Category: domain.Category{Name: "World", Slug: "world"},
		Tags:     []domain.Tag{{Name: "Politics", Slug: "politics"}, {Name: "Economy", Slug: "economy"}},
		Sections: []domain.Section{{Name: "Front page", Slug: "front-page"}, {Name: "Sidebar", Slug: "sidebar"}},
	}
	if err := users.Create(ctx, &f.Author); err != nil {
		t.Fatalf("Failed to create author: %v", err)
	}
	if err := taxonomy.CreateCategory(ctx, &f.Category); err != nil {
		t.Fatalf("Failed to create category: %v", err)
	}
	for i := range f.Tags {
		if err := taxonomy.CreateTag(ctx, &f.Tags[i]); err != nil {
			t.Fatalf("Failed to create tag: %v", err)
		}
	}
	for i := range f.Sections {
		if err := taxonomy.CreateSection(ctx, &f.Sections[i]); err != nil {
			t.Fatalf("Failed to create section: %v", err)
		}
	}
	return f
}

// NewArticle returns a published, unexpired article referencing the fixtures.
func (f Fixtures) NewArticle(slug string, publishedAt time.Time) *domain.Article {
	return &domain.Article{
		Title:       "Title " + slug,
		Slug:        slug,
		Content:     "Body",
		Status:      domain.StatusPublished,
		AuthorID:    f.Author.ID,
		CategoryID:  f.Category.ID,
		Date:        time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		PublishedAt: publishedAt,
	}
}

// CountRows runs a COUNT(*) query.
func (tdb *TestDB) CountRows(t *testing.T, query string, args ...interface{}) int {
	t.Helper()
	var n int
	if err := tdb.Pool.QueryRow(context.Background(), query, args...).Scan(&n); err != nil {
		t.Fatalf("Failed to count rows: %v", err)
	}
	return n
}
