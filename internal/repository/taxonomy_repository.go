package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"news-crud/internal/domain"
)

// PostgresTaxonomyRepository implements TaxonomyRepository using PostgreSQL.
type PostgresTaxonomyRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresTaxonomyRepository creates a new PostgresTaxonomyRepository.
func NewPostgresTaxonomyRepository(pool *pgxpool.Pool) *PostgresTaxonomyRepository {
	return &PostgresTaxonomyRepository{pool: pool}
}

// CreateCategory inserts a category and fills its id.
func (r *PostgresTaxonomyRepository) CreateCategory(ctx context.Context, c *domain.Category) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO categories (parent_id, name, slug) VALUES ($1, $2, $3) RETURNING id`,
		c.ParentID, c.Name, c.Slug,
	).Scan(&c.ID)
	if err != nil {
		return mapPgError("repository.taxonomy.CreateCategory", err)
	}
	return nil
}

// CreateTag inserts a tag and fills its id.
func (r *PostgresTaxonomyRepository) CreateTag(ctx context.Context, t *domain.Tag) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO tags (name, slug) VALUES ($1, $2) RETURNING id`,
		t.Name, t.Slug,
	).Scan(&t.ID)
	if err != nil {
		return mapPgError("repository.taxonomy.CreateTag", err)
	}
	return nil
}

// CreateSection inserts a section and fills its id.
func (r *PostgresTaxonomyRepository) CreateSection(ctx context.Context, s *domain.Section) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO sections (name, slug) VALUES ($1, $2) RETURNING id`,
		s.Name, s.Slug,
	).Scan(&s.ID)
	if err != nil {
		return mapPgError("repository.taxonomy.CreateSection", err)
	}
	return nil
}

// SearchCategories returns categories whose name contains term, ordered by name.
func (r *PostgresTaxonomyRepository) SearchCategories(ctx context.Context, term string, limit, offset int) ([]domain.Option, int, error) {
	return r.search(ctx, "categories", term, limit, offset)
}

// SearchTags returns tags whose name contains term, ordered by name.
func (r *PostgresTaxonomyRepository) SearchTags(ctx context.Context, term string, limit, offset int) ([]domain.Option, int, error) {
	return r.search(ctx, "tags", term, limit, offset)
}

// search is only called with the fixed table names above.
func (r *PostgresTaxonomyRepository) search(ctx context.Context, table, term string, limit, offset int) ([]domain.Option, int, error) {
	op := "repository.taxonomy.search." + table
	pattern := containsPattern(term)

	var total int
	if err := r.pool.QueryRow(ctx,
		fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE name ILIKE $1 ESCAPE '\'`, table), pattern,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%s: count: %w", op, err)
	}

	options := make([]domain.Option, 0, limit)
	if total == 0 {
		return options, 0, nil
	}

	rows, err := r.pool.Query(ctx,
		fmt.Sprintf(`SELECT id, name FROM %s WHERE name ILIKE $1 ESCAPE '\' ORDER BY name, id LIMIT $2 OFFSET $3`, table),
		pattern, limit, offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: query: %w", op, err)
	}
	defer rows.Close()

	for rows.Next() {
		var o domain.Option
		if err := rows.Scan(&o.ID, &o.Name); err != nil {
			return nil, 0, fmt.Errorf("%s: scan: %w", op, err)
		}
		options = append(options, o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	return options, total, nil
}
