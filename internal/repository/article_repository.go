package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"news-crud/internal/domain"
)

const articleColumns = `
	a.id, a.title, a.slug, a.lead, a.resume, a.content, a.image, a.thumbnail,
	a.status, a.author_id, a.category_id, a.featured, a.date, a.published_at, a.expired_at,
	a.extras, a.views_count, a.comments_count, a.facebook_shares, a.twitter_shares,
	a.linkedin_shares, a.score, a.is_first_publish, a.created_at, a.updated_at,
	COALESCE((SELECT array_agg(t.tag_id ORDER BY t.tag_id)
		FROM article_tag t WHERE t.article_id = a.id), '{}') AS tag_ids,
	COALESCE((SELECT array_agg(s.section_id ORDER BY s.section_id)
		FROM sectionables s
		WHERE s.sectionable_type = 'article' AND s.sectionable_id = a.id AND s.deleted_at IS NULL), '{}') AS section_ids`

// publishedPredicate renders the "published at now" filter with now bound to
// placeholder $n. It mirrors domain.Article.IsPublishedAt: published_at is
// inclusive, expired_at exclusive, NULL expired_at never expires.
func publishedPredicate(n int) string {
	p := "$" + strconv.Itoa(n)
	return "a.status = 'PUBLISHED' AND a.published_at <= " + p +
		" AND (a.expired_at IS NULL OR a.expired_at > " + p + ")"
}

// PostgresArticleRepository implements ArticleRepository using PostgreSQL.
type PostgresArticleRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresArticleRepository creates a new PostgresArticleRepository.
func NewPostgresArticleRepository(pool *pgxpool.Pool) *PostgresArticleRepository {
	return &PostgresArticleRepository{pool: pool}
}

// Create inserts the article and its associations, filling ID and timestamps.
func (r *PostgresArticleRepository) Create(ctx context.Context, a *domain.Article) error {
	return r.inTx(ctx, "repository.article.Create", func(tx pgx.Tx) error {
		return insertArticle(ctx, tx, a)
	})
}

// CreateMany inserts several articles in one transaction; either all are stored or none.
func (r *PostgresArticleRepository) CreateMany(ctx context.Context, articles []*domain.Article) error {
	if len(articles) == 0 {
		return nil
	}
	return r.inTx(ctx, "repository.article.CreateMany", func(tx pgx.Tx) error {
		for _, a := range articles {
			if err := insertArticle(ctx, tx, a); err != nil {
				return err
			}
		}
		return nil
	})
}

func insertArticle(ctx context.Context, tx pgx.Tx, a *domain.Article) error {
	err := tx.QueryRow(ctx, `
		INSERT INTO articles (
			title, slug, lead, resume, content, image, thumbnail, status,
			author_id, category_id, featured, date, published_at, expired_at, extras,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW(), NOW())
		RETURNING id, views_count, comments_count, facebook_shares, twitter_shares,
			linkedin_shares, score, is_first_publish, created_at, updated_at`,
		a.Title, a.Slug, a.Lead, a.Resume, a.Content, a.Image, a.Thumbnail, string(a.Status),
		a.AuthorID, a.CategoryID, a.Featured, a.Date, a.PublishedAt, a.ExpiredAt, a.Extras,
	).Scan(
		&a.ID, &a.Stats.ViewsCount, &a.Stats.CommentsCount, &a.Stats.FacebookShares,
		&a.Stats.TwitterShares, &a.Stats.LinkedinShares, &a.Stats.Score, &a.Stats.IsFirstPublish,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return err
	}
	return syncAssociations(ctx, tx, a)
}

// Update overwrites the editable columns and the associations of an existing article.
func (r *PostgresArticleRepository) Update(ctx context.Context, a *domain.Article) error {
	const op = "repository.article.Update"

	return r.inTx(ctx, op, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			UPDATE articles SET
				title = $2, slug = $3, lead = $4, resume = $5, content = $6, image = $7,
				thumbnail = $8, status = $9, author_id = $10, category_id = $11, featured = $12,
				date = $13, published_at = $14, expired_at = $15, extras = $16, updated_at = NOW()
			WHERE id = $1
			RETURNING created_at, updated_at`,
			a.ID, a.Title, a.Slug, a.Lead, a.Resume, a.Content, a.Image,
			a.Thumbnail, string(a.Status), a.AuthorID, a.CategoryID, a.Featured,
			a.Date, a.PublishedAt, a.ExpiredAt, a.Extras,
		).Scan(&a.CreatedAt, &a.UpdatedAt)
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		if err != nil {
			return err
		}
		return syncAssociations(ctx, tx, a)
	})
}

// Delete removes an article together with its tag and section rows.
func (r *PostgresArticleRepository) Delete(ctx context.Context, id int64) error {
	deleted, err := r.deleteIDs(ctx, "repository.article.Delete", []int64{id})
	if err != nil {
		return err
	}
	if len(deleted) == 0 {
		return fmt.Errorf("repository.article.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// DeleteMany removes several articles in one transaction and returns the ids
// that existed, in ascending order.
func (r *PostgresArticleRepository) DeleteMany(ctx context.Context, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.deleteIDs(ctx, "repository.article.DeleteMany", ids)
}

func (r *PostgresArticleRepository) deleteIDs(ctx context.Context, op string, ids []int64) ([]int64, error) {
	var deleted []int64
	err := r.inTx(ctx, op, func(tx pgx.Tx) error {
		// sectionables has no foreign key to articles, so its rows go explicitly.
		if _, err := tx.Exec(ctx, `
			DELETE FROM sectionables
			WHERE sectionable_type = $1 AND sectionable_id = ANY($2)`,
			domain.SectionableType, ids,
		); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM article_tag WHERE article_id = ANY($1)`, ids); err != nil {
			return err
		}
		rows, err := tx.Query(ctx, `
			WITH gone AS (DELETE FROM articles WHERE id = ANY($1) RETURNING id)
			SELECT id FROM gone ORDER BY id`, ids)
		if err != nil {
			return err
		}
		deleted, err = pgx.CollectRows(rows, pgx.RowTo[int64])
		return err
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

// GetByID returns the article with the given id or domain.ErrNotFound.
func (r *PostgresArticleRepository) GetByID(ctx context.Context, id int64) (*domain.Article, error) {
	const op = "repository.article.GetByID"

	a, err := r.queryOne(ctx, `SELECT `+articleColumns+` FROM articles a WHERE a.id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if a == nil {
		return nil, fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	return a, nil
}

// GetBySlug returns the article with the given slug or domain.ErrNotFound.
func (r *PostgresArticleRepository) GetBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	const op = "repository.article.GetBySlug"

	a, err := r.queryOne(ctx, `SELECT `+articleColumns+` FROM articles a WHERE a.slug = $1`, slug)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if a == nil {
		return nil, fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	return a, nil
}

// List returns one page of articles matching the admin filters.
func (r *PostgresArticleRepository) List(ctx context.Context, q domain.ListQuery) (domain.ArticlePage, error) {
	const op = "repository.article.List"

	var (
		conds []string
		args  []interface{}
	)
	if s := strings.TrimSpace(q.Search); s != "" {
		args = append(args, containsPattern(s))
		conds = append(conds, fmt.Sprintf(`(a.title ILIKE $%d ESCAPE '\' OR a.slug ILIKE $%d ESCAPE '\')`, len(args), len(args)))
	}
	if q.Status != "" {
		args = append(args, string(q.Status))
		conds = append(conds, fmt.Sprintf("a.status = $%d", len(args)))
	}
	if q.CategoryID != 0 {
		args = append(args, q.CategoryID)
		conds = append(conds, fmt.Sprintf("a.category_id = $%d", len(args)))
	}
	if q.Featured != nil {
		args = append(args, *q.Featured)
		conds = append(conds, fmt.Sprintf("a.featured = $%d", len(args)))
	}
	if q.Published {
		args = append(args, q.PublishedAt)
		conds = append(conds, publishedPredicate(len(args)))
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}
	order := " ORDER BY a.id ASC"
	if q.OrderDesc {
		order = " ORDER BY a.id DESC"
	}

	return r.page(ctx, op, where, order, args, q.Page, q.PerPage)
}

// ListPublished returns one page of articles published at now, newest first.
func (r *PostgresArticleRepository) ListPublished(ctx context.Context, now time.Time, page, perPage int) (domain.ArticlePage, error) {
	return r.page(ctx, "repository.article.ListPublished",
		" WHERE "+publishedPredicate(1),
		" ORDER BY a.published_at DESC, a.id DESC",
		[]interface{}{now}, page, perPage)
}

func (r *PostgresArticleRepository) page(ctx context.Context, op, where, order string, args []interface{}, page, perPage int) (domain.ArticlePage, error) {
	if page < 1 {
		page = 1
	}
	result := domain.ArticlePage{Page: page, PerPage: perPage, Items: []domain.Article{}}

	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM articles a`+where, args...).Scan(&result.Total); err != nil {
		return result, fmt.Errorf("%s: count: %w", op, err)
	}
	if result.Total == 0 {
		return result, nil
	}

	n := len(args)
	query := `SELECT ` + articleColumns + ` FROM articles a` + where + order +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", n+1, n+2)
	args = append(args, perPage, (page-1)*perPage)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return result, fmt.Errorf("%s: query: %w", op, err)
	}
	defer rows.Close()

	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return result, fmt.Errorf("%s: %w", op, err)
		}
		result.Items = append(result.Items, *a)
	}
	if err := rows.Err(); err != nil {
		return result, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// SlugExists reports whether another article already uses slug.
func (r *PostgresArticleRepository) SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM articles WHERE slug = $1 AND id <> $2)`,
		slug, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("repository.article.SlugExists: %w", err)
	}
	return exists, nil
}

// Earliest returns the published article with the smallest (published_at, id).
func (r *PostgresArticleRepository) Earliest(ctx context.Context, now time.Time) (*domain.Article, error) {
	return r.navigate(ctx, "repository.article.Earliest",
		`SELECT `+articleColumns+` FROM articles a
		WHERE `+publishedPredicate(1)+`
		ORDER BY a.published_at ASC, a.id ASC
		LIMIT 1`, now)
}

// Latest returns the published article with the largest (published_at, id).
func (r *PostgresArticleRepository) Latest(ctx context.Context, now time.Time) (*domain.Article, error) {
	return r.navigate(ctx, "repository.article.Latest",
		`SELECT `+articleColumns+` FROM articles a
		WHERE `+publishedPredicate(1)+`
		ORDER BY a.published_at DESC, a.id DESC
		LIMIT 1`, now)
}

// Previous returns the published article immediately before current in (published_at, id) order.
func (r *PostgresArticleRepository) Previous(ctx context.Context, current *domain.Article, now time.Time) (*domain.Article, error) {
	return r.navigate(ctx, "repository.article.Previous",
		`SELECT `+articleColumns+` FROM articles a
		WHERE `+publishedPredicate(1)+`
		  AND (a.published_at, a.id) < ($2::timestamptz, $3::bigint)
		ORDER BY a.published_at DESC, a.id DESC
		LIMIT 1`, now, current.PublishedAt, current.ID)
}

// Next returns the published article immediately after current in (published_at, id) order.
func (r *PostgresArticleRepository) Next(ctx context.Context, current *domain.Article, now time.Time) (*domain.Article, error) {
	return r.navigate(ctx, "repository.article.Next",
		`SELECT `+articleColumns+` FROM articles a
		WHERE `+publishedPredicate(1)+`
		  AND (a.published_at, a.id) > ($2::timestamptz, $3::bigint)
		ORDER BY a.published_at ASC, a.id ASC
		LIMIT 1`, now, current.PublishedAt, current.ID)
}

func (r *PostgresArticleRepository) navigate(ctx context.Context, op, query string, args ...interface{}) (*domain.Article, error) {
	a, err := r.queryOne(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return a, nil
}

// StreamAll streams all articles ordered by id.
func (r *PostgresArticleRepository) StreamAll(ctx context.Context, callback func(domain.Article) error) error {
	rows, err := r.pool.Query(ctx, `SELECT `+articleColumns+` FROM articles a ORDER BY a.id`)
	if err != nil {
		return fmt.Errorf("query articles: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return err
		}

		if err := callback(*a); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("callback error: %w", err)
		}
	}

	return rows.Err()
}

// queryOne returns nil, nil when the query yields no row.
func (r *PostgresArticleRepository) queryOne(ctx context.Context, query string, args ...interface{}) (*domain.Article, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	return scanArticle(rows)
}

func (r *PostgresArticleRepository) inTx(ctx context.Context, op string, fn func(tx pgx.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: begin transaction: %w", op, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, err)
		}
		return mapPgError(op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: commit transaction: %w", op, err)
	}
	return nil
}

// syncAssociations makes article_tag and the live sectionables rows match
// a.TagIDs and a.SectionIDs. Detached sections are soft-deleted and
// re-attaching one restores its row.
func syncAssociations(ctx context.Context, tx pgx.Tx, a *domain.Article) error {
	tagIDs := a.TagIDs
	if tagIDs == nil {
		tagIDs = []int64{}
	}
	sectionIDs := a.SectionIDs
	if sectionIDs == nil {
		sectionIDs = []int64{}
	}

	if _, err := tx.Exec(ctx, `
		DELETE FROM article_tag
		WHERE article_id = $1 AND NOT (tag_id = ANY($2))`,
		a.ID, tagIDs,
	); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `
		INSERT INTO article_tag (article_id, tag_id, created_at, updated_at)
		SELECT $1::bigint, tag_id, NOW(), NOW() FROM unnest($2::bigint[]) AS tag_id
		ON CONFLICT (article_id, tag_id) DO NOTHING`,
		a.ID, tagIDs,
	); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `
		UPDATE sectionables SET deleted_at = NOW(), updated_at = NOW()
		WHERE sectionable_type = $1 AND sectionable_id = $2
		  AND deleted_at IS NULL AND NOT (section_id = ANY($3))`,
		domain.SectionableType, a.ID, sectionIDs,
	); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `
		INSERT INTO sectionables (section_id, sectionable_id, sectionable_type, created_at, updated_at)
		SELECT section_id, $2::bigint, $1::varchar, NOW(), NOW() FROM unnest($3::bigint[]) AS section_id
		ON CONFLICT (section_id, sectionable_id, sectionable_type)
		DO UPDATE SET deleted_at = NULL, updated_at = NOW()
		WHERE sectionables.deleted_at IS NOT NULL`,
		domain.SectionableType, a.ID, sectionIDs,
	); err != nil {
		return err
	}
	return nil
}

func scanArticle(row pgx.Row) (*domain.Article, error) {
	var (
		a      domain.Article
		status string
	)
	err := row.Scan(
		&a.ID, &a.Title, &a.Slug, &a.Lead, &a.Resume, &a.Content, &a.Image, &a.Thumbnail,
		&status, &a.AuthorID, &a.CategoryID, &a.Featured, &a.Date, &a.PublishedAt, &a.ExpiredAt,
		&a.Extras, &a.Stats.ViewsCount, &a.Stats.CommentsCount, &a.Stats.FacebookShares, &a.Stats.TwitterShares,
		&a.Stats.LinkedinShares, &a.Stats.Score, &a.Stats.IsFirstPublish, &a.CreatedAt, &a.UpdatedAt,
		&a.TagIDs, &a.SectionIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("scan article: %w", err)
	}
	a.Status = domain.Status(status)
	return &a, nil
}
