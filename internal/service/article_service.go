package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"news-crud/internal/audit"
	"news-crud/internal/domain"
	"news-crud/internal/event"
	"news-crud/internal/logger"
	"news-crud/internal/metrics"
	"news-crud/internal/repository"
	"news-crud/internal/slug"
	"news-crud/internal/validator"
)

const (
	// MaxSlugRetries bounds how often a write is retried after a concurrent slug collision.
	MaxSlugRetries = 3

	// SideEffectTimeout bounds audit and event delivery after a commit.
	SideEffectTimeout = 5 * time.Second

	// CloneSuffix is appended to the title of cloned articles.
	CloneSuffix = " (copy)"

	maxTitleLength = 255
)

// ArticleService implements the admin and public article operations.
type ArticleService struct {
	repo      repository.ArticleRepository
	validator *validator.Validator
	publisher event.Publisher
	recorder  audit.Recorder

	defaultPerPage int
	maxPerPage     int
	clock          func() time.Time
}

// NewArticleService creates a new ArticleService.
// A nil publisher or recorder disables that side effect.
func NewArticleService(
	repo repository.ArticleRepository,
	v *validator.Validator,
	publisher event.Publisher,
	recorder audit.Recorder,
	defaultPerPage int,
	maxPerPage int,
) *ArticleService {
	if publisher == nil {
		publisher = event.NopPublisher{}
	}
	if recorder == nil {
		recorder = audit.NopRecorder{}
	}
	return &ArticleService{
		repo:           repo,
		validator:      v,
		publisher:      publisher,
		recorder:       recorder,
		defaultPerPage: defaultPerPage,
		maxPerPage:     maxPerPage,
		clock:          time.Now,
	}
}

// SetClock replaces the time source. Intended for tests.
func (s *ArticleService) SetClock(clock func() time.Time) {
	s.clock = clock
}

// now is truncated to the precision of timestamptz so the in-process
// publication check and the SQL predicate see the same instant.
func (s *ArticleService) now() time.Time {
	return s.clock().UTC().Truncate(time.Microsecond)
}

// Create validates the form, derives a unique slug and stores the article.
func (s *ArticleService) Create(ctx context.Context, in *domain.ArticleInput) (*domain.Article, error) {
	const op = "create"
	timer := metrics.NewTimer()

	now := s.now()
	if err := s.validator.ValidateArticleInput(in, now); err != nil {
		s.observe(op, timer, err, 0)
		return nil, err
	}

	a := &domain.Article{}
	in.Apply(a, now)

	if err := s.writeWithSlug(ctx, a, a.SlugOrTitle(), s.repo.Create); err != nil {
		s.observe(op, timer, err, 0)
		return nil, fmt.Errorf("service.article.Create: %w", err)
	}

	s.observe(op, timer, nil, 1)
	logger.FromContext(ctx).Info("Article created",
		slog.Int64("article_id", a.ID),
		slog.String("slug", a.Slug))

	s.afterCommit(ctx, audit.OpCreate, event.ActionCreated, a.ID, nil, a)
	return a, nil
}

// Update replaces the editable fields and associations of an existing article.
// Empty date and published_at keep their stored values.
func (s *ArticleService) Update(ctx context.Context, id int64, in *domain.ArticleInput) (*domain.Article, error) {
	const op = "update"
	timer := metrics.NewTimer()

	before, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.observe(op, timer, err, 0)
		return nil, err
	}

	if err := s.validator.ValidateArticleInput(in, before.PublishedAt); err != nil {
		s.observe(op, timer, err, 0)
		return nil, err
	}

	a := *before
	in.Apply(&a, s.now())
	if in.Date == nil {
		a.Date = before.Date
	}
	if in.PublishedAt == nil {
		a.PublishedAt = before.PublishedAt
	}

	if err := s.writeWithSlug(ctx, &a, a.SlugOrTitle(), s.repo.Update); err != nil {
		s.observe(op, timer, err, 0)
		return nil, fmt.Errorf("service.article.Update: %w", err)
	}

	s.observe(op, timer, nil, 1)
	logger.FromContext(ctx).Info("Article updated", slog.Int64("article_id", a.ID))

	s.afterCommit(ctx, audit.OpUpdate, event.ActionUpdated, a.ID, before, &a)
	return &a, nil
}

// Get returns one article regardless of its publication state.
func (s *ArticleService) Get(ctx context.Context, id int64) (*domain.Article, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns one page of articles for the admin list.
func (s *ArticleService) List(ctx context.Context, q domain.ListQuery) (domain.ArticlePage, error) {
	q.Page, q.PerPage = s.paging(q.Page, q.PerPage)
	if q.Published {
		q.PublishedAt = s.now()
	}
	return s.repo.List(ctx, q)
}

// Delete removes an article and its tag and section rows.
func (s *ArticleService) Delete(ctx context.Context, id int64) error {
	const op = "delete"
	timer := metrics.NewTimer()

	if err := s.repo.Delete(ctx, id); err != nil {
		s.observe(op, timer, err, 0)
		return err
	}

	s.observe(op, timer, nil, 1)
	logger.FromContext(ctx).Info("Article deleted", slog.Int64("article_id", id))

	s.afterCommit(ctx, audit.OpDelete, event.ActionDeleted, id, nil, nil)
	return nil
}

// BulkDelete removes several articles in one transaction and returns how many existed.
func (s *ArticleService) BulkDelete(ctx context.Context, ids []int64) (int, error) {
	const op = "bulk_delete"
	timer := metrics.NewTimer()

	if err := s.validator.ValidateEntries(ids); err != nil {
		s.observe(op, timer, err, 0)
		return 0, err
	}

	deleted, err := s.repo.DeleteMany(ctx, ids)
	if err != nil {
		s.observe(op, timer, err, 0)
		return 0, fmt.Errorf("service.article.BulkDelete: %w", err)
	}

	s.observe(op, timer, nil, len(deleted))
	logger.FromContext(ctx).Info("Articles deleted",
		slog.Int("requested", len(ids)),
		slog.Int("deleted", len(deleted)))

	for _, id := range deleted {
		s.afterCommit(ctx, audit.OpDelete, event.ActionDeleted, id, nil, nil)
	}
	return len(deleted), nil
}

// Clone stores a draft copy of an article with a fresh slug.
func (s *ArticleService) Clone(ctx context.Context, id int64) (*domain.Article, error) {
	const op = "clone"
	timer := metrics.NewTimer()

	src, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.observe(op, timer, err, 0)
		return nil, err
	}

	c := cloneOf(src)
	if err := s.writeWithSlug(ctx, c, c.Title, s.repo.Create); err != nil {
		s.observe(op, timer, err, 0)
		return nil, fmt.Errorf("service.article.Clone: %w", err)
	}

	s.observe(op, timer, nil, 1)
	logger.FromContext(ctx).Info("Article cloned",
		slog.Int64("source_id", src.ID),
		slog.Int64("article_id", c.ID))

	s.afterCommit(ctx, audit.OpClone, event.ActionCreated, c.ID, nil, c)
	return c, nil
}

// BulkClone stores draft copies of several articles in one transaction.
// Every id must exist; otherwise nothing is written.
func (s *ArticleService) BulkClone(ctx context.Context, ids []int64) ([]domain.Article, error) {
	const op = "bulk_clone"
	timer := metrics.NewTimer()

	if err := s.validator.ValidateEntries(ids); err != nil {
		s.observe(op, timer, err, 0)
		return nil, err
	}

	clones := make([]*domain.Article, 0, len(ids))
	for _, id := range ids {
		src, err := s.repo.GetByID(ctx, id)
		if err != nil {
			s.observe(op, timer, err, 0)
			return nil, err
		}
		clones = append(clones, cloneOf(src))
	}

	var err error
	for attempt := 0; attempt <= MaxSlugRetries; attempt++ {
		if attempt > 0 {
			metrics.SlugRetriesTotal.Inc()
		}
		if err = s.assignBatchSlugs(ctx, clones); err != nil {
			break
		}
		err = s.repo.CreateMany(ctx, clones)
		if !errors.Is(err, domain.ErrSlugConflict) {
			break
		}
	}
	if err != nil {
		s.observe(op, timer, err, 0)
		return nil, fmt.Errorf("service.article.BulkClone: %w", err)
	}

	s.observe(op, timer, nil, len(clones))
	logger.FromContext(ctx).Info("Articles cloned", slog.Int("count", len(clones)))

	out := make([]domain.Article, 0, len(clones))
	for _, c := range clones {
		s.afterCommit(ctx, audit.OpClone, event.ActionCreated, c.ID, nil, c)
		out = append(out, *c)
	}
	return out, nil
}

// History returns the audit trail of an article, newest first.
func (s *ArticleService) History(ctx context.Context, id int64, limit int) ([]audit.Entry, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	entries, err := s.recorder.History(ctx, audit.EntityArticle, id, limit)
	if err != nil {
		return nil, fmt.Errorf("service.article.History: %w", err)
	}
	return entries, nil
}

// writeWithSlug assigns a unique slug derived from source and runs write.
// A unique violation raised by a concurrent writer triggers a fresh slug and another attempt.
func (s *ArticleService) writeWithSlug(ctx context.Context, a *domain.Article, source string, write func(context.Context, *domain.Article) error) error {
	gen := slug.NewGenerator(s.repo.SlugExists)

	var err error
	for attempt := 0; attempt <= MaxSlugRetries; attempt++ {
		if attempt > 0 {
			metrics.SlugRetriesTotal.Inc()
			logger.FromContext(ctx).Warn("Slug taken concurrently, retrying",
				slog.String("slug", a.Slug),
				slog.Int("attempt", attempt))
		}

		a.Slug, err = gen.Unique(ctx, source, a.ID)
		if err != nil {
			return err
		}

		err = write(ctx, a)
		if !errors.Is(err, domain.ErrSlugConflict) {
			return err
		}
	}
	return err
}

// assignBatchSlugs gives every clone a slug that is free both in the store
// and among the other clones of the batch.
func (s *ArticleService) assignBatchSlugs(ctx context.Context, clones []*domain.Article) error {
	taken := make(map[string]bool, len(clones))
	gen := slug.NewGenerator(func(ctx context.Context, candidate string, excludeID int64) (bool, error) {
		if taken[candidate] {
			return true, nil
		}
		return s.repo.SlugExists(ctx, candidate, excludeID)
	})

	for _, c := range clones {
		sl, err := gen.Unique(ctx, c.Title, 0)
		if err != nil {
			return err
		}
		c.Slug = sl
		taken[sl] = true
	}
	return nil
}

// afterCommit records the audit entry and publishes the lifecycle event.
// Failures are logged and counted; the committed write stands.
func (s *ArticleService) afterCommit(ctx context.Context, auditOp, action string, id int64, before, after *domain.Article) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), SideEffectTimeout)
	defer cancel()

	log := logger.FromContext(ctx).With(slog.Int64("article_id", id))

	entry := audit.Entry{
		Operation: auditOp,
		Entity:    audit.EntityArticle,
		EntityID:  id,
		RequestID: logger.RequestIDFromContext(ctx),
		Actor:     domain.ActorFromContext(ctx),
		At:        s.now(),
		Changes:   audit.Diff(before, after),
	}
	err := s.recorder.Record(ctx, entry)
	metrics.ObserveSideEffect("audit", err)
	if err != nil {
		log.Error("Failed to record audit entry", slog.String("error", err.Error()))
	}

	err = s.publisher.Publish(ctx, action, id, after)
	metrics.ObserveSideEffect("event", err)
	if err != nil {
		log.Error("Failed to publish article event", slog.String("error", err.Error()))
	}
}

func (s *ArticleService) observe(op string, timer *metrics.Timer, err error, affected int) {
	result := "success"
	switch {
	case err == nil:
	case validator.IsValidationError(err):
		result = "invalid"
	case errors.Is(err, domain.ErrNotFound):
		result = "not_found"
	default:
		result = "error"
	}
	metrics.ObserveArticleOperation(op, result, timer.Seconds(), affected)
}

func (s *ArticleService) paging(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = s.defaultPerPage
	}
	if perPage > s.maxPerPage {
		perPage = s.maxPerPage
	}
	return page, perPage
}

// cloneOf copies src into a new unsaved draft.
func cloneOf(src *domain.Article) *domain.Article {
	c := *src
	c.ID = 0
	c.Slug = ""
	c.Status = domain.StatusDraft
	c.Title = truncateRunes(src.Title, maxTitleLength-utf8.RuneCountInString(CloneSuffix)) + CloneSuffix
	c.Stats = domain.Stats{}
	c.TagIDs = append([]int64(nil), src.TagIDs...)
	c.SectionIDs = append([]int64(nil), src.SectionIDs...)
	if src.ExpiredAt != nil {
		expiredAt := *src.ExpiredAt
		c.ExpiredAt = &expiredAt
	}
	return &c
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
