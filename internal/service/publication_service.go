package service

import (
	"context"
	"fmt"
	"time"

	"news-crud/internal/domain"
	"news-crud/internal/metrics"
	"news-crud/internal/repository"
)

// PublicationService serves the public reads over published articles.
// Navigation follows (published_at, id) so ties on the publication instant
// still give a total order.
type PublicationService struct {
	repo           repository.ArticleRepository
	defaultPerPage int
	maxPerPage     int
	clock          func() time.Time
}

// NewPublicationService creates a new PublicationService.
func NewPublicationService(repo repository.ArticleRepository, defaultPerPage, maxPerPage int) *PublicationService {
	return &PublicationService{
		repo:           repo,
		defaultPerPage: defaultPerPage,
		maxPerPage:     maxPerPage,
		clock:          time.Now,
	}
}

// SetClock replaces the time source. Intended for tests.
func (s *PublicationService) SetClock(clock func() time.Time) {
	s.clock = clock
}

func (s *PublicationService) now() time.Time {
	return s.clock().UTC().Truncate(time.Microsecond)
}

// ListPublished returns one page of articles visible at the current instant, newest first.
func (s *PublicationService) ListPublished(ctx context.Context, page, perPage int) (domain.ArticlePage, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = s.defaultPerPage
	}
	if perPage > s.maxPerPage {
		perPage = s.maxPerPage
	}
	return s.repo.ListPublished(ctx, s.now(), page, perPage)
}

// GetPublishedBySlug returns the article only while it is publicly visible.
func (s *PublicationService) GetPublishedBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	return s.publishedBySlug(ctx, slug, s.now())
}

// Earliest returns the first published article, or nil when none is visible.
func (s *PublicationService) Earliest(ctx context.Context) (*domain.Article, error) {
	timer := metrics.NewTimer()
	a, err := s.repo.Earliest(ctx, s.now())
	return s.navigated("earliest", timer, a, err)
}

// Latest returns the most recently published article, or nil when none is visible.
func (s *PublicationService) Latest(ctx context.Context) (*domain.Article, error) {
	timer := metrics.NewTimer()
	a, err := s.repo.Latest(ctx, s.now())
	return s.navigated("latest", timer, a, err)
}

// Previous returns the published article immediately before the one identified by slug.
// The current article must itself be visible.
func (s *PublicationService) Previous(ctx context.Context, slug string) (*domain.Article, error) {
	timer := metrics.NewTimer()
	now := s.now()

	current, err := s.publishedBySlug(ctx, slug, now)
	if err != nil {
		return nil, err
	}

	a, err := s.repo.Previous(ctx, current, now)
	return s.navigated("previous", timer, a, err)
}

// Next returns the published article immediately after the one identified by slug.
// The current article must itself be visible.
func (s *PublicationService) Next(ctx context.Context, slug string) (*domain.Article, error) {
	timer := metrics.NewTimer()
	now := s.now()

	current, err := s.publishedBySlug(ctx, slug, now)
	if err != nil {
		return nil, err
	}

	a, err := s.repo.Next(ctx, current, now)
	return s.navigated("next", timer, a, err)
}

func (s *PublicationService) publishedBySlug(ctx context.Context, slug string, now time.Time) (*domain.Article, error) {
	a, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !a.IsPublishedAt(now) {
		return nil, domain.ErrNotFound
	}
	return a, nil
}

func (s *PublicationService) navigated(direction string, timer *metrics.Timer, a *domain.Article, err error) (*domain.Article, error) {
	if err != nil {
		return nil, fmt.Errorf("service.publication.%s: %w", direction, err)
	}
	metrics.ObserveNavigation(direction, a != nil, timer.Seconds())
	return a, nil
}
