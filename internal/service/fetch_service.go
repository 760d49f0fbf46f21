package service

import (
	"context"
	"fmt"
	"strings"

	"news-crud/internal/domain"
	"news-crud/internal/repository"
)

// FetchService answers the option lookups of the category and tag widgets.
type FetchService struct {
	repo    repository.TaxonomyRepository
	perPage int
}

// NewFetchService creates a new FetchService returning perPage options per page.
func NewFetchService(repo repository.TaxonomyRepository, perPage int) *FetchService {
	return &FetchService{repo: repo, perPage: perPage}
}

// FetchCategories returns categories whose name contains q.
func (s *FetchService) FetchCategories(ctx context.Context, q string, page int) (domain.OptionPage, error) {
	return s.fetch(ctx, q, page, s.repo.SearchCategories)
}

// FetchTags returns tags whose name contains q.
func (s *FetchService) FetchTags(ctx context.Context, q string, page int) (domain.OptionPage, error) {
	return s.fetch(ctx, q, page, s.repo.SearchTags)
}

type searchFunc func(ctx context.Context, term string, limit, offset int) ([]domain.Option, int, error)

func (s *FetchService) fetch(ctx context.Context, q string, page int, search searchFunc) (domain.OptionPage, error) {
	if page < 1 {
		page = 1
	}

	items, total, err := search(ctx, strings.TrimSpace(q), s.perPage, (page-1)*s.perPage)
	if err != nil {
		return domain.OptionPage{}, fmt.Errorf("service.fetch: %w", err)
	}
	if items == nil {
		items = []domain.Option{}
	}

	lastPage := (total + s.perPage - 1) / s.perPage
	if lastPage < 1 {
		lastPage = 1
	}

	return domain.OptionPage{
		Items:    items,
		Page:     page,
		PerPage:  s.perPage,
		Total:    total,
		LastPage: lastPage,
	}, nil
}
