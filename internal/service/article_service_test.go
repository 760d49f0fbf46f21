package service_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"news-crud/internal/audit"
	"news-crud/internal/domain"
	"news-crud/internal/event"
	"news-crud/internal/logger"
	"news-crud/internal/mocks"
	"news-crud/internal/service"
	"news-crud/internal/validator"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type articleServiceDeps struct {
	repo      *mocks.MockArticleRepository
	publisher *mocks.MockPublisher
	recorder  *mocks.MockRecorder
	svc       *service.ArticleService
}

func newArticleService(t *testing.T) articleServiceDeps {
	d := articleServiceDeps{
		repo:      mocks.NewMockArticleRepository(t),
		publisher: mocks.NewMockPublisher(t),
		recorder:  mocks.NewMockRecorder(t),
	}
	d.svc = service.NewArticleService(d.repo, validator.NewValidator(), d.publisher, d.recorder, 25, 100)
	d.svc.SetClock(func() time.Time { return fixedNow })
	return d
}

func (d articleServiceDeps) expectSideEffects(op, action string) {
	d.recorder.EXPECT().
		Record(mock.Anything, mock.MatchedBy(func(e audit.Entry) bool { return e.Operation == op })).
		Return(nil)
	d.publisher.EXPECT().
		Publish(mock.Anything, action, mock.Anything, mock.Anything).
		Return(nil)
}

func articleInput() *domain.ArticleInput {
	return &domain.ArticleInput{
		Title:      "Hello World",
		Content:    "Body",
		Status:     domain.StatusPublished,
		AuthorID:   1,
		CategoryID: 2,
		TagIDs:     []int64{3, 3, 4},
		SectionIDs: []int64{5},
	}
}

func TestArticleService_Create(t *testing.T) {
	t.Run("derives slug from title and fills defaults", func(t *testing.T) {
		d := newArticleService(t)

		d.repo.EXPECT().SlugExists(mock.Anything, "hello-world", int64(0)).Return(false, nil)
		d.repo.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*domain.Article")).
			RunAndReturn(func(ctx context.Context, a *domain.Article) error {
				a.ID = 10
				return nil
			})

		var entry audit.Entry
		d.recorder.EXPECT().
			Record(mock.Anything, mock.Anything).
			Run(func(ctx context.Context, e audit.Entry) { entry = e }).
			Return(nil)
		d.publisher.EXPECT().
			Publish(mock.Anything, event.ActionCreated, int64(10), mock.AnythingOfType("*domain.Article")).
			Return(nil)

		ctx := logger.ContextWithRequestID(context.Background(), "req-1")
		ctx = domain.ContextWithActor(ctx, "editor")

		a, err := d.svc.Create(ctx, articleInput())
		require.NoError(t, err)
		assert.Equal(t, int64(10), a.ID)
		assert.Equal(t, "hello-world", a.Slug)
		assert.Equal(t, fixedNow, a.PublishedAt)
		assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), a.Date)
		assert.Equal(t, []int64{3, 4}, a.TagIDs)

		assert.Equal(t, audit.OpCreate, entry.Operation)
		assert.Equal(t, int64(10), entry.EntityID)
		assert.Equal(t, "req-1", entry.RequestID)
		assert.Equal(t, "editor", entry.Actor)
		assert.Contains(t, entry.Changes, "title")
	})

	t.Run("explicit slug gets a suffix when taken", func(t *testing.T) {
		d := newArticleService(t)
		in := articleInput()
		in.Slug = "breaking"

		d.repo.EXPECT().SlugExists(mock.Anything, "breaking", int64(0)).Return(true, nil)
		d.repo.EXPECT().SlugExists(mock.Anything, "breaking-2", int64(0)).Return(false, nil)
		d.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
		d.expectSideEffects(audit.OpCreate, event.ActionCreated)

		a, err := d.svc.Create(context.Background(), in)
		require.NoError(t, err)
		assert.Equal(t, "breaking-2", a.Slug)
	})

	t.Run("title matching a public route gets a suffix", func(t *testing.T) {
		d := newArticleService(t)
		in := articleInput()
		in.Title = "Latest"

		d.repo.EXPECT().SlugExists(mock.Anything, "latest-2", int64(0)).Return(false, nil)
		d.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
		d.expectSideEffects(audit.OpCreate, event.ActionCreated)

		a, err := d.svc.Create(context.Background(), in)
		require.NoError(t, err)
		assert.Equal(t, "latest-2", a.Slug)
	})

	t.Run("retries after a concurrent slug conflict", func(t *testing.T) {
		d := newArticleService(t)

		d.repo.EXPECT().SlugExists(mock.Anything, "hello-world", int64(0)).Return(false, nil).Once()
		d.repo.EXPECT().SlugExists(mock.Anything, "hello-world", int64(0)).Return(true, nil).Once()
		d.repo.EXPECT().SlugExists(mock.Anything, "hello-world-2", int64(0)).Return(false, nil).Once()
		d.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrSlugConflict).Once()
		d.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
		d.expectSideEffects(audit.OpCreate, event.ActionCreated)

		a, err := d.svc.Create(context.Background(), articleInput())
		require.NoError(t, err)
		assert.Equal(t, "hello-world-2", a.Slug)
	})

	t.Run("gives up after repeated conflicts", func(t *testing.T) {
		d := newArticleService(t)

		d.repo.EXPECT().SlugExists(mock.Anything, mock.Anything, int64(0)).Return(false, nil)
		d.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrSlugConflict).Times(service.MaxSlugRetries + 1)

		_, err := d.svc.Create(context.Background(), articleInput())
		assert.ErrorIs(t, err, domain.ErrSlugConflict)
	})

	t.Run("validation error stops before the store", func(t *testing.T) {
		d := newArticleService(t)
		in := articleInput()
		in.Title = ""

		_, err := d.svc.Create(context.Background(), in)
		require.Error(t, err)
		assert.True(t, validator.IsValidationError(err))
		assert.Equal(t, "title_required", validator.ConvertValidationErrors(err)["title"])
	})

	t.Run("invalid reference is passed through", func(t *testing.T) {
		d := newArticleService(t)

		d.repo.EXPECT().SlugExists(mock.Anything, "hello-world", int64(0)).Return(false, nil)
		d.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrInvalidReference)

		_, err := d.svc.Create(context.Background(), articleInput())
		assert.ErrorIs(t, err, domain.ErrInvalidReference)
	})

	t.Run("side effect failures do not fail the write", func(t *testing.T) {
		d := newArticleService(t)

		d.repo.EXPECT().SlugExists(mock.Anything, "hello-world", int64(0)).Return(false, nil)
		d.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
		d.recorder.EXPECT().Record(mock.Anything, mock.Anything).Return(errors.New("mongo down"))
		d.publisher.EXPECT().Publish(mock.Anything, event.ActionCreated, mock.Anything, mock.Anything).Return(errors.New("broker down"))

		var logs bytes.Buffer
		prev := logger.GetLogger()
		logger.SetLogger(logger.New(&logs, "debug"))
		defer logger.SetLogger(prev)

		a, err := d.svc.Create(context.Background(), articleInput())
		require.NoError(t, err)
		assert.NotNil(t, a)

		assert.Equal(t, 1, strings.Count(logs.String(), `"msg":"Failed to publish article event"`))
		assert.Equal(t, 1, strings.Count(logs.String(), `"msg":"Failed to record audit entry"`))
		assert.Contains(t, logs.String(), `"level":"ERROR","msg":"Failed to publish article event"`)
	})
}

func TestArticleService_Update(t *testing.T) {
	publishedAt := time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)
	date := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	existing := func() *domain.Article {
		return &domain.Article{
			ID:          7,
			Title:       "Old Title",
			Slug:        "old-title",
			Status:      domain.StatusPublished,
			AuthorID:    1,
			CategoryID:  2,
			Date:        date,
			PublishedAt: publishedAt,
			TagIDs:      []int64{3},
			Stats:       domain.Stats{ViewsCount: 42},
		}
	}

	t.Run("keeps stored dates when the form leaves them empty", func(t *testing.T) {
		d := newArticleService(t)
		in := articleInput()
		in.Slug = "old-title"

		d.repo.EXPECT().GetByID(mock.Anything, int64(7)).Return(existing(), nil)
		d.repo.EXPECT().SlugExists(mock.Anything, "old-title", int64(7)).Return(false, nil)
		d.repo.EXPECT().Update(mock.Anything, mock.AnythingOfType("*domain.Article")).Return(nil)

		var entry audit.Entry
		d.recorder.EXPECT().
			Record(mock.Anything, mock.Anything).
			Run(func(ctx context.Context, e audit.Entry) { entry = e }).
			Return(nil)
		d.publisher.EXPECT().Publish(mock.Anything, event.ActionUpdated, int64(7), mock.Anything).Return(nil)

		a, err := d.svc.Update(context.Background(), 7, in)
		require.NoError(t, err)
		assert.Equal(t, publishedAt, a.PublishedAt)
		assert.Equal(t, date, a.Date)
		assert.Equal(t, "Hello World", a.Title)
		assert.Equal(t, 42, a.Stats.ViewsCount)

		assert.Equal(t, audit.OpUpdate, entry.Operation)
		assert.Equal(t, "Old Title", entry.Changes["title"].From)
		assert.Equal(t, "Hello World", entry.Changes["title"].To)
		assert.NotContains(t, entry.Changes, "published_at")
	})

	t.Run("expiry is checked against the stored publication", func(t *testing.T) {
		d := newArticleService(t)
		in := articleInput()
		expiredAt := publishedAt.Add(-time.Hour)
		in.ExpiredAt = &expiredAt

		d.repo.EXPECT().GetByID(mock.Anything, int64(7)).Return(existing(), nil)

		_, err := d.svc.Update(context.Background(), 7, in)
		require.Error(t, err)
		assert.Equal(t, "expired_at_not_after_published_at", validator.ConvertValidationErrors(err)["expired_at"])
	})

	t.Run("missing article", func(t *testing.T) {
		d := newArticleService(t)

		d.repo.EXPECT().GetByID(mock.Anything, int64(99)).Return(nil, domain.ErrNotFound)

		_, err := d.svc.Update(context.Background(), 99, articleInput())
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestArticleService_List(t *testing.T) {
	d := newArticleService(t)

	d.repo.EXPECT().
		List(mock.Anything, domain.ListQuery{Page: 1, PerPage: 100, Search: "go"}).
		Return(domain.ArticlePage{Page: 1, PerPage: 100}, nil)

	page, err := d.svc.List(context.Background(), domain.ListQuery{Page: -3, PerPage: 5000, Search: "go"})
	require.NoError(t, err)
	assert.Equal(t, 100, page.PerPage)
}

func TestArticleService_Delete(t *testing.T) {
	t.Run("publishes a deletion without payload", func(t *testing.T) {
		d := newArticleService(t)

		d.repo.EXPECT().Delete(mock.Anything, int64(7)).Return(nil)
		d.recorder.EXPECT().
			Record(mock.Anything, mock.MatchedBy(func(e audit.Entry) bool {
				return e.Operation == audit.OpDelete && e.EntityID == 7 && e.Changes == nil
			})).
			Return(nil)
		d.publisher.EXPECT().Publish(mock.Anything, event.ActionDeleted, int64(7), (*domain.Article)(nil)).Return(nil)

		require.NoError(t, d.svc.Delete(context.Background(), 7))
	})

	t.Run("missing article", func(t *testing.T) {
		d := newArticleService(t)

		d.repo.EXPECT().Delete(mock.Anything, int64(7)).Return(domain.ErrNotFound)

		assert.ErrorIs(t, d.svc.Delete(context.Background(), 7), domain.ErrNotFound)
	})
}

func TestArticleService_BulkDelete(t *testing.T) {
	t.Run("deletes the existing entries", func(t *testing.T) {
		d := newArticleService(t)

		d.repo.EXPECT().DeleteMany(mock.Anything, []int64{1, 2, 3}).Return([]int64{1, 3}, nil)
		d.recorder.EXPECT().Record(mock.Anything, mock.Anything).Return(nil).Times(2)
		d.publisher.EXPECT().Publish(mock.Anything, event.ActionDeleted, int64(1), (*domain.Article)(nil)).Return(nil).Once()
		d.publisher.EXPECT().Publish(mock.Anything, event.ActionDeleted, int64(3), (*domain.Article)(nil)).Return(nil).Once()

		n, err := d.svc.BulkDelete(context.Background(), []int64{1, 2, 3})
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("nothing deleted emits nothing", func(t *testing.T) {
		d := newArticleService(t)

		d.repo.EXPECT().DeleteMany(mock.Anything, []int64{8, 9}).Return(nil, nil)

		n, err := d.svc.BulkDelete(context.Background(), []int64{8, 9})
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("rejects an empty selection", func(t *testing.T) {
		d := newArticleService(t)

		_, err := d.svc.BulkDelete(context.Background(), nil)
		require.Error(t, err)
		assert.Equal(t, "entries_required", validator.ConvertValidationErrors(err)["entries"])
	})
}

func TestArticleService_Clone(t *testing.T) {
	source := func(id int64, title string) *domain.Article {
		expiredAt := fixedNow.Add(24 * time.Hour)
		return &domain.Article{
			ID:          id,
			Title:       title,
			Slug:        "source",
			Status:      domain.StatusPublished,
			AuthorID:    1,
			CategoryID:  2,
			PublishedAt: fixedNow,
			ExpiredAt:   &expiredAt,
			TagIDs:      []int64{3, 4},
			SectionIDs:  []int64{5},
			Stats:       domain.Stats{ViewsCount: 10, Score: 3},
		}
	}

	t.Run("stores a draft copy", func(t *testing.T) {
		d := newArticleService(t)
		src := source(7, "Hello")

		d.repo.EXPECT().GetByID(mock.Anything, int64(7)).Return(src, nil)
		d.repo.EXPECT().SlugExists(mock.Anything, "hello-copy", int64(0)).Return(false, nil)
		d.repo.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*domain.Article")).
			RunAndReturn(func(ctx context.Context, a *domain.Article) error {
				a.ID = 8
				return nil
			})
		d.expectSideEffects(audit.OpClone, event.ActionCreated)

		c, err := d.svc.Clone(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, int64(8), c.ID)
		assert.Equal(t, "Hello (copy)", c.Title)
		assert.Equal(t, "hello-copy", c.Slug)
		assert.Equal(t, domain.StatusDraft, c.Status)
		assert.Equal(t, domain.Stats{}, c.Stats)
		assert.Equal(t, []int64{3, 4}, c.TagIDs)

		c.TagIDs[0] = 99
		*c.ExpiredAt = fixedNow
		assert.Equal(t, int64(3), src.TagIDs[0])
		assert.NotEqual(t, fixedNow, *src.ExpiredAt)
	})

	t.Run("bulk clone keeps slugs unique within the batch", func(t *testing.T) {
		d := newArticleService(t)

		d.repo.EXPECT().GetByID(mock.Anything, int64(1)).Return(source(1, "Hello"), nil)
		d.repo.EXPECT().GetByID(mock.Anything, int64(2)).Return(source(2, "Hello"), nil)
		d.repo.EXPECT().SlugExists(mock.Anything, "hello-copy", int64(0)).Return(false, nil)
		d.repo.EXPECT().SlugExists(mock.Anything, "hello-copy-2", int64(0)).Return(false, nil)
		d.repo.EXPECT().
			CreateMany(mock.Anything, mock.Anything).
			RunAndReturn(func(ctx context.Context, articles []*domain.Article) error {
				for i, a := range articles {
					a.ID = int64(10 + i)
				}
				return nil
			})
		d.recorder.EXPECT().Record(mock.Anything, mock.Anything).Return(nil).Times(2)
		d.publisher.EXPECT().Publish(mock.Anything, event.ActionCreated, mock.Anything, mock.Anything).Return(nil).Times(2)

		clones, err := d.svc.BulkClone(context.Background(), []int64{1, 2})
		require.NoError(t, err)
		require.Len(t, clones, 2)
		assert.Equal(t, "hello-copy", clones[0].Slug)
		assert.Equal(t, "hello-copy-2", clones[1].Slug)
		assert.Equal(t, int64(11), clones[1].ID)
	})

	t.Run("bulk clone writes nothing when a source is missing", func(t *testing.T) {
		d := newArticleService(t)

		d.repo.EXPECT().GetByID(mock.Anything, int64(1)).Return(source(1, "Hello"), nil)
		d.repo.EXPECT().GetByID(mock.Anything, int64(2)).Return(nil, domain.ErrNotFound)

		_, err := d.svc.BulkClone(context.Background(), []int64{1, 2})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("long titles stay within the column", func(t *testing.T) {
		d := newArticleService(t)
		long := make([]rune, 255)
		for i := range long {
			long[i] = 'é'
		}

		d.repo.EXPECT().GetByID(mock.Anything, int64(7)).Return(source(7, string(long)), nil)
		d.repo.EXPECT().SlugExists(mock.Anything, mock.Anything, int64(0)).Return(false, nil)
		d.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
		d.expectSideEffects(audit.OpClone, event.ActionCreated)

		c, err := d.svc.Clone(context.Background(), 7)
		require.NoError(t, err)
		assert.Len(t, []rune(c.Title), 255)
		assert.Contains(t, c.Title, service.CloneSuffix)
	})
}

func TestArticleService_History(t *testing.T) {
	t.Run("returns recorded entries", func(t *testing.T) {
		d := newArticleService(t)
		entries := []audit.Entry{{Operation: audit.OpUpdate, EntityID: 7}}

		d.repo.EXPECT().GetByID(mock.Anything, int64(7)).Return(&domain.Article{ID: 7}, nil)
		d.recorder.EXPECT().History(mock.Anything, audit.EntityArticle, int64(7), 20).Return(entries, nil)

		got, err := d.svc.History(context.Background(), 7, 20)
		require.NoError(t, err)
		assert.Equal(t, entries, got)
	})

	t.Run("missing article", func(t *testing.T) {
		d := newArticleService(t)

		d.repo.EXPECT().GetByID(mock.Anything, int64(7)).Return(nil, domain.ErrNotFound)

		_, err := d.svc.History(context.Background(), 7, 20)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
