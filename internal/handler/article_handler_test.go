package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"news-crud/internal/admin"
	"news-crud/internal/audit"
	"news-crud/internal/domain"
	"news-crud/internal/mocks"
	"news-crud/internal/storage/media"
	"news-crud/internal/validator"
)

type articleTestDeps struct {
	articles *mocks.MockArticleServiceInterface
	fetch    *mocks.MockFetchServiceInterface
	uploads  *mocks.MockUploader
	router   *gin.Engine
}

func setupArticleRouter(t *testing.T) articleTestDeps {
	d := articleTestDeps{
		articles: mocks.NewMockArticleServiceInterface(t),
		fetch:    mocks.NewMockFetchServiceInterface(t),
		uploads:  mocks.NewMockUploader(t),
		router:   gin.New(),
	}
	h := NewArticleHandler(d.articles, d.fetch, d.uploads, validator.NewValidator())

	group := d.router.Group("/admin/article")
	group.GET("/:id/history", h.History)
	group.POST("/media/upload-url", h.UploadURL)
	admin.Register(group, admin.ArticlePanel("admin", time.Now()), h)
	return d
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestArticleHandler_List(t *testing.T) {
	t.Run("maps query parameters", func(t *testing.T) {
		d := setupArticleRouter(t)
		featured := true

		d.articles.EXPECT().
			List(mock.Anything, domain.ListQuery{
				Page:       2,
				PerPage:    10,
				Search:     "go",
				Status:     domain.StatusDraft,
				CategoryID: 3,
				Featured:   &featured,
				Published:  true,
				OrderDesc:  true,
			}).
			Return(domain.ArticlePage{
				Items:   []domain.Article{{ID: 1, Title: "Go"}},
				Page:    2,
				PerPage: 10,
				Total:   11,
			}, nil)

		w := doRequest(d.router, http.MethodGet,
			"/admin/article?page=2&per_page=10&search=go&status=DRAFT&category_id=3&featured=true&published=true&order=desc", "")

		require.Equal(t, http.StatusOK, w.Code)
		var page domain.ArticlePage
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
		assert.Equal(t, 11, page.Total)
		assert.Equal(t, "Go", page.Items[0].Title)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		d := setupArticleRouter(t)

		w := doRequest(d.router, http.MethodGet, "/admin/article?status=ARCHIVED", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestArticleHandler_Show(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		setup      func(d articleTestDeps)
		wantStatus int
		wantBody   string
	}{
		{
			name: "found",
			path: "/admin/article/7",
			setup: func(d articleTestDeps) {
				d.articles.EXPECT().Get(mock.Anything, int64(7)).Return(&domain.Article{ID: 7, Slug: "hello"}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"slug":"hello"`,
		},
		{
			name: "not found",
			path: "/admin/article/8",
			setup: func(d articleTestDeps) {
				d.articles.EXPECT().Get(mock.Anything, int64(8)).Return(nil, domain.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantBody:   "article not found",
		},
		{
			name:       "invalid id",
			path:       "/admin/article/abc",
			setup:      func(d articleTestDeps) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   "positive integer",
		},
		{
			name: "store failure hides details",
			path: "/admin/article/9",
			setup: func(d articleTestDeps) {
				d.articles.EXPECT().Get(mock.Anything, int64(9)).Return(nil, errors.New("pq: connection refused"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := setupArticleRouter(t)
			tt.setup(d)

			w := doRequest(d.router, http.MethodGet, tt.path, "")
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestArticleHandler_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		d := setupArticleRouter(t)

		d.articles.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(in *domain.ArticleInput) bool {
				return in.Title == "Hello" &&
					in.Status == domain.StatusPublished &&
					len(in.TagIDs) == 2 &&
					in.PublishedAt != nil &&
					in.PublishedAt.Equal(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))
			})).
			Return(&domain.Article{ID: 1, Title: "Hello", Slug: "hello"}, nil)

		body := `{"title":"Hello","status":"PUBLISHED","author_id":1,"category_id":2,"tags":[3,4],"published_at":"2024-03-01T10:00:00Z"}`
		w := doRequest(d.router, http.MethodPost, "/admin/article", body)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"slug":"hello"`)
	})

	t.Run("validation errors are field level", func(t *testing.T) {
		d := setupArticleRouter(t)

		d.articles.EXPECT().
			Create(mock.Anything, mock.Anything).
			Return(nil, validation.Errors{
				"title":  validation.NewError("title_required", "title_required"),
				"status": validation.NewError("invalid_status", "invalid_status"),
			})

		w := doRequest(d.router, http.MethodPost, "/admin/article", `{"status":"ARCHIVED"}`)

		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		var resp ValidationErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, map[string]string{"title": "title_required", "status": "invalid_status"}, resp.Errors)
	})

	t.Run("unknown reference", func(t *testing.T) {
		d := setupArticleRouter(t)

		d.articles.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrInvalidReference)

		w := doRequest(d.router, http.MethodPost, "/admin/article", `{"title":"Hello"}`)

		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), `"reference"`)
	})

	t.Run("malformed json", func(t *testing.T) {
		d := setupArticleRouter(t)

		w := doRequest(d.router, http.MethodPost, "/admin/article", `{"title":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("panel defaults are accepted", func(t *testing.T) {
		d := setupArticleRouter(t)
		now := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

		form := map[string]interface{}{
			"title":       "Hello",
			"status":      "DRAFT",
			"author_id":   1,
			"category_id": 2,
		}
		for _, f := range admin.ArticlePanel("admin", now).Fields {
			if f.Default != nil {
				form[f.Name] = f.Default
			}
		}
		body, err := json.Marshal(form)
		require.NoError(t, err)

		d.articles.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(in *domain.ArticleInput) bool {
				return in.Date != nil && in.Date.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)) &&
					in.PublishedAt != nil && in.PublishedAt.Equal(now) &&
					in.ExpiredAt == nil
			})).
			Return(&domain.Article{ID: 1, Title: "Hello", Slug: "hello"}, nil)

		w := doRequest(d.router, http.MethodPost, "/admin/article", string(body))

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	t.Run("malformed dates are field errors", func(t *testing.T) {
		tests := []struct {
			name string
			body string
			want map[string]string
		}{
			{
				name: "month out of range",
				body: `{"title":"Hello","published_at":"2024-13-45 10:00"}`,
				want: map[string]string{"published_at": "invalid_date"},
			},
			{
				name: "words and a datetime in the date field",
				body: `{"title":"Hello","date":"yesterday","expired_at":"soon"}`,
				want: map[string]string{"date": "invalid_date", "expired_at": "invalid_date"},
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				d := setupArticleRouter(t)

				w := doRequest(d.router, http.MethodPost, "/admin/article", tt.body)

				require.Equal(t, http.StatusUnprocessableEntity, w.Code)
				var resp ValidationErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.want, resp.Errors)
			})
		}
	})

	t.Run("wrong value type is a field error", func(t *testing.T) {
		d := setupArticleRouter(t)

		w := doRequest(d.router, http.MethodPost, "/admin/article", `{"title":"Hello","author_id":"jane"}`)

		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		var resp ValidationErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, map[string]string{"author_id": "invalid_type"}, resp.Errors)
	})
}

func TestArticleHandler_Update(t *testing.T) {
	d := setupArticleRouter(t)

	d.articles.EXPECT().
		Update(mock.Anything, int64(7), mock.MatchedBy(func(in *domain.ArticleInput) bool {
			return in.Title == "Updated" &&
				in.Date == nil &&
				in.ExpiredAt != nil && in.ExpiredAt.Equal(time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC))
		})).
		Return(&domain.Article{ID: 7, Title: "Updated"}, nil)

	w := doRequest(d.router, http.MethodPut, "/admin/article/7", `{"title":"Updated","date":"","expired_at":"2024-04-01 10:00:00"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"title":"Updated"`)

	t.Run("malformed date", func(t *testing.T) {
		d := setupArticleRouter(t)

		w := doRequest(d.router, http.MethodPut, "/admin/article/7", `{"title":"Updated","published_at":"2024-02-30 25:00"}`)

		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), `"published_at":"invalid_date"`)
	})
}

func TestArticleHandler_Delete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		d := setupArticleRouter(t)
		d.articles.EXPECT().Delete(mock.Anything, int64(7)).Return(nil)

		w := doRequest(d.router, http.MethodDelete, "/admin/article/7", "")
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("missing", func(t *testing.T) {
		d := setupArticleRouter(t)
		d.articles.EXPECT().Delete(mock.Anything, int64(7)).Return(domain.ErrNotFound)

		w := doRequest(d.router, http.MethodDelete, "/admin/article/7", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestArticleHandler_BulkOperations(t *testing.T) {
	t.Run("bulk delete", func(t *testing.T) {
		d := setupArticleRouter(t)
		d.articles.EXPECT().BulkDelete(mock.Anything, []int64{1, 2, 3}).Return(2, nil)

		w := doRequest(d.router, http.MethodPost, "/admin/article/bulk-delete", `{"entries":[1,2,3]}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"deleted":2}`, w.Body.String())
	})

	t.Run("bulk delete without entries", func(t *testing.T) {
		d := setupArticleRouter(t)
		d.articles.EXPECT().
			BulkDelete(mock.Anything, []int64(nil)).
			Return(0, validation.Errors{"entries": validation.NewError("entries_required", "entries_required")})

		w := doRequest(d.router, http.MethodPost, "/admin/article/bulk-delete", `{}`)

		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "entries_required")
	})

	t.Run("clone", func(t *testing.T) {
		d := setupArticleRouter(t)
		d.articles.EXPECT().Clone(mock.Anything, int64(7)).Return(&domain.Article{ID: 8, Title: "Hello (copy)"}, nil)

		w := doRequest(d.router, http.MethodPost, "/admin/article/7/clone", "")

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "Hello (copy)")
	})

	t.Run("bulk clone", func(t *testing.T) {
		d := setupArticleRouter(t)
		d.articles.EXPECT().
			BulkClone(mock.Anything, []int64{1, 2}).
			Return([]domain.Article{{ID: 10}, {ID: 11}}, nil)

		w := doRequest(d.router, http.MethodPost, "/admin/article/bulk-clone", `{"entries":[1,2]}`)

		require.Equal(t, http.StatusCreated, w.Code)
		var resp struct {
			Data []domain.Article `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Data, 2)
	})
}

func TestArticleHandler_Fetch(t *testing.T) {
	t.Run("category from form values", func(t *testing.T) {
		d := setupArticleRouter(t)
		d.fetch.EXPECT().
			FetchCategories(mock.Anything, "spo", 2).
			Return(domain.OptionPage{
				Items:    []domain.Option{{ID: 1, Name: "Sports"}},
				Page:     2,
				PerPage:  10,
				Total:    11,
				LastPage: 2,
			}, nil)

		req := httptest.NewRequest(http.MethodPost, "/admin/article/fetch/category", strings.NewReader("q=spo&page=2"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		d.router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t,
			`{"data":[{"id":1,"name":"Sports"}],"current_page":2,"per_page":10,"total":11,"last_page":2}`,
			w.Body.String())
	})

	t.Run("tag from json", func(t *testing.T) {
		d := setupArticleRouter(t)
		d.fetch.EXPECT().
			FetchTags(mock.Anything, "go", 0).
			Return(domain.OptionPage{Items: []domain.Option{}, Page: 1, PerPage: 10, LastPage: 1}, nil)

		w := doRequest(d.router, http.MethodPost, "/admin/article/fetch/tag", `{"q":"go"}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"data":[]`)
	})

	t.Run("unknown entity is not routed", func(t *testing.T) {
		d := setupArticleRouter(t)

		w := doRequest(d.router, http.MethodPost, "/admin/article/fetch/section", `{"q":"x"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestArticleHandler_History(t *testing.T) {
	t.Run("default limit", func(t *testing.T) {
		d := setupArticleRouter(t)
		d.articles.EXPECT().
			History(mock.Anything, int64(7), 20).
			Return([]audit.Entry{{Operation: audit.OpUpdate, EntityID: 7, Actor: "editor"}}, nil)

		w := doRequest(d.router, http.MethodGet, "/admin/article/7/history", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"actor":"editor"`)
	})

	t.Run("limit out of range", func(t *testing.T) {
		d := setupArticleRouter(t)

		w := doRequest(d.router, http.MethodGet, "/admin/article/7/history?limit=1000", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestArticleHandler_UploadURL(t *testing.T) {
	t.Run("presigned", func(t *testing.T) {
		d := setupArticleRouter(t)
		d.uploads.EXPECT().
			UploadURL(mock.Anything, "image", "photo.jpg").
			Return(&media.UploadInfo{
				UploadURL: "http://minio:9000/news-media/articles/image/abc.jpg?X-Amz-Signature=x",
				Key:       "articles/image/abc.jpg",
				PublicURL: "/news-media/articles/image/abc.jpg",
				ExpiresIn: 900,
			}, nil)

		w := doRequest(d.router, http.MethodPost, "/admin/article/media/upload-url", `{"field":"image","filename":"photo.jpg"}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"key":"articles/image/abc.jpg"`)
	})

	t.Run("invalid file type", func(t *testing.T) {
		d := setupArticleRouter(t)

		w := doRequest(d.router, http.MethodPost, "/admin/article/media/upload-url", `{"field":"image","filename":"run.exe"}`)

		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "unsupported_file_type")
	})

	t.Run("storage not configured", func(t *testing.T) {
		d := setupArticleRouter(t)
		d.uploads.EXPECT().UploadURL(mock.Anything, "thumbnail", "t.png").Return(nil, media.ErrDisabled)

		w := doRequest(d.router, http.MethodPost, "/admin/article/media/upload-url", `{"field":"thumbnail","filename":"t.png"}`)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
