package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"news-crud/internal/domain"
	"news-crud/internal/logger"
	"news-crud/internal/service"
	"news-crud/internal/storage/media"
	"news-crud/internal/validator"
)

const defaultHistoryLimit = 20

// ArticleHandler serves the admin article panel.
// It implements the admin capability interfaces and is mounted with admin.Register.
type ArticleHandler struct {
	articles  service.ArticleServiceInterface
	fetch     service.FetchServiceInterface
	uploads   media.Uploader
	validator *validator.Validator
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(
	articles service.ArticleServiceInterface,
	fetch service.FetchServiceInterface,
	uploads media.Uploader,
	v *validator.Validator,
) *ArticleHandler {
	return &ArticleHandler{
		articles:  articles,
		fetch:     fetch,
		uploads:   uploads,
		validator: v,
	}
}

// ListArticlesRequest represents the query parameters of the admin list.
type ListArticlesRequest struct {
	Page       int    `form:"page" binding:"omitempty,min=1"`
	PerPage    int    `form:"per_page" binding:"omitempty,min=1"`
	Search     string `form:"search"`
	Status     string `form:"status" binding:"omitempty,oneof=DRAFT PUBLISHED"`
	CategoryID int64  `form:"category_id" binding:"omitempty,min=1"`
	Featured   *bool  `form:"featured"`
	Published  bool   `form:"published"`
	Order      string `form:"order" binding:"omitempty,oneof=asc desc"`
}

// ArticleForm is the create and update body. Date values arrive as strings in
// the panel's form layouts or as RFC 3339.
type ArticleForm struct {
	domain.ArticleInput
	Date        *string `json:"date"`
	PublishedAt *string `json:"published_at"`
	ExpiredAt   *string `json:"expired_at"`
}

// EntriesRequest is the body of the bulk operations.
type EntriesRequest struct {
	Entries []int64 `json:"entries"`
}

// FetchRequest is the body of the fetch operation.
type FetchRequest struct {
	Q    string `form:"q" json:"q"`
	Page int    `form:"page" json:"page"`
}

// UploadURLRequest asks for a presigned upload for one of the browse fields.
type UploadURLRequest struct {
	Field    string `json:"field"`
	Filename string `json:"filename"`
}

// List handles GET /admin/article
func (h *ArticleHandler) List(c *gin.Context) {
	var req ListArticlesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	page, err := h.articles.List(c.Request.Context(), domain.ListQuery{
		Page:       req.Page,
		PerPage:    req.PerPage,
		Search:     req.Search,
		Status:     domain.Status(req.Status),
		CategoryID: req.CategoryID,
		Featured:   req.Featured,
		Published:  req.Published,
		OrderDesc:  req.Order == "desc",
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// Show handles GET /admin/article/:id
func (h *ArticleHandler) Show(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	article, err := h.articles.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, article)
}

// Create handles POST /admin/article
func (h *ArticleHandler) Create(c *gin.Context) {
	in, ok := bindArticleForm(c)
	if !ok {
		return
	}

	article, err := h.articles.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, article)
}

// Update handles PUT /admin/article/:id
func (h *ArticleHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	in, ok := bindArticleForm(c)
	if !ok {
		return
	}

	article, err := h.articles.Update(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, article)
}

// bindArticleForm decodes the form body. Values of the wrong type and
// malformed dates are answered with field errors.
func bindArticleForm(c *gin.Context) (*domain.ArticleInput, bool) {
	var form ArticleForm
	if err := c.ShouldBindJSON(&form); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			c.JSON(http.StatusUnprocessableEntity, ValidationErrorResponse{Errors: map[string]string{
				typeErr.Field: "invalid_type",
			}})
			return nil, false
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return nil, false
	}

	in := form.ArticleInput
	if err := validator.ParseFormDates(&in, form.Date, form.PublishedAt, form.ExpiredAt); err != nil {
		respondError(c, err)
		return nil, false
	}
	return &in, true
}

// Delete handles DELETE /admin/article/:id
func (h *ArticleHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.articles.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// BulkDelete handles POST /admin/article/bulk-delete
func (h *ArticleHandler) BulkDelete(c *gin.Context) {
	var req EntriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	deleted, err := h.articles.BulkDelete(c.Request.Context(), req.Entries)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// Clone handles POST /admin/article/:id/clone
func (h *ArticleHandler) Clone(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	article, err := h.articles.Clone(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, article)
}

// BulkClone handles POST /admin/article/bulk-clone
func (h *ArticleHandler) BulkClone(c *gin.Context) {
	var req EntriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	clones, err := h.articles.BulkClone(c.Request.Context(), req.Entries)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": clones})
}

// Fetch returns the handler of POST /admin/article/fetch/:entity.
func (h *ArticleHandler) Fetch(entity string) gin.HandlerFunc {
	switch entity {
	case "category":
		return h.fetchOptions(h.fetch.FetchCategories)
	case "tag":
		return h.fetchOptions(h.fetch.FetchTags)
	default:
		return nil
	}
}

func (h *ArticleHandler) fetchOptions(search func(ctx context.Context, q string, page int) (domain.OptionPage, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req FetchRequest
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}

		page, err := search(c.Request.Context(), req.Q, req.Page)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, page)
	}
}

// History handles GET /admin/article/:id/history
func (h *ArticleHandler) History(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req struct {
		Limit int `form:"limit" binding:"omitempty,min=1,max=200"`
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if req.Limit == 0 {
		req.Limit = defaultHistoryLimit
	}

	entries, err := h.articles.History(c.Request.Context(), id, req.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": entries})
}

// UploadURL handles POST /admin/article/media/upload-url
func (h *ArticleHandler) UploadURL(c *gin.Context) {
	var req UploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.validator.ValidateUpload(req.Field, req.Filename); err != nil {
		respondError(c, err)
		return
	}

	info, err := h.uploads.UploadURL(c.Request.Context(), req.Field, req.Filename)
	if err != nil {
		if errors.Is(err, media.ErrDisabled) {
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "media uploads are not configured"})
			return
		}
		respondError(c, err)
		return
	}

	logger.FromContext(c.Request.Context()).Info("Upload URL issued",
		slog.String("field", req.Field),
		slog.String("key", info.Key))

	c.JSON(http.StatusOK, info)
}
