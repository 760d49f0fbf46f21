package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"news-crud/internal/domain"
	"news-crud/internal/service"
)

// PublicArticleHandler serves published articles to readers.
type PublicArticleHandler struct {
	publication service.PublicationServiceInterface
}

// NewPublicArticleHandler creates a new PublicArticleHandler.
func NewPublicArticleHandler(publication service.PublicationServiceInterface) *PublicArticleHandler {
	return &PublicArticleHandler{publication: publication}
}

// ListPublishedRequest represents the query parameters of the public list.
type ListPublishedRequest struct {
	Page    int `form:"page" binding:"omitempty,min=1"`
	PerPage int `form:"per_page" binding:"omitempty,min=1"`
}

// List handles GET /api/v1/articles
func (h *PublicArticleHandler) List(c *gin.Context) {
	var req ListPublishedRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	page, err := h.publication.ListPublished(c.Request.Context(), req.Page, req.PerPage)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// Show handles GET /api/v1/articles/:slug
func (h *PublicArticleHandler) Show(c *gin.Context) {
	article, err := h.publication.GetPublishedBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, article)
}

// Earliest handles GET /api/v1/articles/earliest
func (h *PublicArticleHandler) Earliest(c *gin.Context) {
	h.navigate(c, func(ctx context.Context) (*domain.Article, error) {
		return h.publication.Earliest(ctx)
	})
}

// Latest handles GET /api/v1/articles/latest
func (h *PublicArticleHandler) Latest(c *gin.Context) {
	h.navigate(c, func(ctx context.Context) (*domain.Article, error) {
		return h.publication.Latest(ctx)
	})
}

// Previous handles GET /api/v1/articles/:slug/previous
func (h *PublicArticleHandler) Previous(c *gin.Context) {
	slug := c.Param("slug")
	h.navigate(c, func(ctx context.Context) (*domain.Article, error) {
		return h.publication.Previous(ctx, slug)
	})
}

// Next handles GET /api/v1/articles/:slug/next
func (h *PublicArticleHandler) Next(c *gin.Context) {
	slug := c.Param("slug")
	h.navigate(c, func(ctx context.Context) (*domain.Article, error) {
		return h.publication.Next(ctx, slug)
	})
}

// navigate turns an absent neighbour into 404 at the HTTP edge.
func (h *PublicArticleHandler) navigate(c *gin.Context, find func(ctx context.Context) (*domain.Article, error)) {
	article, err := find(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if article == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "no published article"})
		return
	}

	c.JSON(http.StatusOK, article)
}
