package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AniD-z/PersonalWeb/internal/models"
	"github.com/AniD-z/PersonalWeb/internal/service"
)

type PostHandler struct {
	service *service.ContentService
}

func NewPostHandler(svc *service.ContentService) *PostHandler {
	return &PostHandler{service: svc}
}

func intQuery(c *gin.Context, name string, def int) int {
	v := c.Query(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return def
	}
	return n
}

// ListPublished serves the blog index: one newest-first page of
// published posts.
func (h *PostHandler) ListPublished(c *gin.Context) {
	page := intQuery(c, "page", 1)
	pageSize := intQuery(c, "page_size", service.DefaultPageSize)

	result, err := h.service.GetPaginatedPublishedPosts(c.Request.Context(), page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load posts"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// Latest serves the "more posts" strip shown under an article.
func (h *PostHandler) Latest(c *gin.Context) {
	limit := intQuery(c, "limit", 3)
	exclude := c.Query("exclude")

	posts, err := h.service.GetLatestPosts(c.Request.Context(), limit, exclude)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load posts"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetBySlug serves a single full post. An unknown slug is a 404, not a
// failure.
func (h *PostHandler) GetBySlug(c *gin.Context) {
	slug := c.Param("slug")

	post, err := h.service.GetBlogPost(c.Request.Context(), slug)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load post"})
		return
	}
	if post == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}
	c.JSON(http.StatusOK, post)
}

// ListSlugs feeds static path generation with every published slug.
func (h *PostHandler) ListSlugs(c *gin.Context) {
	slugs, err := h.service.GetAllBlogSlugs(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load slugs"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"slugs": slugs})
}

// ListAll serves the admin panel listing, drafts included.
func (h *PostHandler) ListAll(c *gin.Context) {
	posts, err := h.service.GetAllPosts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load posts"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *PostHandler) setStatus(c *gin.Context, status string) {
	slug := c.Param("slug")

	err := h.service.UpdatePostStatus(c.Request.Context(), slug, status)
	switch {
	case errors.Is(err, service.ErrPostNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
	case err != nil:
		// Generic message only; the remote-store cause stays in the logs.
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update post status"})
	default:
		c.JSON(http.StatusOK, gin.H{"slug": slug, "status": status})
	}
}

// Publish flips a post to published.
func (h *PostHandler) Publish(c *gin.Context) {
	h.setStatus(c, models.StatusPublished)
}

// Unpublish flips a post back to draft.
func (h *PostHandler) Unpublish(c *gin.Context) {
	h.setStatus(c, models.StatusDraft)
}

// CacheStats reports hit/miss counters and entry count.
func (h *PostHandler) CacheStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.CacheStats())
}
