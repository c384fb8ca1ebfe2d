package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/AniD-z/PersonalWeb/internal/cache"
	"github.com/AniD-z/PersonalWeb/internal/models"
	"github.com/AniD-z/PersonalWeb/internal/sheets"
)

// ErrPostNotFound is returned by UpdatePostStatus when no sheet row
// derives to the requested slug.
var ErrPostNotFound = errors.New("post not found")

// ErrUpdateFailed hides the remote-store cause of a failed status write
// from callers; the cause is logged, not surfaced.
var ErrUpdateFailed = errors.New("failed to update post status")

// ErrInvalidStatus is returned for a status outside draft/published.
var ErrInvalidStatus = errors.New("invalid post status")

// DefaultPageSize is the blog index page size.
const DefaultPageSize = 12

// latestTTL pins latest-posts entries to five minutes regardless of the
// cache default.
const latestTTL = cache.DefaultTTL

// ContentService bridges the cache and the spreadsheet content store.
// Every read checks the cache first and repopulates it on a miss; the
// status write path goes straight to the store and clears the whole
// cache, since one status flip changes membership of several derived
// views at once.
type ContentService struct {
	store sheets.RowStore
	cache *cache.Cache
	log   *slog.Logger
}

func NewContentService(store sheets.RowStore, c *cache.Cache, log *slog.Logger) *ContentService {
	if log == nil {
		log = slog.Default()
	}
	return &ContentService{store: store, cache: c, log: log}
}

// GetAllPosts returns every post, drafts included, mapped from the sheet
// with defaults substituted. Fetch failures propagate unchanged; there is
// no fallback to stale data.
func (s *ContentService) GetAllPosts(ctx context.Context) ([]models.BlogPost, error) {
	if v, ok := s.cache.Get(cache.KeyAllPosts); ok {
		if posts, ok := v.([]models.BlogPost); ok {
			return posts, nil
		}
	}

	rows, err := s.store.Rows(ctx)
	if err != nil {
		return nil, err
	}

	posts := make([]models.BlogPost, 0, len(rows))
	for _, row := range rows {
		posts = append(posts, postFromRow(row))
	}

	s.cache.Set(cache.KeyAllPosts, posts)
	s.log.DebugContext(ctx, "cached all posts", "count", len(posts))
	return posts, nil
}

// GetLightweightPosts returns the listing projection of every post. It
// fetches independently of GetAllPosts so listing pages never pull the
// rich-text bodies through the cache.
func (s *ContentService) GetLightweightPosts(ctx context.Context) ([]models.LightweightBlogPost, error) {
	if v, ok := s.cache.Get(cache.KeyLightweightPosts); ok {
		if posts, ok := v.([]models.LightweightBlogPost); ok {
			return posts, nil
		}
	}

	rows, err := s.store.Rows(ctx)
	if err != nil {
		return nil, err
	}

	posts := make([]models.LightweightBlogPost, 0, len(rows))
	for _, row := range rows {
		posts = append(posts, lightweightFromRow(row))
	}

	s.cache.Set(cache.KeyLightweightPosts, posts)
	s.log.DebugContext(ctx, "cached lightweight posts", "count", len(posts))
	return posts, nil
}

// GetAllPublishedPosts returns the full records of published posts.
func (s *ContentService) GetAllPublishedPosts(ctx context.Context) ([]models.BlogPost, error) {
	if v, ok := s.cache.Get(cache.KeyPublishedPosts); ok {
		if posts, ok := v.([]models.BlogPost); ok {
			return posts, nil
		}
	}

	posts, err := s.GetAllPosts(ctx)
	if err != nil {
		return nil, err
	}

	published := make([]models.BlogPost, 0, len(posts))
	for _, p := range posts {
		if p.Status == models.StatusPublished {
			published = append(published, p)
		}
	}

	s.cache.Set(cache.KeyPublishedPosts, published)
	return published, nil
}

// GetPaginatedPublishedPosts returns one newest-first page of published
// posts. Pages beyond the end come back empty with HasNextPage false.
func (s *ContentService) GetPaginatedPublishedPosts(ctx context.Context, page, pageSize int) (*models.PaginatedPosts, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	key := cache.PageKey(page, pageSize)
	if v, ok := s.cache.Get(key); ok {
		if result, ok := v.(*models.PaginatedPosts); ok {
			return result, nil
		}
	}

	all, err := s.GetLightweightPosts(ctx)
	if err != nil {
		return nil, err
	}

	published := make([]models.LightweightBlogPost, 0, len(all))
	for _, p := range all {
		if p.Status == models.StatusPublished {
			published = append(published, p)
		}
	}
	sortNewestFirst(published)

	totalPosts := len(published)
	totalPages := (totalPosts + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > totalPosts {
		start = totalPosts
	}
	if end > totalPosts {
		end = totalPosts
	}

	result := &models.PaginatedPosts{
		Posts:       published[start:end],
		TotalPosts:  totalPosts,
		TotalPages:  totalPages,
		CurrentPage: page,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}

	s.cache.Set(key, result)
	return result, nil
}

// GetBlogPost returns the post with the given slug, or (nil, nil) when no
// post matches. An unknown slug is an expected outcome, not an error.
func (s *ContentService) GetBlogPost(ctx context.Context, slug string) (*models.BlogPost, error) {
	key := cache.PostKey(slug)
	if v, ok := s.cache.Get(key); ok {
		if post, ok := v.(*models.BlogPost); ok {
			return post, nil
		}
	}

	posts, err := s.GetAllPosts(ctx)
	if err != nil {
		return nil, err
	}

	for i := range posts {
		if posts[i].Slug == slug {
			post := posts[i]
			s.cache.Set(key, &post)
			return &post, nil
		}
	}
	return nil, nil
}

// GetAllBlogSlugs returns the slug of every published post, for static
// path enumeration.
func (s *ContentService) GetAllBlogSlugs(ctx context.Context) ([]string, error) {
	if v, ok := s.cache.Get(cache.KeyBlogSlugs); ok {
		if slugs, ok := v.([]string); ok {
			return slugs, nil
		}
	}

	published, err := s.GetAllPublishedPosts(ctx)
	if err != nil {
		return nil, err
	}

	slugs := make([]string, 0, len(published))
	for _, p := range published {
		slugs = append(slugs, p.Slug)
	}

	s.cache.Set(cache.KeyBlogSlugs, slugs)
	return slugs, nil
}

// GetLatestPosts returns up to limit published posts, newest first,
// optionally excluding one slug (the post being read).
func (s *ContentService) GetLatestPosts(ctx context.Context, limit int, excludeSlug string) ([]models.LightweightBlogPost, error) {
	if limit < 1 {
		limit = 3
	}

	key := cache.LatestKey(limit, excludeSlug)
	if v, ok := s.cache.Get(key); ok {
		if posts, ok := v.([]models.LightweightBlogPost); ok {
			return posts, nil
		}
	}

	all, err := s.GetLightweightPosts(ctx)
	if err != nil {
		return nil, err
	}

	latest := make([]models.LightweightBlogPost, 0, limit)
	for _, p := range all {
		if p.Status != models.StatusPublished {
			continue
		}
		if excludeSlug != "" && p.Slug == excludeSlug {
			continue
		}
		latest = append(latest, p)
	}
	sortNewestFirst(latest)
	if len(latest) > limit {
		latest = latest[:limit]
	}

	s.cache.Set(key, latest, latestTTL)
	return latest, nil
}

// UpdatePostStatus rewrites the status cell of the row whose derived slug
// matches, then drops the entire cache: a single status flip changes the
// published list, every page, and the slug list, so partial invalidation
// is not worth the bookkeeping.
func (s *ContentService) UpdatePostStatus(ctx context.Context, slug, status string) error {
	if status != models.StatusDraft && status != models.StatusPublished {
		return ErrInvalidStatus
	}

	rows, err := s.store.Rows(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "status update fetch failed", "slug", slug, "error", err)
		return ErrUpdateFailed
	}

	rowIndex := -1
	for i, row := range rows {
		if rowSlug(row) == slug {
			rowIndex = i
			break
		}
	}
	if rowIndex < 0 {
		return ErrPostNotFound
	}

	if err := s.store.UpdateCell(ctx, rowIndex, "status", status); err != nil {
		s.log.ErrorContext(ctx, "status update write failed", "slug", slug, "error", err)
		return ErrUpdateFailed
	}

	s.cache.Clear()
	s.log.InfoContext(ctx, "post status updated", "slug", slug, "status", status)
	return nil
}

// CacheStats exposes cache counters for the admin surface.
func (s *ContentService) CacheStats() cache.Stats {
	return s.cache.Stats()
}
