package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AniD-z/PersonalWeb/internal/cache"
	"github.com/AniD-z/PersonalWeb/internal/config"
	"github.com/AniD-z/PersonalWeb/internal/models"
	"github.com/AniD-z/PersonalWeb/internal/service"
	"github.com/AniD-z/PersonalWeb/internal/sheets"
)

type stubStore struct {
	rows []sheets.Row
}

func (s *stubStore) Rows(_ context.Context) ([]sheets.Row, error) {
	return s.rows, nil
}

func (s *stubStore) UpdateCell(_ context.Context, rowIndex int, column, value string) error {
	s.rows[rowIndex][column] = value
	return nil
}

const testAdminKey = "test-admin-key"

func newTestRouter(rows []sheets.Row) Router {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		AdminSecretKey:     testAdminKey,
		CorsAllowedOrigins: []string{"*"},
	}
	svc := service.NewContentService(&stubStore{rows: rows}, cache.New(0), nil)
	return NewRouter(cfg, svc)
}

func doRequest(r Router, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func testRows() []sheets.Row {
	return []sheets.Row{
		{"title": "Live Post", "status": "published", "created_at": "2024-02-01T00:00:00Z"},
		{"title": "Older Post", "status": "published", "created_at": "2024-01-01T00:00:00Z"},
		{"title": "Secret Draft"},
	}
}

func TestListPublished(t *testing.T) {
	r := newTestRouter(testRows())

	w := doRequest(r, http.MethodGet, "/api/posts?page=1&page_size=12")
	require.Equal(t, http.StatusOK, w.Code)

	var result models.PaginatedPosts
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 2, result.TotalPosts)
	assert.Equal(t, 1, result.TotalPages)
	require.Len(t, result.Posts, 2)
	assert.Equal(t, "live-post", result.Posts[0].Slug)
	assert.False(t, result.HasNextPage)
}

func TestGetBySlug(t *testing.T) {
	r := newTestRouter(testRows())

	w := doRequest(r, http.MethodGet, "/api/posts/live-post")
	require.Equal(t, http.StatusOK, w.Code)

	var post models.BlogPost
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &post))
	assert.Equal(t, "Live Post", post.Title)
	assert.Equal(t, models.DefaultHeroImage, post.HeroImage)
}

func TestGetBySlug_Unknown(t *testing.T) {
	r := newTestRouter(testRows())

	w := doRequest(r, http.MethodGet, "/api/posts/no-such-post")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListSlugs_PublishedOnly(t *testing.T) {
	r := newTestRouter(testRows())

	w := doRequest(r, http.MethodGet, "/api/slugs")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Slugs []string `json:"slugs"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.ElementsMatch(t, []string{"live-post", "older-post"}, body.Slugs)
}

func TestLatest(t *testing.T) {
	r := newTestRouter(testRows())

	w := doRequest(r, http.MethodGet, "/api/posts/latest?limit=1&exclude=live-post")
	require.Equal(t, http.StatusOK, w.Code)

	var posts []models.LightweightBlogPost
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &posts))
	require.Len(t, posts, 1)
	assert.Equal(t, "older-post", posts[0].Slug)
}

func TestAdminGate(t *testing.T) {
	tests := map[string]struct {
		path     string
		wantCode int
	}{
		"missing key":       {"/api/admin/posts", http.StatusNotFound},
		"wrong key":         {"/api/admin/posts?key=guess", http.StatusNotFound},
		"correct key":       {"/api/admin/posts?key=" + testAdminKey, http.StatusOK},
		"stats wrong key":   {"/api/admin/cache/stats?key=nope", http.StatusNotFound},
		"stats correct key": {"/api/admin/cache/stats?key=" + testAdminKey, http.StatusOK},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			r := newTestRouter(testRows())
			w := doRequest(r, http.MethodGet, tc.path)
			assert.Equal(t, tc.wantCode, w.Code)
		})
	}
}

func TestAdminGate_MismatchLooksLikeUnknownRoute(t *testing.T) {
	r := newTestRouter(testRows())

	gated := doRequest(r, http.MethodGet, "/api/admin/posts?key=wrong")
	unknown := doRequest(r, http.MethodGet, "/api/this-route-does-not-exist")

	assert.Equal(t, unknown.Code, gated.Code)
	assert.Equal(t, unknown.Body.String(), gated.Body.String())
}

func TestAdminListIncludesDrafts(t *testing.T) {
	r := newTestRouter(testRows())

	w := doRequest(r, http.MethodGet, "/api/admin/posts?key="+testAdminKey)
	require.Equal(t, http.StatusOK, w.Code)

	var posts []models.BlogPost
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &posts))
	assert.Len(t, posts, 3)
}

func TestPublishUnpublishFlow(t *testing.T) {
	r := newTestRouter(testRows())

	w := doRequest(r, http.MethodPost, "/api/admin/posts/secret-draft/publish?key="+testAdminKey)
	require.Equal(t, http.StatusOK, w.Code)

	// The write cleared the cache, so the public surface sees it at once.
	w = doRequest(r, http.MethodGet, "/api/posts/secret-draft")
	require.Equal(t, http.StatusOK, w.Code)
	var post models.BlogPost
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &post))
	assert.Equal(t, models.StatusPublished, post.Status)

	w = doRequest(r, http.MethodPost, "/api/admin/posts/secret-draft/unpublish?key="+testAdminKey)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, http.MethodGet, "/api/slugs")
	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Slugs []string `json:"slugs"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotContains(t, body.Slugs, "secret-draft")
}

func TestPublishUnknownSlug(t *testing.T) {
	r := newTestRouter(testRows())

	w := doRequest(r, http.MethodPost, "/api/admin/posts/no-such-post/publish?key="+testAdminKey)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCacheStats(t *testing.T) {
	r := newTestRouter(testRows())

	// One public read: a miss on the page key plus a miss on the
	// lightweight key, then both get populated.
	doRequest(r, http.MethodGet, "/api/posts")

	w := doRequest(r, http.MethodGet, "/api/admin/cache/stats?key="+testAdminKey)
	require.Equal(t, http.StatusOK, w.Code)

	var stats cache.Stats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, int64(2), stats.Misses)
	assert.Equal(t, 2, stats.Size)
}
