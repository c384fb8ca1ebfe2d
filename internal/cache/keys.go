package cache

import "fmt"

// Well-known keys for the whole-collection views. Per-argument views get
// their own key builders so differently-scoped results never collide.
const (
	KeyAllPosts         = "blog:all_posts"
	KeyPublishedPosts   = "blog:published_posts"
	KeyLightweightPosts = "blog:lightweight_posts"
	KeyBlogSlugs        = "blog:slugs"
)

// PostKey is the cache key for a single post looked up by slug.
func PostKey(slug string) string {
	return "blog:post:" + slug
}

// PageKey is the cache key for one page of published posts.
func PageKey(page, pageSize int) string {
	return fmt.Sprintf("%s:page:%d:size:%d", KeyPublishedPosts, page, pageSize)
}

// LatestKey is the cache key for a latest-N query, optionally excluding
// one slug.
func LatestKey(limit int, excludeSlug string) string {
	if excludeSlug == "" {
		excludeSlug = "none"
	}
	return fmt.Sprintf("blog:latest:%d:%s", limit, excludeSlug)
}
