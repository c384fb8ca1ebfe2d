package models

import (
	"strings"
	"unicode"
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// DefaultHeroImage is substituted when a row has no hero_image cell.
const DefaultHeroImage = "/placeholder.svg?height=400&width=800"

// BlogPost is the full post record, one per sheet row. Rich-text fields
// (introduction, main modules, conclusion, ...) are opaque formatted text;
// nothing below the transport layer parses them.
type BlogPost struct {
	Title           string `json:"title"`
	Slug            string `json:"slug"`
	MetaDesc        string `json:"metaDesc"`
	HeroImage       string `json:"hero_image"`
	Status          string `json:"status"`
	H1Title         string `json:"h1_title"`
	H3IntroTitle    string `json:"h3_intro_title"`
	Introduction    string `json:"introduction"`
	TableOfContents string `json:"table_of_contents"`
	MainModules     string `json:"main_modules"`
	Conclusion      string `json:"conclusion"`
	LinksSection    string `json:"links_section"`
	FAQSection      string `json:"faq_section"`
	CreatedAt       string `json:"created_at"`
	Author          string `json:"author"`
	Category        string `json:"category"`
	Tags            string `json:"tags"`
}

// LightweightBlogPost carries only what listing pages need, leaving the
// large rich-text bodies behind.
type LightweightBlogPost struct {
	Title     string `json:"title"`
	Slug      string `json:"slug"`
	MetaDesc  string `json:"metaDesc"`
	HeroImage string `json:"hero_image"`
	Status    string `json:"status"`
	H1Title   string `json:"h1_title"`
	CreatedAt string `json:"created_at"`
	Author    string `json:"author"`
	Category  string `json:"category"`
	Tags      string `json:"tags"`
}

// PaginatedPosts is one page of published posts plus paging metadata.
type PaginatedPosts struct {
	Posts       []LightweightBlogPost `json:"posts"`
	TotalPosts  int                   `json:"totalPosts"`
	TotalPages  int                   `json:"totalPages"`
	CurrentPage int                   `json:"currentPage"`
	HasNextPage bool                  `json:"hasNextPage"`
	HasPrevPage bool                  `json:"hasPrevPage"`
}

// Slugify derives a URL-safe slug from a title: lowercased, everything
// outside [a-z0-9 -] stripped, whitespace runs collapsed to single hyphens.
// "Hello, World! 2024" becomes "hello-world-2024".
func Slugify(title string) string {
	lower := strings.ToLower(title)

	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}

	slug := strings.Join(strings.Fields(b.String()), "-")
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	return strings.Trim(slug, "-")
}
