package service

import (
	"sort"
	"time"

	"github.com/AniD-z/PersonalWeb/internal/models"
	"github.com/AniD-z/PersonalWeb/internal/sheets"
)

// Column defaults mirror what the site renders when a sheet cell is left
// blank; the service never hands out an empty required field.
const (
	defaultAuthor   = "Admin"
	defaultCategory = "General"
)

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func rowSlug(row sheets.Row) string {
	if slug := row.Get("slug"); slug != "" {
		return slug
	}
	return models.Slugify(row.Get("title"))
}

func postFromRow(row sheets.Row) models.BlogPost {
	title := row.Get("title")
	return models.BlogPost{
		Title:           title,
		Slug:            rowSlug(row),
		MetaDesc:        row.Get("metaDesc"),
		HeroImage:       orDefault(row.Get("hero_image"), models.DefaultHeroImage),
		Status:          orDefault(row.Get("status"), models.StatusDraft),
		H1Title:         orDefault(row.Get("h1_title"), title),
		H3IntroTitle:    row.Get("h3_intro_title"),
		Introduction:    row.Get("introduction"),
		TableOfContents: row.Get("table_of_contents"),
		MainModules:     row.Get("main_modules"),
		Conclusion:      row.Get("conclusion"),
		LinksSection:    row.Get("links_section"),
		FAQSection:      row.Get("faq_section"),
		CreatedAt:       orDefault(row.Get("created_at"), time.Now().UTC().Format(time.RFC3339)),
		Author:          orDefault(row.Get("author"), defaultAuthor),
		Category:        orDefault(row.Get("category"), defaultCategory),
		Tags:            row.Get("tags"),
	}
}

func lightweightFromRow(row sheets.Row) models.LightweightBlogPost {
	title := row.Get("title")
	return models.LightweightBlogPost{
		Title:     title,
		Slug:      rowSlug(row),
		MetaDesc:  row.Get("metaDesc"),
		HeroImage: orDefault(row.Get("hero_image"), models.DefaultHeroImage),
		Status:    orDefault(row.Get("status"), models.StatusDraft),
		H1Title:   orDefault(row.Get("h1_title"), title),
		CreatedAt: orDefault(row.Get("created_at"), time.Now().UTC().Format(time.RFC3339)),
		Author:    orDefault(row.Get("author"), defaultAuthor),
		Category:  orDefault(row.Get("category"), defaultCategory),
		Tags:      row.Get("tags"),
	}
}

func parseCreatedAt(s string) time.Time {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	return time.Time{}
}

// sortNewestFirst orders posts by creation time descending. The sort is
// stable so rows with equal or unparseable timestamps keep sheet order.
func sortNewestFirst(posts []models.LightweightBlogPost) {
	sort.SliceStable(posts, func(i, j int) bool {
		return parseCreatedAt(posts[i].CreatedAt).After(parseCreatedAt(posts[j].CreatedAt))
	})
}
