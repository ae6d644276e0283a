package seo

import (
	"html/template"
	"strings"

	"learnfield.org/course-web/internal/catalog"
)

// OpenGraph holds og:* metadata for the page head.
type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
	URL         string
}

// Meta is the resolved head metadata for one page.
type Meta struct {
	Title       string
	Description string
	Keywords    string
	Canonical   string
	OG          OpenGraph
	Extra       []catalog.Meta
	JSONLD      []template.JS
}

// Build resolves page metadata from the document's seo block, falling back to
// the course title and description when the block is sparse.
func Build(course catalog.Course, canonical string) Meta {
	m := Meta{
		Title:       firstNonEmpty(course.SEO.Title, course.Title),
		Description: firstNonEmpty(course.SEO.Description, excerpt(course.Description)),
		Keywords:    strings.Join(course.SEO.Keywords, ", "),
		Canonical:   canonical,
		Extra:       append([]catalog.Meta(nil), course.SEO.DefaultMeta...),
		JSONLD:      jsonLD(course.SEO.Schema),
	}
	m.OG = OpenGraph{
		Title:       m.Title,
		Description: m.Description,
		Image:       firstImage(course.Media),
		Type:        "website",
		URL:         canonical,
	}
	return m
}

func jsonLD(entries []catalog.SchemaEntry) []template.JS {
	docs := FromSchema(entries)
	out := make([]template.JS, 0, len(docs))
	for _, d := range docs {
		out = append(out, template.JS(d))
	}
	return out
}

func firstImage(media []catalog.Media) string {
	for _, item := range media {
		if item.ResourceType == "image" && item.ResourceValue != "" {
			return item.ResourceValue
		}
		if item.ThumbnailURL != "" {
			return item.ThumbnailURL
		}
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// excerpt strips tags crudely and truncates, for meta description fallback.
func excerpt(html string) string {
	var b strings.Builder
	inTag := false
	for _, r := range html {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	s := strings.Join(strings.Fields(b.String()), " ")
	// truncate on a rune boundary; byte slicing would split Bengali characters
	if r := []rune(s); len(r) > 160 {
		s = string(r[:160])
	}
	return s
}
