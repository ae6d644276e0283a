package handlers

import (
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"learnfield.org/course-web/internal/catalog"
	"learnfield.org/course-web/internal/nav"
	"learnfield.org/course-web/internal/plan"
	"learnfield.org/course-web/internal/seo"
)

var htmlPolicy = bluemonday.UGCPolicy()

// SanitizeHTML renders API-provided rich text safely.
func SanitizeHTML(s string) template.HTML {
	return template.HTML(htmlPolicy.Sanitize(s))
}

// CoursePage is the view model for the course detail page.
type CoursePage struct {
	Title string
	Lang  string
	Path  string

	SEO       seo.Meta
	Analytics Analytics

	Tabs        []nav.Tab
	Breadcrumbs []nav.Crumb

	Course          catalog.Course
	DescriptionHTML template.HTML
	Plan            plan.Plan
	Trailer         *catalog.Media
	Checklist       []catalog.ChecklistItem

	CTAName    string
	CTAValue   string
	PriceLabel string

	// error state
	LoadFailed   bool
	ErrorTitle   string
	ErrorMessage string
	RetryLabel   string
}

// BuildCoursePage assembles the full page view model from a fetched document.
// t resolves UI strings for the active language.
func BuildCoursePage(course catalog.Course, lang, canonical string, t func(string) string) CoursePage {
	p := plan.Build(course.Sections, lang)

	ctaName := strings.TrimSpace(course.CTA.Name)
	if ctaName == "" {
		ctaName = t("enroll.now")
	}

	return CoursePage{
		Title:           course.Title,
		Lang:            lang,
		Path:            canonical,
		SEO:             seo.Build(course, canonical),
		Tabs:            nav.Tabs(p, ""),
		Breadcrumbs:     nav.Breadcrumbs(t("nav.home"), course.Title),
		Course:          course,
		DescriptionHTML: SanitizeHTML(course.Description),
		Plan:            p,
		Trailer:         firstVideo(course.Media),
		Checklist:       visibleChecklist(course.Checklist),
		CTAName:         ctaName,
		CTAValue:        course.CTA.Value,
		PriceLabel:      t("price.default"),
	}
}

// BuildCourseError assembles the fixed error state with a retry affordance.
func BuildCourseError(lang, path, message string, t func(string) string) CoursePage {
	return CoursePage{
		Title:        t("error.title"),
		Lang:         lang,
		Path:         path,
		LoadFailed:   true,
		ErrorTitle:   t("error.title"),
		ErrorMessage: message,
		RetryLabel:   t("error.retry"),
	}
}

func firstVideo(media []catalog.Media) *catalog.Media {
	for i := range media {
		if media[i].ResourceType == "video" && media[i].ResourceValue != "" {
			return &media[i]
		}
	}
	return nil
}

func visibleChecklist(items []catalog.ChecklistItem) []catalog.ChecklistItem {
	out := make([]catalog.ChecklistItem, 0, len(items))
	for _, item := range items {
		if item.Text != "" {
			out = append(out, item)
		}
	}
	return out
}
