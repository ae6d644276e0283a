package nav

import (
	"strings"

	"learnfield.org/course-web/internal/plan"
)

// Tab is one entry in the section navigation strip. Href is an in-page
// anchor; clicking it scrolls to the rendered block with id == the section
// type.
type Tab struct {
	Anchor string
	Href   string
	Label  string
	Active bool
}

// Crumb represents a breadcrumb entry.
type Crumb struct {
	Href   string
	Label  string
	Active bool
}

// Tabs builds the navigation strip from a render plan. Only named sections
// get a tab; the active tab is matched by anchor.
func Tabs(p plan.Plan, activeAnchor string) []Tab {
	entries := p.Tabs()
	tabs := make([]Tab, 0, len(entries))
	for _, e := range entries {
		tabs = append(tabs, Tab{
			Anchor: e.Anchor,
			Href:   "#" + e.Anchor,
			Label:  e.Label,
			Active: e.Anchor == activeAnchor,
		})
	}
	return tabs
}

// Breadcrumbs builds the Home > course trail for a course page.
func Breadcrumbs(homeLabel, courseTitle string) []Crumb {
	crumbs := []Crumb{{Href: "/", Label: homeLabel}}
	if strings.TrimSpace(courseTitle) != "" {
		crumbs = append(crumbs, Crumb{Label: courseTitle, Active: true})
	} else {
		crumbs[0].Active = true
	}
	return crumbs
}
