package handlers

import (
	"learnfield.org/course-web/internal/plan"
)

// PlanEntryJSON is the JSON shape of one render plan entry served by the API
// route.
type PlanEntryJSON struct {
	Type   string `json:"type"`
	Name   string `json:"name,omitempty"`
	Label  string `json:"label"`
	Anchor string `json:"anchor"`
	Items  any    `json:"items,omitempty"`
}

// PlanJSON is the JSON view of a course render plan.
type PlanJSON struct {
	Slug    string          `json:"slug"`
	Lang    string          `json:"lang"`
	Entries []PlanEntryJSON `json:"entries"`
}

// BuildPlanJSON converts a render plan into its API representation.
func BuildPlanJSON(slug, lang string, p plan.Plan) PlanJSON {
	out := PlanJSON{Slug: slug, Lang: lang, Entries: make([]PlanEntryJSON, 0, len(p.Entries))}
	for _, e := range p.Entries {
		out.Entries = append(out.Entries, PlanEntryJSON{
			Type:   string(e.Section.Type),
			Name:   e.Section.Name,
			Label:  e.Label,
			Anchor: e.Anchor,
			Items:  e.Items,
		})
	}
	return out
}
