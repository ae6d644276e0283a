// Package plan turns a fetched course document's section list into an
// ordered render plan: supported sections in document order, each with a
// resolved display label, a stable anchor, and its decoded variant payload.
package plan

import (
	"learnfield.org/course-web/internal/catalog"
	"learnfield.org/course-web/internal/fallback"
)

// Entry is one renderable section.
type Entry struct {
	Section catalog.Section
	Label   string
	Anchor  string // equals the section type; used for in-page deep links
	Items   any    // decoded variant slice, or fallback.Content for static kinds
}

// Plan is the ordered, filtered render plan for one document.
type Plan struct {
	Entries []Entry
	anchors map[string]int
}

// Build iterates sections in document order, dropping unsupported kinds and
// sections whose values fail to decode. order_idx is advisory and never used
// as a sort key. When two sections share a type they all render, but the
// anchor registration is last-wins, so in-page navigation targets the final
// occurrence; the type string is the only stable anchor key available.
func Build(sections []catalog.Section, lang string) Plan {
	lang = fallback.NormalizeLang(lang)
	p := Plan{anchors: map[string]int{}}
	for _, s := range sections {
		if !catalog.SupportedType(s.Type) {
			continue
		}
		items, err := catalog.DecodeValues(s.Type, s.Values)
		if err != nil {
			continue
		}
		if items == nil {
			items = fallback.Static(s.Type, lang)
		}
		if faqs, ok := items.([]catalog.FAQItem); ok && len(faqs) == 0 {
			items = fallback.DefaultFAQ(lang)
		}
		e := Entry{
			Section: s,
			Label:   fallback.Label(s.Type, s.Name, lang),
			Anchor:  string(s.Type),
			Items:   items,
		}
		p.Entries = append(p.Entries, e)
		p.anchors[e.Anchor] = len(p.Entries) - 1
	}
	return p
}

// Tabs returns the order-preserving filtered view of named sections that
// feeds the navigation strip. Sections the API left unnamed still render but
// do not get a tab.
func (p Plan) Tabs() []Entry {
	tabs := make([]Entry, 0, len(p.Entries))
	for _, e := range p.Entries {
		if e.Section.Name != "" {
			tabs = append(tabs, e)
		}
	}
	return tabs
}

// AnchorTarget resolves an anchor to its registered entry (last occurrence
// when duplicated).
func (p Plan) AnchorTarget(anchor string) (Entry, bool) {
	i, ok := p.anchors[anchor]
	if !ok {
		return Entry{}, false
	}
	return p.Entries[i], true
}
