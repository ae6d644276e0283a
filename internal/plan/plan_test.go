package plan

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnfield.org/course-web/internal/catalog"
	"learnfield.org/course-web/internal/fallback"
)

func section(t catalog.SectionType, name string, values string) catalog.Section {
	s := catalog.Section{Type: t, Name: name}
	if values != "" {
		s.Values = json.RawMessage(values)
	}
	return s
}

func TestBuildFiltersAndLabels(t *testing.T) {
	sections := []catalog.Section{
		section(catalog.SectionPointers, "What you will learn", `[{"id":"p1","text":"Band 7 strategies"}]`),
		section("unknown_widget", "Mystery", `[]`),
		section(catalog.SectionFAQ, "", `[]`),
	}

	p := Build(sections, "bn")
	require.Len(t, p.Entries, 2, "unknown kinds are skipped")

	assert.Equal(t, catalog.SectionPointers, p.Entries[0].Section.Type)
	assert.Equal(t, "What you will learn", p.Entries[0].Label, "API name wins verbatim")
	items := p.Entries[0].Items.([]catalog.PointerItem)
	require.Len(t, items, 1)
	assert.Equal(t, "Band 7 strategies", items[0].Text)

	assert.Equal(t, catalog.SectionFAQ, p.Entries[1].Section.Type)
	assert.Equal(t, "সচরাচর জিজ্ঞাসা", p.Entries[1].Label)
	faqs := p.Entries[1].Items.([]catalog.FAQItem)
	assert.Len(t, faqs, 4, "empty faq values fall back to the built-in list")

	en := Build(sections, "en")
	assert.Equal(t, "Frequently Asked Questions", en.Entries[1].Label)
}

func TestBuildPreservesDocumentOrder(t *testing.T) {
	sections := []catalog.Section{
		{Type: catalog.SectionFAQ, OrderIdx: 9, Values: json.RawMessage(`[{"id":"1","question":"q","answer":"a"}]`)},
		{Type: catalog.SectionAbout, OrderIdx: 1, Values: json.RawMessage(`[]`)},
	}
	p := Build(sections, "en")
	require.Len(t, p.Entries, 2)
	// order_idx is advisory only
	assert.Equal(t, catalog.SectionFAQ, p.Entries[0].Section.Type)
	assert.Equal(t, catalog.SectionAbout, p.Entries[1].Section.Type)
}

func TestBuildDropsUndecodableSections(t *testing.T) {
	sections := []catalog.Section{
		section(catalog.SectionAbout, "About", `{"not":"a list"}`),
		section(catalog.SectionPointers, "Learn", `[]`),
	}
	p := Build(sections, "en")
	require.Len(t, p.Entries, 1)
	assert.Equal(t, catalog.SectionPointers, p.Entries[0].Section.Type)
}

func TestBuildStaticKinds(t *testing.T) {
	p := Build([]catalog.Section{
		section(catalog.SectionHowToPay, "", ""),
		section(catalog.SectionFreeItems, "", ""),
	}, "en")
	require.Len(t, p.Entries, 2)

	pay := p.Entries[0].Items.(fallback.Content)
	assert.NotEmpty(t, pay.Body)

	free := p.Entries[1].Items.(fallback.Content)
	require.Len(t, free.Items, 1)
}

func TestBuildDuplicateTypeLastWinsAnchor(t *testing.T) {
	p := Build([]catalog.Section{
		section(catalog.SectionPointers, "First", `[{"id":"a","text":"one"}]`),
		section(catalog.SectionPointers, "Second", `[{"id":"b","text":"two"}]`),
	}, "en")

	require.Len(t, p.Entries, 2, "both duplicates render")
	assert.Equal(t, p.Entries[0].Anchor, p.Entries[1].Anchor)

	e, ok := p.AnchorTarget("pointers")
	require.True(t, ok)
	assert.Equal(t, "Second", e.Label)
}

func TestAnchorTargetUnknown(t *testing.T) {
	p := Build(nil, "en")
	_, ok := p.AnchorTarget("pointers")
	assert.False(t, ok)
}

func TestTabsNamedOnly(t *testing.T) {
	p := Build([]catalog.Section{
		section(catalog.SectionPointers, "Learn", `[]`),
		section(catalog.SectionFAQ, "", `[]`),
		section(catalog.SectionAbout, "About", `[]`),
	}, "en")

	tabs := p.Tabs()
	require.Len(t, tabs, 2)
	assert.Equal(t, "Learn", tabs[0].Label)
	assert.Equal(t, "About", tabs[1].Label)
}
