// Package fallback supplies language-appropriate defaults for anything the
// discovery API leaves blank: section labels, static section bodies, and the
// default FAQ list. API-provided names are always used verbatim; the tables
// here only fill gaps.
package fallback

import (
	"strings"

	"learnfield.org/course-web/internal/catalog"
)

const defaultLang = "en"

var labels = map[catalog.SectionType]map[string]string{
	catalog.SectionInstructors: {
		"en": "Course Instructor",
		"bn": "কোর্স ইন্সট্রাক্টর",
	},
	catalog.SectionFeatures: {
		"en": "How the course is laid out",
		"bn": "কোর্সটি কীভাবে সাজানো হয়েছে",
	},
	catalog.SectionPointers: {
		"en": "What you will learn by doing the course",
		"bn": "কোর্স করে যা শিখবেন",
	},
	catalog.SectionAbout: {
		"en": "About this course",
		"bn": "এই কোর্স সম্পর্কে",
	},
	catalog.SectionFeatureExplanations: {
		"en": "Course Exclusive Feature",
		"bn": "কোর্স এক্সক্লুসিভ ফিচার",
	},
	catalog.SectionFreeItems: {
		"en": "Free items with this product",
		"bn": "এই কোর্সের সাথে যা ফ্রি পাচ্ছেন",
	},
	catalog.SectionTestimonials: {
		"en": "Students Opinion",
		"bn": "শিক্ষার্থীদের মতামত",
	},
	catalog.SectionRequirements: {
		"en": "Course details",
		"bn": "কোর্সের বিস্তারিত",
	},
	catalog.SectionHowToPay: {
		"en": "Payment process",
		"bn": "যেভাবে পেমেন্ট করবেন",
	},
	catalog.SectionFAQ: {
		"en": "Frequently Asked Questions",
		"bn": "সচরাচর জিজ্ঞাসা",
	},
}

// NormalizeLang maps an arbitrary language code onto the supported set,
// falling back to English.
func NormalizeLang(lang string) string {
	switch strings.ToLower(strings.TrimSpace(lang)) {
	case "bn":
		return "bn"
	default:
		return defaultLang
	}
}

// Label resolves a display label for a section. A non-empty API-provided name
// wins verbatim regardless of language; otherwise the built-in per-kind
// default for lang is used. Never fails: an unknown kind resolves to the
// prettified type string.
func Label(t catalog.SectionType, name, lang string) string {
	if s := strings.TrimSpace(name); s != "" {
		return s
	}
	lang = NormalizeLang(lang)
	if byLang, ok := labels[t]; ok {
		if s, ok := byLang[lang]; ok {
			return s
		}
		return byLang[defaultLang]
	}
	return prettifyType(t)
}

func prettifyType(t catalog.SectionType) string {
	s := strings.ReplaceAll(string(t), "_", " ")
	if s == "" {
		return s
	}
	r := []rune(s)
	if r[0] >= 'a' && r[0] <= 'z' {
		r[0] -= 'a' - 'A'
	}
	return string(r)
}
