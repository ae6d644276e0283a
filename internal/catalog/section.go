package catalog

import (
	"encoding/json"
	"fmt"
)

// SectionType tags a section with its content kind.
type SectionType string

// The closed set of section kinds the page knows how to render. Anything else
// coming from the API is skipped, not an error.
const (
	SectionInstructors         SectionType = "instructors"
	SectionFeatures            SectionType = "features"
	SectionPointers            SectionType = "pointers"
	SectionAbout               SectionType = "about"
	SectionFeatureExplanations SectionType = "feature_explanations"
	SectionFreeItems           SectionType = "free_items"
	SectionTestimonials        SectionType = "testimonials"
	SectionRequirements        SectionType = "requirements"
	SectionHowToPay            SectionType = "how_to_pay"
	SectionFAQ                 SectionType = "faq"
)

var supportedSections = map[SectionType]struct{}{
	SectionInstructors:         {},
	SectionFeatures:            {},
	SectionPointers:            {},
	SectionAbout:               {},
	SectionFeatureExplanations: {},
	SectionFreeItems:           {},
	SectionTestimonials:        {},
	SectionRequirements:        {},
	SectionHowToPay:            {},
	SectionFAQ:                 {},
}

// SupportedType reports whether t is part of the closed supported set.
func SupportedType(t SectionType) bool {
	_, ok := supportedSections[t]
	return ok
}

// AboutItem is one collapsible entry in the about section.
type AboutItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Icon        string `json:"icon"`
	Description string `json:"description"` // rich text (HTML)
}

// PointerItem is one learning-outcome bullet.
type PointerItem struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// FeatureItem is one course-layout feature card.
type FeatureItem struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Icon     string `json:"icon"`
}

// InstructorItem describes one course instructor.
type InstructorItem struct {
	Name              string `json:"name"`
	Slug              string `json:"slug"`
	Image             string `json:"image"`
	Description       string `json:"description"`
	ShortDescription  string `json:"short_description"`
	HasInstructorPage bool   `json:"has_instructor_page"`
}

// FeatureExplanationItem is one exclusive-feature block with its own checklist.
type FeatureExplanationItem struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	FileType       string   `json:"file_type"`
	FileURL        string   `json:"file_url"`
	Checklist      []string `json:"checklist"`
	VideoThumbnail string   `json:"video_thumbnail"`
}

// TestimonialItem is one student opinion, optionally backed by a video.
type TestimonialItem struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Testimonial  string `json:"testimonial"`
	ProfileImage string `json:"profile_image"`
	Thumb        string `json:"thumb"`
	VideoType    string `json:"video_type"`
	VideoURL     string `json:"video_url"`
}

// FAQItem is one question/answer pair.
type FAQItem struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"` // rich text (HTML)
}

// DecodeValues casts a section's raw values into the variant slice implied by
// its type. Missing optional fields decode to zero values; a nil or empty
// payload yields an empty slice. Kinds that render built-in static content
// (free_items, requirements, how_to_pay) carry no payload and decode to nil.
// Unsupported kinds are an error; callers are expected to have filtered them
// with SupportedType first.
func DecodeValues(t SectionType, raw json.RawMessage) (any, error) {
	switch t {
	case SectionInstructors:
		return decodeInto[InstructorItem](raw)
	case SectionFeatures:
		return decodeInto[FeatureItem](raw)
	case SectionPointers:
		return decodeInto[PointerItem](raw)
	case SectionAbout:
		return decodeInto[AboutItem](raw)
	case SectionFeatureExplanations:
		return decodeInto[FeatureExplanationItem](raw)
	case SectionTestimonials:
		return decodeInto[TestimonialItem](raw)
	case SectionFAQ:
		return decodeInto[FAQItem](raw)
	case SectionFreeItems, SectionRequirements, SectionHowToPay:
		return nil, nil
	default:
		return nil, fmt.Errorf("catalog: unsupported section type %q", t)
	}
}

func decodeInto[T any](raw json.RawMessage) ([]T, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("catalog: decode section values: %w", err)
	}
	return items, nil
}
