package catalog

import "encoding/json"

// Course is the content document fetched from the discovery API for a single
// (slug, lang) pair. Field names mirror the API payload.
type Course struct {
	Slug           string          `json:"slug"`
	ID             int             `json:"id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"` // rich text (HTML)
	Platform       string          `json:"platform"`
	Type           string          `json:"type"`
	Modality       string          `json:"modality"`
	StartAt        string          `json:"start_at"`
	DeliveryMethod string          `json:"delivery_method"`
	Media          []Media         `json:"media"`
	Checklist      []ChecklistItem `json:"checklist"`
	SEO            SEO             `json:"seo"`
	CTA            CTA             `json:"cta_text"`
	Sections       []Section       `json:"sections"`
}

// Media is one gallery entry (image, video, or thumbnail).
type Media struct {
	Name          string `json:"name"`
	ResourceType  string `json:"resource_type"`
	ResourceValue string `json:"resource_value"`
	ThumbnailURL  string `json:"thumbnail_url,omitempty"`
}

// ChecklistItem is one bullet in the course fact list shown beside the hero.
type ChecklistItem struct {
	ID                 string `json:"id"`
	Icon               string `json:"icon"`
	Text               string `json:"text"`
	Color              string `json:"color"`
	ListPageVisibility bool   `json:"list_page_visibility"`
}

// CTA is the primary call-to-action label and target.
type CTA struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// SEO carries document-level metadata for the page head.
type SEO struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Keywords    []string      `json:"keywords"`
	DefaultMeta []Meta        `json:"defaultMeta"`
	Schema      []SchemaEntry `json:"schema"`
}

// Meta is an arbitrary name/content meta pair.
type Meta struct {
	Content string `json:"content"`
	Type    string `json:"type"`
	Value   string `json:"value"`
}

// SchemaEntry is a structured-data snippet provided by the API (e.g. ld-json).
type SchemaEntry struct {
	MetaName  string `json:"meta_name"`
	MetaValue string `json:"meta_value"`
	Type      string `json:"type"`
}

// Section is one typed content block inside a course document. Values is kept
// raw; DecodeValues casts it into the per-kind variant slice. OrderIdx is
// advisory only: document order of Course.Sections is the display order.
type Section struct {
	Type        SectionType     `json:"type"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	BgColor     string          `json:"bg_color"`
	OrderIdx    int             `json:"order_idx"`
	Values      json.RawMessage `json:"values"`
}
