package seo

import (
	"encoding/json"
	"strings"

	"learnfield.org/course-web/internal/catalog"
)

// FromSchema extracts embeddable JSON-LD documents from the API-provided
// schema entries. Only entries tagged ld-json with a valid JSON body are kept;
// anything else is dropped silently.
func FromSchema(entries []catalog.SchemaEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if !strings.EqualFold(e.Type, "ld-json") {
			continue
		}
		body := strings.TrimSpace(e.MetaValue)
		if body == "" || !json.Valid([]byte(body)) {
			continue
		}
		out = append(out, body)
	}
	return out
}
