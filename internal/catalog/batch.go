package catalog

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// GetCourses fetches one document per slug concurrently and returns only the
// successes, in the relative order of the input slugs. A failing slug never
// fails the batch; results may be incomplete. Callers that must distinguish
// partial results should fetch slugs individually with GetCourse.
func (c *Client) GetCourses(ctx context.Context, slugs []string, lang string) []Course {
	if len(slugs) == 0 {
		return []Course{}
	}
	lang = NormalizeLang(lang)

	results := make([]*Course, len(slugs))
	var wg sync.WaitGroup
	for i, slug := range slugs {
		wg.Add(1)
		go func(i int, slug string) {
			defer wg.Done()
			course, err := c.GetCourse(ctx, slug, lang)
			if err != nil {
				c.logger.Warn("batch fetch dropped slug", zap.String("slug", slug), zap.Error(err))
				return
			}
			results[i] = &course
		}(i, slug)
	}
	wg.Wait()

	out := make([]Course, 0, len(slugs))
	for _, r := range results {
		if r != nil {
			out = append(out, *r)
		}
	}
	return out
}
