package querycache

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnfield.org/course-web/internal/catalog"
)

// fakeFetcher counts calls and fails the first failN of them.
type fakeFetcher struct {
	mu    sync.Mutex
	calls int
	failN int
	block chan struct{} // when set, each call waits on it before returning
}

func (f *fakeFetcher) GetCourse(ctx context.Context, slug, lang string) (catalog.Course, error) {
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	f.calls++
	n := f.calls
	failN := f.failN
	f.mu.Unlock()
	if n <= failN {
		return catalog.Course{}, &catalog.LoadError{Cause: catalog.CauseTransport, Message: "boom"}
	}
	return catalog.Course{Slug: slug, Title: "Course " + slug + " (" + lang + ")"}, nil
}

func (f *fakeFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func newTestStore(f Fetcher) *Store {
	s := New(f, nil)
	s.SetRetryWaits(time.Millisecond, 5*time.Millisecond)
	return s
}

func TestGetCachesWithinFreshWindow(t *testing.T) {
	f := &fakeFetcher{}
	s := newTestStore(f)

	a, err := s.Get(context.Background(), "ielts-course", "en")
	require.NoError(t, err)
	b, err := s.Get(context.Background(), "ielts-course", "en")
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, 1, f.callCount(), "second call is served from cache")
}

func TestGetKeysBySlugAndLang(t *testing.T) {
	f := &fakeFetcher{}
	s := newTestStore(f)

	_, err := s.Get(context.Background(), "ielts-course", "en")
	require.NoError(t, err)
	_, err = s.Get(context.Background(), "ielts-course", "bn")
	require.NoError(t, err)

	assert.Equal(t, 2, f.callCount())
	assert.Equal(t, 2, s.Len())
}

func TestGetRetriesThenSucceeds(t *testing.T) {
	f := &fakeFetcher{failN: 2}
	s := newTestStore(f)

	course, err := s.Get(context.Background(), "flaky", "en")
	require.NoError(t, err)
	assert.Equal(t, "flaky", course.Slug)
	assert.Equal(t, 3, f.callCount())
}

func TestGetGivesUpAfterThreeAttempts(t *testing.T) {
	f := &fakeFetcher{failN: 10}
	s := newTestStore(f)

	_, err := s.Get(context.Background(), "down", "en")
	require.Error(t, err)
	assert.Equal(t, 3, f.callCount(), "three attempts total, including the first")
}

func TestSeedFreshSkipsFetch(t *testing.T) {
	f := &fakeFetcher{}
	s := newTestStore(f)
	s.Seed("ielts-course", "en", catalog.Course{Slug: "ielts-course", Title: "Seeded"}, true)

	course, err := s.Get(context.Background(), "ielts-course", "en")
	require.NoError(t, err)
	assert.Equal(t, "Seeded", course.Title)
	assert.Equal(t, 0, f.callCount())
}

func TestSeedStaleTriggersRefetch(t *testing.T) {
	f := &fakeFetcher{}
	s := newTestStore(f)
	s.Seed("ielts-course", "en", catalog.Course{Slug: "ielts-course", Title: "Seeded"}, false)

	course, err := s.Get(context.Background(), "ielts-course", "en")
	require.NoError(t, err)
	assert.NotEqual(t, "Seeded", course.Title)
	assert.Equal(t, 1, f.callCount())
}

func TestStaleServedWhenRefetchFails(t *testing.T) {
	f := &fakeFetcher{failN: 10}
	s := newTestStore(f)
	s.Seed("ielts-course", "en", catalog.Course{Slug: "ielts-course", Title: "Seeded"}, false)

	course, err := s.Get(context.Background(), "ielts-course", "en")
	require.NoError(t, err, "stale entry beats an error")
	assert.Equal(t, "Seeded", course.Title)
}

func TestFreshnessExpiry(t *testing.T) {
	f := &fakeFetcher{}
	s := newTestStore(f)

	base := time.Now()
	s.now = func() time.Time { return base }

	_, err := s.Get(context.Background(), "ielts-course", "en")
	require.NoError(t, err)

	// inside the window: cache hit
	s.now = func() time.Time { return base.Add(DefaultFreshFor - time.Second) }
	_, err = s.Get(context.Background(), "ielts-course", "en")
	require.NoError(t, err)
	assert.Equal(t, 1, f.callCount())

	// past the window: refetch
	s.now = func() time.Time { return base.Add(DefaultFreshFor + time.Second) }
	_, err = s.Get(context.Background(), "ielts-course", "en")
	require.NoError(t, err)
	assert.Equal(t, 2, f.callCount())
}

func TestEviction(t *testing.T) {
	f := &fakeFetcher{}
	s := newTestStore(f)

	base := time.Now()
	s.now = func() time.Time { return base }

	_, err := s.Get(context.Background(), "old", "en")
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())

	s.now = func() time.Time { return base.Add(DefaultEvictAfter + time.Second) }
	_, err = s.Get(context.Background(), "other", "en")
	require.NoError(t, err)

	assert.Equal(t, 1, s.Len(), "untouched entry was swept")
}

func TestSetWindows(t *testing.T) {
	f := &fakeFetcher{}
	s := newTestStore(f)
	s.SetWindows(time.Minute, 2*time.Minute)

	base := time.Now()
	s.now = func() time.Time { return base }
	_, err := s.Get(context.Background(), "ielts-course", "en")
	require.NoError(t, err)

	s.now = func() time.Time { return base.Add(90 * time.Second) }
	_, err = s.Get(context.Background(), "ielts-course", "en")
	require.NoError(t, err)
	assert.Equal(t, 2, f.callCount(), "shortened window forces a refetch")
}

func TestConcurrentGetsShareOneFetch(t *testing.T) {
	f := &fakeFetcher{block: make(chan struct{})}
	s := newTestStore(f)

	const callers = 8
	var launched, done sync.WaitGroup
	var errs atomic.Int32
	launched.Add(callers)
	done.Add(callers)
	for i := 0; i < callers; i++ {
		go func() {
			launched.Done()
			if _, err := s.Get(context.Background(), "ielts-course", "en"); err != nil {
				errs.Add(1)
			}
			done.Done()
		}()
	}
	launched.Wait()
	time.Sleep(20 * time.Millisecond) // let the goroutines reach the singleflight
	close(f.block)
	done.Wait()

	assert.Zero(t, errs.Load())
	assert.Equal(t, 1, f.callCount(), "concurrent callers share a single fetch")
}
