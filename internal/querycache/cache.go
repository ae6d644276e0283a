// Package querycache wraps the catalog client with freshness, retry, and
// single-flight semantics so a page view never issues redundant requests
// against the third-party discovery API.
package querycache

import (
	"context"
	"sync"
	"time"

	"github.com/avast/retry-go/v4"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"learnfield.org/course-web/internal/catalog"
)

const (
	// DefaultFreshFor is how long a fetched document is served without a
	// new request.
	DefaultFreshFor = 5 * time.Minute
	// DefaultEvictAfter is how long an unused entry survives before it is
	// eligible for eviction.
	DefaultEvictAfter = 10 * time.Minute

	maxAttempts   = 3
	retryBaseWait = time.Second
	retryMaxWait  = 30 * time.Second
)

// Fetcher is the slice of the catalog client the store depends on.
type Fetcher interface {
	GetCourse(ctx context.Context, slug, lang string) (catalog.Course, error)
}

type key struct {
	slug string
	lang string
}

func (k key) flightKey() string { return k.slug + "|" + k.lang }

type entry struct {
	course    catalog.Course
	fetchedAt time.Time // zero means seeded stale
	lastUsed  time.Time
}

// Store caches course documents per (slug, lang) key. All cached and
// in-flight state is keyed, so a stale fetch for one key can never overwrite
// state for another.
type Store struct {
	fetcher    Fetcher
	logger     *zap.Logger
	freshFor   time.Duration
	evictAfter time.Duration
	retryBase  time.Duration
	retryMax   time.Duration
	now        func() time.Time

	mu      sync.Mutex
	entries map[key]*entry
	group   singleflight.Group
}

// New constructs a Store with the default freshness and eviction windows.
func New(fetcher Fetcher, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		fetcher:    fetcher,
		logger:     logger,
		freshFor:   DefaultFreshFor,
		evictAfter: DefaultEvictAfter,
		retryBase:  retryBaseWait,
		retryMax:   retryMaxWait,
		now:        time.Now,
		entries:    map[key]*entry{},
	}
}

// SetWindows overrides the freshness and eviction windows (primarily for
// tests). Non-positive values keep the current setting.
func (s *Store) SetWindows(freshFor, evictAfter time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if freshFor > 0 {
		s.freshFor = freshFor
	}
	if evictAfter > 0 {
		s.evictAfter = evictAfter
	}
}

// SetRetryWaits overrides the backoff delay bounds. Zero values are ignored.
func (s *Store) SetRetryWaits(base, max time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if base > 0 {
		s.retryBase = base
	}
	if max > 0 {
		s.retryMax = max
	}
}

// Seed installs a document obtained out-of-band (e.g. a server-side warmup).
// A fresh seed gets the full freshness window; a stale seed is served only if
// a subsequent fetch fails.
func (s *Store) Seed(slug, lang string, course catalog.Course, fresh bool) {
	k := key{slug: slug, lang: catalog.NormalizeLang(lang)}
	now := s.now()
	e := &entry{course: course, lastUsed: now}
	if fresh {
		e.fetchedAt = now
	}
	s.mu.Lock()
	s.entries[k] = e
	s.mu.Unlock()
}

// Get returns the document for (slug, lang), serving the cache inside the
// freshness window and otherwise fetching with retry. Concurrent callers for
// the same key share one in-flight fetch. If a refetch of a stale entry
// fails, the stale value is served instead of the error.
func (s *Store) Get(ctx context.Context, slug, lang string) (catalog.Course, error) {
	k := key{slug: slug, lang: catalog.NormalizeLang(lang)}
	now := s.now()

	s.mu.Lock()
	s.sweepLocked(now)
	if e, ok := s.entries[k]; ok && !e.fetchedAt.IsZero() && now.Sub(e.fetchedAt) < s.freshFor {
		e.lastUsed = now
		course := e.course
		s.mu.Unlock()
		return course, nil
	}
	s.mu.Unlock()

	v, err, _ := s.group.Do(k.flightKey(), func() (any, error) {
		return s.fetch(ctx, k)
	})
	if err != nil {
		// stale-if-error: a seeded or expired entry beats an error page
		s.mu.Lock()
		e, ok := s.entries[k]
		if ok {
			e.lastUsed = s.now()
			course := e.course
			s.mu.Unlock()
			s.logger.Warn("serving stale course after fetch failure",
				zap.String("slug", k.slug), zap.String("lang", k.lang), zap.Error(err))
			return course, nil
		}
		s.mu.Unlock()
		return catalog.Course{}, err
	}
	return v.(catalog.Course), nil
}

func (s *Store) fetch(ctx context.Context, k key) (catalog.Course, error) {
	s.mu.Lock()
	baseWait, maxWait := s.retryBase, s.retryMax
	s.mu.Unlock()

	course, err := retry.DoWithData(
		func() (catalog.Course, error) {
			return s.fetcher.GetCourse(ctx, k.slug, k.lang)
		},
		retry.Context(ctx),
		retry.Attempts(maxAttempts),
		retry.Delay(baseWait),
		retry.MaxDelay(maxWait),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			s.logger.Warn("course fetch retry",
				zap.String("slug", k.slug), zap.Uint("attempt", n+1), zap.Error(err))
		}),
	)
	if err != nil {
		return catalog.Course{}, err
	}

	now := s.now()
	s.mu.Lock()
	s.entries[k] = &entry{course: course, fetchedAt: now, lastUsed: now}
	s.mu.Unlock()
	return course, nil
}

// sweepLocked drops entries untouched for longer than the eviction window.
func (s *Store) sweepLocked(now time.Time) {
	for k, e := range s.entries {
		if now.Sub(e.lastUsed) >= s.evictAfter {
			delete(s.entries, k)
		}
	}
}

// Len reports the number of cached entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
