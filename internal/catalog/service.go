package catalog

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"almanac/api/internal/fetch"
	"almanac/api/internal/source"
)

// Service is the public surface of the catalog engine. It owns the live
// session and swaps in a fresh one on invalidation.
type Service struct {
	origin source.Origin
	shared *fetch.ContentCache

	mu      sync.Mutex
	current *session
}

type Option func(*Service)

// WithContentCache adds a shared byte-level cache tier consulted before
// origin reads. A nil cache leaves the tier disabled.
func WithContentCache(cache *fetch.ContentCache) Option {
	return func(s *Service) { s.shared = cache }
}

func NewService(origin source.Origin, opts ...Option) *Service {
	s := &Service{origin: origin}
	for _, opt := range opts {
		opt(s)
	}
	s.current = newSession(s.origin, s.shared)
	return s
}

func (s *Service) session() *session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Invalidate discards all session caches. In-flight work keeps running
// against the old session; the next call starts fresh.
func (s *Service) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = newSession(s.origin, s.shared)
}

// LoadContent builds the full catalog. Concurrent callers share a single
// build and the result is memoized until Invalidate.
func (s *Service) LoadContent(ctx context.Context) (Catalog, error) {
	sess := s.session()
	value, err := sess.builds.Get(ctx, "catalog", func(ctx context.Context) (any, error) {
		started := time.Now()
		built, err := sess.buildCatalog(ctx)
		if err != nil {
			return nil, err
		}
		log.Printf("catalog: session %s built %d projects, %d documents in %s",
			sess.id, len(built.Projects), len(built.Documents), time.Since(started).Round(time.Millisecond))
		return built, nil
	})
	if err != nil {
		return Catalog{}, err
	}
	return *value.(*Catalog), nil
}

// DocumentContent returns the raw text behind doc. Concurrent requests for
// the same source file share one retrieval.
func (s *Service) DocumentContent(ctx context.Context, doc Document) ([]byte, error) {
	return s.session().documentText(ctx, doc.SourcePath)
}

// DocumentFrontmatter parses the leading front-matter block of doc.
func (s *Service) DocumentFrontmatter(ctx context.Context, doc Document) (map[string]string, error) {
	return s.session().frontmatter(ctx, doc.SourcePath)
}

// ContentByPath serves a text tree path through the session cache.
func (s *Service) ContentByPath(ctx context.Context, path string) ([]byte, error) {
	return s.session().documentText(ctx, path)
}

// FrontmatterByPath parses the front matter of a text tree path.
func (s *Service) FrontmatterByPath(ctx context.Context, path string) (map[string]string, error) {
	return s.session().frontmatter(ctx, path)
}

// AssetByPath serves a binary tree file through the shared cache tier
// without pinning it in process memory.
func (s *Service) AssetByPath(ctx context.Context, path string) ([]byte, error) {
	return s.session().readThrough(ctx, path)
}

// Ping verifies the origin and, when configured, the shared cache tier.
func (s *Service) Ping(ctx context.Context) error {
	if err := s.origin.Ping(ctx); err != nil {
		return fmt.Errorf("origin: %w", err)
	}
	if err := s.shared.Ping(ctx); err != nil {
		return fmt.Errorf("content cache: %w", err)
	}
	return nil
}
