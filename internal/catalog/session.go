package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"

	"almanac/api/internal/fetch"
	"almanac/api/internal/source"
	"almanac/api/internal/util"
)

// session owns one generation of catalog state: the memoized build and the
// metadata, text and front-matter caches. Invalidation swaps in a fresh
// session; callers holding the old one finish against a consistent view.
type session struct {
	id     string
	origin source.Origin
	shared *fetch.ContentCache

	builds *fetch.Group
	meta   *fetch.Group
	text   *fetch.Group
	matter *fetch.Group
}

func newSession(origin source.Origin, shared *fetch.ContentCache) *session {
	return &session{
		id:     util.NewID("scan"),
		origin: origin,
		shared: shared,
		builds: fetch.NewGroup(),
		meta:   fetch.NewGroup(),
		text:   fetch.NewGroup(),
		matter: fetch.NewGroup(),
	}
}

// metadataRecord is the wire form of a project index file.
type metadataRecord struct {
	Name       string   `json:"name"`
	Dependency []string `json:"dependency"`
	Player     []string `json:"player"`
}

func metadataPath(project string) string {
	return rootSegment + "/" + project + "/" + indexFile
}

// metadata returns the project's parsed index record, or nil when the
// record is missing, malformed or lacks a name. Absence is memoized so
// repeated lookups stay cheap; transport failures are not, so the next
// call retries.
func (s *session) metadata(ctx context.Context, project string) (*ProjectMetadata, error) {
	value, err := s.meta.Get(ctx, project, func(ctx context.Context) (any, error) {
		data, err := s.readThrough(ctx, metadataPath(project))
		if err != nil {
			if errors.Is(err, source.ErrNotExist) {
				return (*ProjectMetadata)(nil), nil
			}
			return nil, err
		}
		var record metadataRecord
		if err := json.Unmarshal(data, &record); err != nil {
			log.Printf("catalog: malformed index for %s: %v", project, err)
			return (*ProjectMetadata)(nil), nil
		}
		if strings.TrimSpace(record.Name) == "" {
			return (*ProjectMetadata)(nil), nil
		}
		return &ProjectMetadata{
			DisplayName:  record.Name,
			Dependencies: record.Dependency,
			AssetOwners:  record.Player,
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return value.(*ProjectMetadata), nil
}

// documentText returns the raw bytes of one tree path, deduplicating
// concurrent retrievals and memoizing the result for the session lifetime.
func (s *session) documentText(ctx context.Context, path string) ([]byte, error) {
	value, err := s.text.Get(ctx, path, func(ctx context.Context) (any, error) {
		data, err := s.readThrough(ctx, path)
		if err != nil {
			return nil, err
		}
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return value.([]byte), nil
}

// frontmatter parses the leading front-matter block of one document. The
// parse is memoized separately from the text so repeated lookups skip both
// retrieval and parsing.
func (s *session) frontmatter(ctx context.Context, path string) (map[string]string, error) {
	value, err := s.matter.Get(ctx, path, func(ctx context.Context) (any, error) {
		text, err := s.documentText(ctx, path)
		if err != nil {
			return nil, err
		}
		return ParseFrontmatter(string(text)), nil
	})
	if err != nil {
		return nil, err
	}
	return value.(map[string]string), nil
}

// readThrough consults the shared cache tier before the origin. Cache
// failures degrade to origin reads.
func (s *session) readThrough(ctx context.Context, path string) ([]byte, error) {
	if data, ok := s.shared.Lookup(ctx, path); ok {
		return data, nil
	}
	data, err := s.origin.Read(ctx, path)
	if err != nil {
		return nil, err
	}
	s.shared.Store(ctx, path, data)
	return data, nil
}
