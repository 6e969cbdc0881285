package app

import (
	"context"
	"strings"

	"almanac/api/internal/catalog"
	"almanac/api/internal/search"
)

type contentProvider interface {
	LoadContent(ctx context.Context) (catalog.Catalog, error)
	ContentByPath(ctx context.Context, path string) ([]byte, error)
	FrontmatterByPath(ctx context.Context, path string) (map[string]string, error)
	AssetByPath(ctx context.Context, path string) ([]byte, error)
	Invalidate()
	Ping(ctx context.Context) error
}

type searchProvider interface {
	Search(q search.Query) search.Response
	Sync(records []search.DocumentRecord)
}

type Service struct {
	content contentProvider
	search  searchProvider
}

func New(content *catalog.Service, searcher *search.Service) *Service {
	return &Service{content: content, search: searcher}
}

// Bootstrap builds the catalog once and primes the search index. A failure
// is not fatal: the next request rebuilds lazily.
func (s *Service) Bootstrap(ctx context.Context) error {
	cat, err := s.content.LoadContent(ctx)
	if err != nil {
		return err
	}
	s.syncSearch(cat)
	return nil
}

func (s *Service) Catalog(ctx context.Context) (catalog.Catalog, error) {
	return s.content.LoadContent(ctx)
}

func (s *Service) Projects(ctx context.Context) ([]catalog.Project, error) {
	cat, err := s.content.LoadContent(ctx)
	if err != nil {
		return nil, err
	}
	return cat.Projects, nil
}

// ProjectByID returns one project and every document browsable under it,
// inherited copies included.
func (s *Service) ProjectByID(ctx context.Context, id string) (map[string]any, error) {
	cat, err := s.content.LoadContent(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range cat.Projects {
		if p.ID != id {
			continue
		}
		documents := make([]catalog.Document, 0)
		for _, doc := range cat.Documents {
			if doc.Project == id {
				documents = append(documents, doc)
			}
		}
		return map[string]any{"project": p, "documents": documents}, nil
	}
	return nil, notFound("Unknown project %q", id)
}

func (s *Service) DocumentByID(ctx context.Context, id string) (catalog.Document, error) {
	cat, err := s.content.LoadContent(ctx)
	if err != nil {
		return catalog.Document{}, err
	}
	for _, doc := range cat.Documents {
		if doc.ID == id {
			return doc, nil
		}
	}
	return catalog.Document{}, notFound("Unknown document %q", id)
}

// Content returns the raw bytes of one catalog text file. The path must
// classify as a document, free text or raw text entry.
func (s *Service) Content(ctx context.Context, path string) ([]byte, error) {
	if _, ok := catalog.Classify(path); !ok {
		return nil, notFound("Not a readable content path: %s", path)
	}
	return s.content.ContentByPath(ctx, path)
}

// Frontmatter parses the YAML header of one document.
func (s *Service) Frontmatter(ctx context.Context, path string) (map[string]string, error) {
	entry, ok := catalog.Classify(path)
	if !ok || entry.Kind != catalog.KindDocument {
		return nil, validationError("Not a document path: %s", path)
	}
	return s.content.FrontmatterByPath(ctx, path)
}

// FileContent serves one origin file for the /kb passthrough. Assets skip
// the in-process memo so image bytes are not pinned for a whole session.
func (s *Service) FileContent(ctx context.Context, path string) ([]byte, error) {
	if strings.HasSuffix(strings.ToLower(path), ".png") {
		return s.content.AssetByPath(ctx, path)
	}
	return s.content.ContentByPath(ctx, path)
}

func (s *Service) Search(ctx context.Context, text, project, version string, limit, offset int) search.Response {
	if s.search == nil {
		return search.Response{Results: []search.Result{}, Query: text}
	}
	return s.search.Search(search.Query{
		Text:    text,
		Project: project,
		Version: version,
		Limit:   limit,
		Offset:  offset,
	})
}

// Reload drops the current catalog session and rebuilds immediately.
func (s *Service) Reload(ctx context.Context) (map[string]any, error) {
	s.content.Invalidate()
	cat, err := s.content.LoadContent(ctx)
	if err != nil {
		return nil, err
	}
	s.syncSearch(cat)
	return map[string]any{
		"ok":        true,
		"projects":  len(cat.Projects),
		"documents": len(cat.Documents),
	}, nil
}

func (s *Service) Ping(ctx context.Context) error {
	return s.content.Ping(ctx)
}

func (s *Service) syncSearch(cat catalog.Catalog) {
	if s.search == nil {
		return
	}
	records := make([]search.DocumentRecord, 0, len(cat.Documents))
	for _, doc := range cat.Documents {
		records = append(records, search.DocumentRecord{
			ID:            search.RecordID(doc.ID),
			CatalogID:     doc.ID,
			Project:       doc.Project,
			SourceProject: doc.SourceProject,
			Version:       doc.Version,
			FilePath:      doc.FilePath,
			DocumentName:  doc.DocumentName,
			Title:         doc.Title,
		})
	}
	s.search.Sync(records)
}
