package search

import "strings"

// Result is a single search hit returned to the caller. ID is the catalog
// document id.
type Result struct {
	ID            string `json:"id"`
	Project       string `json:"project"`
	SourceProject string `json:"sourceProject,omitempty"`
	Version       string `json:"version"`
	FilePath      string `json:"filePath"`
	Title         string `json:"title"`
	Snippet       string `json:"snippet,omitempty"`
}

// Query describes a search request.
type Query struct {
	Text    string
	Project string // empty = all projects
	Version string // empty = all versions
	Limit   int
	Offset  int
}

// Response is the envelope returned by the search endpoint.
type Response struct {
	Results []Result `json:"results"`
	Total   int      `json:"total"`
	Query   string   `json:"query"`
}

// Searcher can execute a full-text search.
type Searcher interface {
	Search(q Query) ([]Result, int, error)
	Healthy() bool
}

// DocumentRecord is the data we index for one catalog document. ID is the
// sanitized index primary key; CatalogID preserves the original id.
type DocumentRecord struct {
	ID            string `json:"id"`
	CatalogID     string `json:"catalogId"`
	Project       string `json:"project"`
	SourceProject string `json:"sourceProject,omitempty"`
	Version       string `json:"version"`
	FilePath      string `json:"filePath"`
	DocumentName  string `json:"documentName"`
	Title         string `json:"title"`
}

// RecordID converts a catalog document id into a primary key Meilisearch
// accepts: alphanumerics, hyphens and underscores.
func RecordID(id string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, id)
}
