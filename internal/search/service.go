package search

import "log"

// Service is the facade that tries Meilisearch first and falls back to the
// in-memory catalog scan.
type Service struct {
	meili  *Meili
	memory *Memory
}

// NewService creates a search service. meili may be nil if Meilisearch is
// not configured; fallback must not be nil.
func NewService(meili *Meili, fallback *Memory) *Service {
	return &Service{meili: meili, memory: fallback}
}

// Search tries Meilisearch if healthy, otherwise falls back to scanning
// the synced records.
func (s *Service) Search(q Query) Response {
	if s.meili != nil && s.meili.Healthy() {
		results, total, err := s.meili.Search(q)
		if err == nil {
			return Response{Results: nonNil(results), Total: total, Query: q.Text}
		}
		log.Printf("search: meilisearch error, falling back to catalog scan: %v", err)
	}

	results, total, err := s.memory.Search(q)
	if err != nil {
		log.Printf("search: catalog scan error: %v", err)
		return Response{Results: []Result{}, Total: 0, Query: q.Text}
	}
	return Response{Results: nonNil(results), Total: total, Query: q.Text}
}

// Sync replaces the searchable record set after a catalog build. The
// in-memory fallback swaps synchronously; Meilisearch is refreshed in the
// background, including removal of records the rebuild dropped.
func (s *Service) Sync(records []DocumentRecord) {
	dropped := s.memory.Replace(records)

	if s.meili == nil || !s.meili.Healthy() {
		return
	}
	go func() {
		if err := s.meili.IndexDocuments(records); err != nil {
			log.Printf("search: sync %d documents: %v", len(records), err)
		}
		if err := s.meili.RemoveDocuments(dropped); err != nil {
			log.Printf("search: prune %d documents: %v", len(dropped), err)
		}
	}()
}

func nonNil(r []Result) []Result {
	if r == nil {
		return []Result{}
	}
	return r
}
