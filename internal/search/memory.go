package search

import (
	"strings"
	"sync"
)

// Memory is the fallback Searcher: a linear scan over the records from the
// most recent catalog sync. It answers whenever Meilisearch is absent or
// unreachable.
type Memory struct {
	mu      sync.RWMutex
	records []DocumentRecord
}

// NewMemory returns an empty fallback index.
func NewMemory() *Memory {
	return &Memory{}
}

// Replace swaps in a new record set and reports the primary keys that were
// dropped by the swap.
func (m *Memory) Replace(records []DocumentRecord) []string {
	copied := make([]DocumentRecord, len(records))
	copy(copied, records)

	keep := make(map[string]bool, len(records))
	for _, rec := range records {
		keep[rec.ID] = true
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var dropped []string
	for _, rec := range m.records {
		if !keep[rec.ID] {
			dropped = append(dropped, rec.ID)
		}
	}
	m.records = copied
	return dropped
}

// Healthy always reports true; the scan has no external dependency.
func (m *Memory) Healthy() bool {
	return true
}

// Search matches the query text case-insensitively against title, document
// name and file path. Records keep catalog order, so results are stable
// across calls.
func (m *Memory) Search(q Query) ([]Result, int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	limit := q.Limit
	if limit <= 0 {
		limit = 20
	}

	needle := strings.ToLower(strings.TrimSpace(q.Text))

	results := []Result{}
	total := 0
	skipped := 0
	for _, rec := range m.records {
		if q.Project != "" && rec.Project != q.Project {
			continue
		}
		if q.Version != "" && rec.Version != q.Version {
			continue
		}
		if needle != "" && !recordMatches(rec, needle) {
			continue
		}
		total++
		if skipped < q.Offset {
			skipped++
			continue
		}
		if len(results) < limit {
			results = append(results, resultFromRecord(rec))
		}
	}
	return results, total, nil
}

func recordMatches(rec DocumentRecord, needle string) bool {
	return strings.Contains(strings.ToLower(rec.Title), needle) ||
		strings.Contains(strings.ToLower(rec.DocumentName), needle) ||
		strings.Contains(strings.ToLower(rec.FilePath), needle)
}

func resultFromRecord(rec DocumentRecord) Result {
	return Result{
		ID:            firstNonBlank(rec.CatalogID, rec.ID),
		Project:       rec.Project,
		SourceProject: rec.SourceProject,
		Version:       rec.Version,
		FilePath:      rec.FilePath,
		Title:         rec.Title,
	}
}
