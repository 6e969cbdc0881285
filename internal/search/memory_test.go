package search

import (
	"reflect"
	"testing"
)

func testRecords() []DocumentRecord {
	return []DocumentRecord{
		{
			ID:           "alpha-latest-guides-intro",
			CatalogID:    "alpha/latest/guides/intro",
			Project:      "alpha",
			Version:      "latest",
			FilePath:     "guides/intro",
			DocumentName: "intro",
			Title:        "Getting Started",
		},
		{
			ID:           "alpha-1-2-guides-intro",
			CatalogID:    "alpha/1.2/guides/intro",
			Project:      "alpha",
			Version:      "1.2",
			FilePath:     "guides/intro",
			DocumentName: "intro",
			Title:        "Getting Started",
		},
		{
			ID:            "beta-latest-ops-runbook",
			CatalogID:     "beta/latest/ops/runbook",
			Project:       "beta",
			SourceProject: "alpha",
			Version:       "latest",
			FilePath:      "ops/runbook",
			DocumentName:  "runbook",
			Title:         "Incident Runbook",
		},
	}
}

func TestMemorySearchMatchesTitleNameAndPath(t *testing.T) {
	m := NewMemory()
	m.Replace(testRecords())

	tests := []struct {
		name    string
		text    string
		wantIDs []string
	}{
		{
			name:    "title match is case-insensitive",
			text:    "getting STARTED",
			wantIDs: []string{"alpha/latest/guides/intro", "alpha/1.2/guides/intro"},
		},
		{
			name:    "document name match",
			text:    "runbook",
			wantIDs: []string{"beta/latest/ops/runbook"},
		},
		{
			name:    "file path match",
			text:    "guides/",
			wantIDs: []string{"alpha/latest/guides/intro", "alpha/1.2/guides/intro"},
		},
		{
			name:    "no match",
			text:    "nonexistent",
			wantIDs: []string{},
		},
		{
			name:    "blank query lists everything",
			text:    "",
			wantIDs: []string{"alpha/latest/guides/intro", "alpha/1.2/guides/intro", "beta/latest/ops/runbook"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, total, err := m.Search(Query{Text: tt.text})
			if err != nil {
				t.Fatalf("Search() error = %v", err)
			}
			if total != len(tt.wantIDs) {
				t.Errorf("total = %d, want %d", total, len(tt.wantIDs))
			}
			gotIDs := make([]string, 0, len(results))
			for _, r := range results {
				gotIDs = append(gotIDs, r.ID)
			}
			if !reflect.DeepEqual(gotIDs, tt.wantIDs) {
				t.Errorf("result ids = %v, want %v", gotIDs, tt.wantIDs)
			}
		})
	}
}

func TestMemorySearchFiltersProjectAndVersion(t *testing.T) {
	m := NewMemory()
	m.Replace(testRecords())

	results, total, err := m.Search(Query{Text: "intro", Project: "alpha", Version: "1.2"})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if total != 1 {
		t.Fatalf("total = %d, want 1", total)
	}
	if results[0].ID != "alpha/1.2/guides/intro" {
		t.Errorf("result id = %q, want alpha/1.2/guides/intro", results[0].ID)
	}

	_, total, err = m.Search(Query{Project: "beta"})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if total != 1 {
		t.Errorf("project filter total = %d, want 1", total)
	}
}

func TestMemorySearchPaginates(t *testing.T) {
	m := NewMemory()
	m.Replace(testRecords())

	first, total, err := m.Search(Query{Limit: 2})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if total != 3 {
		t.Errorf("total = %d, want 3", total)
	}
	if len(first) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(first))
	}

	second, _, err := m.Search(Query{Limit: 2, Offset: 2})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(second) != 1 {
		t.Fatalf("len(results) = %d, want 1", len(second))
	}
	if second[0].ID == first[0].ID || second[0].ID == first[1].ID {
		t.Errorf("offset page repeats id %q", second[0].ID)
	}
}

func TestMemoryReplaceReportsDropped(t *testing.T) {
	m := NewMemory()

	if dropped := m.Replace(testRecords()); len(dropped) != 0 {
		t.Fatalf("initial Replace() dropped = %v, want none", dropped)
	}

	kept := testRecords()[:1]
	dropped := m.Replace(kept)
	want := []string{"alpha-1-2-guides-intro", "beta-latest-ops-runbook"}
	if !reflect.DeepEqual(dropped, want) {
		t.Errorf("Replace() dropped = %v, want %v", dropped, want)
	}

	_, total, err := m.Search(Query{})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if total != 1 {
		t.Errorf("total after replace = %d, want 1", total)
	}
}

func TestMemoryResultCarriesProvenance(t *testing.T) {
	m := NewMemory()
	m.Replace(testRecords())

	results, _, err := m.Search(Query{Text: "runbook"})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("len(results) = %d, want 1", len(results))
	}
	r := results[0]
	if r.Project != "beta" || r.SourceProject != "alpha" {
		t.Errorf("provenance = %q/%q, want beta/alpha", r.Project, r.SourceProject)
	}
	if r.Title != "Incident Runbook" {
		t.Errorf("title = %q, want Incident Runbook", r.Title)
	}
}
