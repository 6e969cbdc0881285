package search

import "testing"

func TestServiceFallsBackWithoutMeili(t *testing.T) {
	svc := NewService(nil, NewMemory())
	svc.Sync(testRecords())

	resp := svc.Search(Query{Text: "runbook"})
	if resp.Query != "runbook" {
		t.Errorf("resp.Query = %q, want runbook", resp.Query)
	}
	if resp.Total != 1 {
		t.Fatalf("resp.Total = %d, want 1", resp.Total)
	}
	if resp.Results[0].ID != "beta/latest/ops/runbook" {
		t.Errorf("result id = %q, want beta/latest/ops/runbook", resp.Results[0].ID)
	}
}

func TestServiceSearchNeverReturnsNilResults(t *testing.T) {
	svc := NewService(nil, NewMemory())

	resp := svc.Search(Query{Text: "anything"})
	if resp.Results == nil {
		t.Fatal("resp.Results is nil, want empty slice")
	}
	if resp.Total != 0 {
		t.Errorf("resp.Total = %d, want 0", resp.Total)
	}
}

func TestServiceSyncSwapsRecordSet(t *testing.T) {
	svc := NewService(nil, NewMemory())
	svc.Sync(testRecords())

	if resp := svc.Search(Query{Text: "intro"}); resp.Total != 2 {
		t.Fatalf("before swap Total = %d, want 2", resp.Total)
	}

	svc.Sync([]DocumentRecord{
		{
			ID:           "gamma-latest-notes",
			CatalogID:    "gamma/latest/notes",
			Project:      "gamma",
			Version:      "latest",
			FilePath:     "notes",
			DocumentName: "notes",
			Title:        "Release Notes",
		},
	})

	if resp := svc.Search(Query{Text: "intro"}); resp.Total != 0 {
		t.Errorf("after swap stale Total = %d, want 0", resp.Total)
	}
	if resp := svc.Search(Query{Text: "release"}); resp.Total != 1 {
		t.Errorf("after swap new Total = %d, want 1", resp.Total)
	}
}

func TestRecordID(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"alpha/latest/guides/intro", "alpha-latest-guides-intro"},
		{"my_project/1.2/a b", "my_project-1-2-a-b"},
		{"already-safe_123", "already-safe_123"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := RecordID(tt.id); got != tt.want {
			t.Errorf("RecordID(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}
