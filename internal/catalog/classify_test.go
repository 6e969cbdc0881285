package catalog

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		path string
		want Entry
		ok   bool
	}{
		{
			name: "free text at project root",
			path: "kb/alpha/about.txt",
			want: Entry{Project: "alpha", Kind: KindFreeText, Path: "about", SourcePath: "kb/alpha/about.txt"},
			ok:   true,
		},
		{
			name: "document at latest",
			path: "kb/alpha/txt/latest/intro.md",
			want: Entry{Project: "alpha", Kind: KindDocument, Version: "latest", Path: "intro", SourcePath: "kb/alpha/txt/latest/intro.md"},
			ok:   true,
		},
		{
			name: "nested document at pinned version",
			path: "kb/alpha/txt/v2/guides/setup.md",
			want: Entry{Project: "alpha", Kind: KindDocument, Version: "v2", Path: "guides/setup", SourcePath: "kb/alpha/txt/v2/guides/setup.md"},
			ok:   true,
		},
		{
			name: "raw text in version tree",
			path: "kb/alpha/txt/latest/changelog.txt",
			want: Entry{Project: "alpha", Kind: KindRawText, Version: "latest", Path: "changelog", SourcePath: "kb/alpha/txt/latest/changelog.txt"},
			ok:   true,
		},
		{
			name: "leading slash tolerated",
			path: "/kb/alpha/about.txt",
			want: Entry{Project: "alpha", Kind: KindFreeText, Path: "about", SourcePath: "kb/alpha/about.txt"},
			ok:   true,
		},
		{name: "index record is not content", path: "kb/alpha/index.json"},
		{name: "asset is not classified", path: "kb/alpha/txt/latest/intro.png"},
		{name: "unknown root", path: "docs/alpha/txt/latest/intro.md"},
		{name: "markdown at project root", path: "kb/alpha/intro.md"},
		{name: "missing text segment", path: "kb/alpha/other/latest/intro.md"},
		{name: "version without file", path: "kb/alpha/txt/latest.md"},
		{name: "bare extension", path: "kb/alpha/txt/latest/.md"},
		{name: "empty project", path: "kb//about.txt"},
		{name: "empty segment inside", path: "kb/alpha/txt//intro.md"},
		{name: "too short", path: "kb/alpha"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Classify(tt.path)
			if ok != tt.ok {
				t.Fatalf("Classify(%q) ok = %v, want %v", tt.path, ok, tt.ok)
			}
			if !ok {
				return
			}
			if got != tt.want {
				t.Fatalf("Classify(%q) = %+v, want %+v", tt.path, got, tt.want)
			}
		})
	}
}

func TestAssetPath(t *testing.T) {
	if got, ok := assetPath("kb/alpha/txt/latest/intro.png"); !ok || got != "kb/alpha/txt/latest/intro.png" {
		t.Fatalf("assetPath() = %q, %v", got, ok)
	}
	for _, path := range []string{
		"kb/alpha/intro.png",
		"kb/alpha/txt/latest/intro.md",
		"assets/alpha/txt/latest/intro.png",
	} {
		if _, ok := assetPath(path); ok {
			t.Fatalf("assetPath(%q) should not match", path)
		}
	}
}
