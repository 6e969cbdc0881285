package source

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeTreeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", rel, err)
	}
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", rel, err)
	}
}

func TestDirListsRelativeSlashPaths(t *testing.T) {
	root := t.TempDir()
	writeTreeFile(t, root, "kb/alpha/index.json", `{"name":"Alpha"}`)
	writeTreeFile(t, root, "kb/alpha/notes.txt", "notes")
	writeTreeFile(t, root, "kb/alpha/txt/latest/intro.md", "# Intro")

	dir := NewDir(root)
	paths, err := dir.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	want := []string{
		"kb/alpha/index.json",
		"kb/alpha/notes.txt",
		"kb/alpha/txt/latest/intro.md",
	}
	if !reflect.DeepEqual(paths, want) {
		t.Fatalf("List() = %v, want %v", paths, want)
	}
}

func TestDirReadRoundTrip(t *testing.T) {
	root := t.TempDir()
	writeTreeFile(t, root, "kb/alpha/txt/latest/intro.md", "# Intro\n")

	dir := NewDir(root)
	data, err := dir.Read(context.Background(), "kb/alpha/txt/latest/intro.md")
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if string(data) != "# Intro\n" {
		t.Fatalf("Read() = %q, want %q", data, "# Intro\n")
	}
}

func TestDirReadMissingIsNotExist(t *testing.T) {
	dir := NewDir(t.TempDir())
	_, err := dir.Read(context.Background(), "kb/alpha/txt/latest/missing.md")
	if !errors.Is(err, ErrNotExist) {
		t.Fatalf("Read() error = %v, want ErrNotExist", err)
	}
}

func TestDirRejectsEscapingPaths(t *testing.T) {
	root := t.TempDir()
	writeTreeFile(t, root, "kb/alpha/notes.txt", "notes")

	dir := NewDir(filepath.Join(root, "kb"))
	for _, path := range []string{
		"../secret.txt",
		"alpha/../../kb/alpha/notes.txt",
		"/etc/hosts",
	} {
		if _, err := dir.Read(context.Background(), path); !errors.Is(err, ErrNotExist) {
			t.Fatalf("Read(%q) error = %v, want ErrNotExist", path, err)
		}
	}
}

func TestDirPing(t *testing.T) {
	root := t.TempDir()
	if err := NewDir(root).Ping(context.Background()); err != nil {
		t.Fatalf("Ping() error = %v", err)
	}
	if err := NewDir(filepath.Join(root, "missing")).Ping(context.Background()); err == nil {
		t.Fatal("Ping() on a missing root should fail")
	}
}
