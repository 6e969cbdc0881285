package catalog

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
)

// scanResult indexes one origin listing: native entries grouped by
// project, plus the set of known asset paths.
type scanResult struct {
	projects  []string
	documents map[string][]Document
	freeTexts map[string][]TextFile
	rawTexts  map[string][]VersionedText
	assets    map[string]struct{}
}

// scanListing classifies every path and groups native entries by project.
// Output ordering is deterministic regardless of listing order.
func scanListing(listing []string) *scanResult {
	sc := &scanResult{
		documents: make(map[string][]Document),
		freeTexts: make(map[string][]TextFile),
		rawTexts:  make(map[string][]VersionedText),
		assets:    make(map[string]struct{}),
	}
	seen := make(map[string]bool)
	for _, raw := range listing {
		if asset, ok := assetPath(raw); ok {
			sc.assets[asset] = struct{}{}
			continue
		}
		entry, ok := Classify(raw)
		if !ok {
			continue
		}
		if !seen[entry.Project] {
			seen[entry.Project] = true
			sc.projects = append(sc.projects, entry.Project)
		}
		switch entry.Kind {
		case KindDocument:
			sc.documents[entry.Project] = append(sc.documents[entry.Project], nativeDocument(entry))
		case KindFreeText:
			sc.freeTexts[entry.Project] = append(sc.freeTexts[entry.Project], TextFile{
				Name: entry.Path,
				URL:  "/" + entry.SourcePath,
			})
		case KindRawText:
			sc.rawTexts[entry.Project] = append(sc.rawTexts[entry.Project], VersionedText{
				Version: entry.Version,
				Name:    entry.Path,
				URL:     "/" + entry.SourcePath,
			})
		}
	}
	sort.Strings(sc.projects)
	for _, docs := range sc.documents {
		sort.Slice(docs, func(i, j int) bool {
			if docs[i].Version != docs[j].Version {
				return docs[i].Version < docs[j].Version
			}
			return docs[i].FilePath < docs[j].FilePath
		})
	}
	for _, texts := range sc.freeTexts {
		sort.Slice(texts, func(i, j int) bool { return texts[i].Name < texts[j].Name })
	}
	for _, texts := range sc.rawTexts {
		sort.Slice(texts, func(i, j int) bool {
			if texts[i].Version != texts[j].Version {
				return texts[i].Version < texts[j].Version
			}
			return texts[i].Name < texts[j].Name
		})
	}
	return sc
}

// nativeDocument builds the catalog entry for a document in its declaring
// project. Title starts as the document name; front matter is consulted
// lazily, never during the build.
func nativeDocument(entry Entry) Document {
	name := entry.Path
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}
	return Document{
		ID:           documentID(entry.Project, entry.Version, entry.Path),
		Project:      entry.Project,
		Version:      entry.Version,
		FilePath:     entry.Path,
		DocumentName: name,
		Title:        name,
		ContentURL:   "/" + entry.SourcePath,
		SourcePath:   entry.SourcePath,
	}
}

func documentID(owner, version, filePath string) string {
	return owner + "/" + version + "/" + filePath
}

// buildCatalog lists the origin, validates each discovered project's
// metadata and merges dependency documents into every validated project's
// visible set. Metadata failures exclude only the affected project.
func (s *session) buildCatalog(ctx context.Context) (*Catalog, error) {
	listing, err := s.origin.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list origin: %w", err)
	}
	sc := scanListing(listing)

	validated := make(map[string]*ProjectMetadata)
	closures := make(map[string][]string)
	for _, id := range sc.projects {
		meta, err := s.metadata(ctx, id)
		if err != nil {
			log.Printf("catalog: metadata for %s: %v", id, err)
			continue
		}
		if meta == nil {
			continue
		}
		validated[id] = meta
		closures[id] = s.resolveClosure(ctx, id)
	}

	built := &Catalog{Projects: []Project{}, Documents: []Document{}}
	for _, id := range sc.projects {
		meta, ok := validated[id]
		if !ok {
			continue
		}
		project := Project{
			ID:                 id,
			DisplayName:        meta.DisplayName,
			AuxiliaryTextFiles: sc.freeTexts[id],
			RawTextFiles:       sc.rawTexts[id],
			AssetOwners:        meta.AssetOwners,
		}
		if project.AuxiliaryTextFiles == nil {
			project.AuxiliaryTextFiles = []TextFile{}
		}
		built.Projects = append(built.Projects, project)
		built.Documents = append(built.Documents, s.mergeDocuments(id, closures[id], sc)...)
	}
	return built, nil
}

// mergeDocuments resolves the documents visible to owner: each closure
// dependency's native documents in order, later dependencies overwriting
// earlier ones at the same (version, filePath) key, then the owner's own
// documents on top. Inherited copies are rebound to owner under a fresh id
// with provenance carried through multi-level inheritance.
func (s *session) mergeDocuments(owner string, closure []string, sc *scanResult) []Document {
	type mergeKey struct{ version, filePath string }
	table := make(map[mergeKey]Document)
	for _, dep := range closure {
		for _, doc := range sc.documents[dep] {
			inherited := doc
			inherited.ID = documentID(owner, doc.Version, doc.FilePath)
			inherited.Project = owner
			inherited.SourceProject = doc.SourceProject
			if inherited.SourceProject == "" {
				inherited.SourceProject = doc.Project
			}
			table[mergeKey{doc.Version, doc.FilePath}] = inherited
		}
	}
	for _, doc := range sc.documents[owner] {
		table[mergeKey{doc.Version, doc.FilePath}] = doc
	}

	merged := make([]Document, 0, len(table))
	for _, doc := range table {
		doc.ThumbnailURL = resolveThumbnail(doc, closure, sc.assets)
		merged = append(merged, doc)
	}
	sort.Slice(merged, func(i, j int) bool {
		if merged[i].Version != merged[j].Version {
			return merged[i].Version < merged[j].Version
		}
		return merged[i].FilePath < merged[j].FilePath
	})
	return merged
}
