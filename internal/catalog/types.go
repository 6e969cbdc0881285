// Package catalog builds the browsable project catalog from a content
// tree origin: it classifies tree paths, resolves declared dependencies
// between projects and merges inherited documents into each project's
// visible set.
package catalog

// Kind discriminates classified tree entries.
type Kind string

const (
	KindDocument Kind = "document"
	KindFreeText Kind = "freeText"
	KindRawText  Kind = "rawText"
)

// Entry is one classified path from the origin tree. Version is empty for
// free texts, which sit directly under the project root.
type Entry struct {
	Project    string
	Kind       Kind
	Version    string
	Path       string
	SourcePath string
}

// ProjectMetadata is the parsed index record for one project. Immutable
// once fetched.
type ProjectMetadata struct {
	DisplayName  string
	Dependencies []string
	AssetOwners  []string
}

// TextFile is a version-free text attached to a project root.
type TextFile struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// VersionedText is an auxiliary raw text inside a project's version tree.
type VersionedText struct {
	Version string `json:"version"`
	Name    string `json:"name"`
	URL     string `json:"url"`
}

// Project is one browsable catalog entry. Projects without valid metadata
// never appear here even when their documents are inherited by others.
type Project struct {
	ID                 string          `json:"id"`
	DisplayName        string          `json:"displayName"`
	AuxiliaryTextFiles []TextFile      `json:"auxiliaryTextFiles"`
	RawTextFiles       []VersionedText `json:"rawTextFiles,omitempty"`
	AssetOwners        []string        `json:"assetOwners,omitempty"`
}

// Document is the externally visible unit of the catalog. SourceProject is
// set only on entries inherited across a dependency boundary and names the
// original declaring project, not the immediate dependency.
type Document struct {
	ID            string `json:"id"`
	Project       string `json:"project"`
	SourceProject string `json:"sourceProject,omitempty"`
	Version       string `json:"version"`
	FilePath      string `json:"filePath"`
	DocumentName  string `json:"documentName"`
	Title         string `json:"title"`
	ContentURL    string `json:"contentUrl"`
	ThumbnailURL  string `json:"thumbnailUrl,omitempty"`

	// SourcePath is the origin tree path backing this entry. Inherited
	// copies keep the declaring project's path.
	SourcePath string `json:"-"`
}

// Catalog is one immutable build output. Projects are ordered by id,
// documents by owning project, version and file path.
type Catalog struct {
	Projects  []Project  `json:"projects"`
	Documents []Document `json:"documents"`
}
