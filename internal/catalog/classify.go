package catalog

import "strings"

const (
	rootSegment   = "kb"
	textSegment   = "txt"
	indexFile     = "index.json"
	docExt        = ".md"
	rawTextExt    = ".txt"
	assetExt      = ".png"
	latestVersion = "latest"
)

// Classify determines whether path belongs to the document tree and
// extracts its project, kind, version and relative path. Anything outside
// the recognized shapes is discarded with ok = false; classification is
// total and never fails.
//
// Recognized shapes:
//
//	kb/<project>/<name>.txt                    free text at the project root
//	kb/<project>/txt/<version>/<path...>.md    versioned document
//	kb/<project>/txt/<version>/<path...>.txt   versioned raw text
func Classify(path string) (Entry, bool) {
	trimmed := strings.Trim(path, "/")
	segments := strings.Split(trimmed, "/")
	if len(segments) < 3 || segments[0] != rootSegment {
		return Entry{}, false
	}
	for _, segment := range segments {
		if segment == "" {
			return Entry{}, false
		}
	}
	project := segments[1]
	rest := segments[2:]

	// Free text sits directly under the project root.
	if len(rest) == 1 {
		if !strings.HasSuffix(rest[0], rawTextExt) {
			return Entry{}, false
		}
		name := strings.TrimSuffix(rest[0], rawTextExt)
		if name == "" {
			return Entry{}, false
		}
		return Entry{
			Project:    project,
			Kind:       KindFreeText,
			Path:       name,
			SourcePath: trimmed,
		}, true
	}

	// Everything versioned lives under the text segment.
	if len(rest) < 3 || rest[0] != textSegment {
		return Entry{}, false
	}
	version := rest[1]
	relative := strings.Join(rest[2:], "/")

	var kind Kind
	switch {
	case strings.HasSuffix(relative, docExt):
		kind = KindDocument
		relative = strings.TrimSuffix(relative, docExt)
	case strings.HasSuffix(relative, rawTextExt):
		kind = KindRawText
		relative = strings.TrimSuffix(relative, rawTextExt)
	default:
		return Entry{}, false
	}
	if relative == "" || strings.HasSuffix(relative, "/") {
		return Entry{}, false
	}
	return Entry{
		Project:    project,
		Kind:       kind,
		Version:    version,
		Path:       relative,
		SourcePath: trimmed,
	}, true
}

// assetPath reports whether raw names a thumbnail inside a version tree
// and returns its canonical form.
func assetPath(raw string) (string, bool) {
	trimmed := strings.Trim(raw, "/")
	if !strings.HasSuffix(trimmed, assetExt) {
		return "", false
	}
	segments := strings.Split(trimmed, "/")
	if len(segments) < 5 || segments[0] != rootSegment || segments[2] != textSegment {
		return "", false
	}
	return trimmed, true
}
