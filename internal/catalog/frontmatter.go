package catalog

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseFrontmatter extracts the leading front-matter block of a document.
// Scalar fields become strings; nested structures are skipped. Absent or
// malformed blocks yield an empty map, never an error.
func ParseFrontmatter(text string) map[string]string {
	fields := map[string]string{}
	block, ok := frontmatterBlock(text)
	if !ok {
		return fields
	}
	var raw map[string]any
	if err := yaml.Unmarshal([]byte(block), &raw); err != nil {
		// Not valid yaml; a title line is still worth recovering.
		if title, found := scanTitleLine(block); found {
			fields["title"] = title
		}
		return fields
	}
	for key, value := range raw {
		switch v := value.(type) {
		case string:
			fields[key] = v
		case nil:
			fields[key] = ""
		case bool, int, int64, uint64, float64:
			fields[key] = fmt.Sprint(v)
		}
	}
	return fields
}

// frontmatterBlock returns the body between the leading fence and its
// closing fence. The opening fence must be the first line of the text.
func frontmatterBlock(text string) (string, bool) {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	if !strings.HasPrefix(normalized, "---\n") {
		return "", false
	}
	body := normalized[len("---\n"):]
	if strings.HasPrefix(body, "---\n") || body == "---" {
		return "", true
	}
	if idx := strings.Index(body, "\n---\n"); idx >= 0 {
		return body[:idx], true
	}
	if strings.HasSuffix(body, "\n---") {
		return strings.TrimSuffix(body, "\n---"), true
	}
	return "", false
}

// scanTitleLine recovers a title from a block yaml cannot parse.
func scanTitleLine(block string) (string, bool) {
	for _, line := range strings.Split(block, "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "title:") {
			continue
		}
		title := strings.TrimSpace(strings.TrimPrefix(trimmed, "title:"))
		title = strings.Trim(title, `"'`)
		if title != "" {
			return title, true
		}
	}
	return "", false
}
