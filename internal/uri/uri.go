// Package uri provides Obsidian URI generation.
package uri

import (
	"net/url"
	"strings"
)

// NoteURI builds an obsidian:// URI for a note, using the absolute
// path form: obsidian:///absolute/path/to/note. The .md extension is
// dropped since Obsidian resolves it automatically.
func NoteURI(vaultPath, notePath string) string {
	full := vaultPath + "/" + strings.TrimPrefix(notePath, "/")
	full = strings.TrimSuffix(full, ".md")

	// Escape each segment but keep the separators.
	segments := strings.Split(full, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	escaped := strings.TrimPrefix(strings.Join(segments, "/"), "/")

	return "obsidian:///" + escaped
}
