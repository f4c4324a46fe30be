// Package pathfilter decides which vault paths the tooling may touch.
package pathfilter

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/taigrr/obsidian-frontmatter/internal/types"
)

var defaultIgnored = []string{
	".obsidian/**",
	".git/**",
	".trash/**",
	"node_modules/**",
	".DS_Store",
	"Thumbs.db",
}

var defaultExtensions = []string{".md", ".markdown"}

// Filter holds compiled ignore rules and an extension allowlist.
type Filter struct {
	ignored    []*regexp.Regexp
	extensions []string
}

// New builds a Filter from the default rules plus any extra config.
// Patterns are compiled once here, not per lookup.
func New(config *types.PathFilterConfig) *Filter {
	patterns := append([]string{}, defaultIgnored...)
	extensions := append([]string{}, defaultExtensions...)
	if config != nil {
		patterns = append(patterns, config.IgnoredPatterns...)
		extensions = append(extensions, config.AllowedExtensions...)
	}

	f := &Filter{extensions: extensions}
	for _, p := range patterns {
		if re, err := compileGlob(p); err == nil {
			f.ignored = append(f.ignored, re)
		}
	}
	return f
}

// compileGlob converts a glob pattern to an anchored regexp:
// ** crosses path separators, * and ? stay within one segment.
func compileGlob(pattern string) (*regexp.Regexp, error) {
	quoted := regexp.QuoteMeta(strings.ReplaceAll(pattern, "\\", "/"))
	quoted = strings.ReplaceAll(quoted, `\*\*`, ".*")
	quoted = strings.ReplaceAll(quoted, `\*`, "[^/]*")
	quoted = strings.ReplaceAll(quoted, `\?`, "[^/]")
	return regexp.Compile("^" + quoted + "$")
}

// Allowed reports whether a vault-relative path passes the ignore
// rules and, for files, the extension allowlist.
func (f *Filter) Allowed(path string) bool {
	normalized := strings.ReplaceAll(path, "\\", "/")
	for _, re := range f.ignored {
		if re.MatchString(normalized) {
			return false
		}
	}

	ext := strings.ToLower(filepath.Ext(normalized))
	if ext == "" || strings.HasSuffix(normalized, "/") {
		// Directories pass; ignore rules alone govern them.
		return true
	}
	for _, allowed := range f.extensions {
		if ext == allowed {
			return true
		}
	}
	return false
}
