// Package extract scans a markdown body for bibliographic metadata.
package extract

import (
	"regexp"
	"strings"

	"github.com/taigrr/obsidian-frontmatter/internal/types"
)

// Warning texts for absent fields.
const (
	WarnNoTitle       = "no title heading found"
	WarnNoAuthor      = "no author line found"
	WarnNoPublication = "no publication line found"
	WarnNoDate        = "no date line found"
)

var (
	// First line with a single leading '#' marker.
	titleRe = regexp.MustCompile(`(?m)^#[ \t]+(.+?)[ \t]*$`)

	// Labeled field lines. Bold emphasis markers around the label are
	// optional: "**Author(s):** Jane" and "Author(s): Jane" both match.
	authorRe      = labelRe(`Author\(s\)`)
	publicationRe = labelRe(`Publication`)
	dateRe        = labelRe(`Date`)

	// Author list separators: comma, semicolon, ampersand, or the
	// standalone word "and". Word boundaries keep names like
	// "Anderson" intact.
	authorSepRe = regexp.MustCompile(`[,;&]|\s+(?i:and)\s+`)
)

func labelRe(label string) *regexp.Regexp {
	return regexp.MustCompile(`(?im)^(?:\*\*)?` + label + `:(?:\*\*)?[ \t]*(.+?)[ \t]*$`)
}

// Extract scans body text for a title heading and labeled
// author/publication/date lines. The first occurrence of each wins.
// Extraction never fails; absent fields yield warnings and partial
// metadata. The date is returned raw, not yet normalized.
func Extract(body string) (types.MarkdownMetadata, []string) {
	var md types.MarkdownMetadata
	var warnings []string

	if m := titleRe.FindStringSubmatch(body); m != nil {
		md.Title = trimTitle(m[1])
	}
	if md.Title == "" {
		warnings = append(warnings, WarnNoTitle)
	}

	if m := authorRe.FindStringSubmatch(body); m != nil {
		md.Authors = SplitAuthors(m[1])
	}
	if len(md.Authors) == 0 {
		warnings = append(warnings, WarnNoAuthor)
	}

	if m := publicationRe.FindStringSubmatch(body); m != nil {
		md.Book = strings.TrimSpace(m[1])
	}
	if md.Book == "" {
		warnings = append(warnings, WarnNoPublication)
	}

	if m := dateRe.FindStringSubmatch(body); m != nil {
		md.RawDate = strings.TrimSpace(m[1])
	}
	if md.RawDate == "" {
		warnings = append(warnings, WarnNoDate)
	}

	return md, warnings
}

// SplitAuthors tokenizes a raw author string on the recognized
// separators, trims each token, drops empty ones, and deduplicates by
// exact string equality while preserving first-seen order.
func SplitAuthors(raw string) []string {
	var authors []string
	seen := make(map[string]bool)
	for _, token := range authorSepRe.Split(raw, -1) {
		token = strings.TrimSpace(token)
		if token == "" || seen[token] {
			continue
		}
		seen[token] = true
		authors = append(authors, token)
	}
	return authors
}

// trimTitle strips trailing whitespace and trailing punctuation from a
// heading. Question and exclamation marks are kept since they carry
// meaning in titles.
func trimTitle(s string) string {
	s = strings.TrimRight(s, " \t")
	s = strings.TrimRight(s, ".,;:")
	return strings.TrimRight(s, " \t")
}
