// Package pipeline runs the extract, normalize, merge, and validate
// transform over a single markdown document.
package pipeline

import (
	"github.com/taigrr/obsidian-frontmatter/internal/ascii"
	"github.com/taigrr/obsidian-frontmatter/internal/dates"
	"github.com/taigrr/obsidian-frontmatter/internal/extract"
	"github.com/taigrr/obsidian-frontmatter/internal/frontmatter"
	"github.com/taigrr/obsidian-frontmatter/internal/types"
	"github.com/taigrr/obsidian-frontmatter/internal/wikilink"
)

// Warning texts for recoverable conditions seen outside extraction.
const (
	warnBadFrontMatter = "front matter missing or malformed"
	warnBadDate        = "date string did not match any recognized pattern"
)

// Result is the outcome of a single transform.
type Result struct {
	// Output is the reassembled document: merged front matter block
	// followed by the original body untouched.
	Output string
	// Metadata is what extraction found, with the date normalized.
	Metadata types.MarkdownMetadata
	// Validation carries every warning accumulated along the way plus
	// any validation errors found in the reassembled output.
	Validation types.ValidationResult
}

// Transform runs the full pipeline over a document. It is a pure
// function of its input: no file or console IO, no retained state, so
// it may be called concurrently across documents. It never fails on
// malformed input; diagnostics land in the validation result.
func Transform(content string) Result {
	var result Result

	existing, body, ok := frontmatter.Split(content)
	if !ok {
		result.Validation.AddWarning(warnBadFrontMatter)
	}

	md, extractWarnings := extract.Extract(ascii.Clean(body))
	for _, w := range extractWarnings {
		result.Validation.AddWarning(w)
	}

	if md.RawDate != "" {
		normalized, matched := dates.Normalize(md.RawDate)
		md.Date = normalized
		if !matched {
			result.Validation.AddWarning(warnBadDate)
		}
	}
	result.Metadata = md

	merged, collisionWarnings := frontmatter.Merge(existing, frontmatter.Fields{
		Title:   md.Title,
		Authors: wikilink.LinkAll(md.Authors),
		Book:    linkIfPresent(md.Book),
		Date:    md.Date,
	})
	for _, w := range collisionWarnings {
		result.Validation.AddWarning(w)
	}

	output, err := frontmatter.Assemble(merged, body)
	if err != nil {
		// yaml serialization of scalar nodes does not fail in
		// practice; surface it as a validation error if it ever does.
		result.Output = content
		result.Validation.AddError("failed to serialize front matter: " + err.Error())
		return result
	}
	result.Output = output

	for _, e := range validate(output, md) {
		result.Validation.AddError(e)
	}
	return result
}

func linkIfPresent(s string) string {
	if s == "" {
		return ""
	}
	return wikilink.Link(s)
}
