package frontmatter

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Generated front matter keys, in output order.
const (
	KeyTitle   = "Title"
	KeyAuthors = "Authors"
	KeyBook    = "Book"
	KeyDate    = "Date"
)

// generatedKeys is the reserved name set in output order.
var generatedKeys = []string{KeyTitle, KeyAuthors, KeyBook, KeyDate}

// Fields holds the generated front matter values derived from
// extraction. Zero fields are omitted from the merged output.
type Fields struct {
	Title   string
	Authors []string
	Book    string
	Date    string
}

// Merge combines generated fields with an existing mapping. Generated
// fields come first in fixed order, then every pre-existing key in its
// original order. Pre-existing keys named after a generated field are
// dropped and reported as collision warnings; everything else passes
// through with its original value node.
func Merge(existing Mapping, fields Fields) (Mapping, []string) {
	merged := make(Mapping, 0, len(existing)+4)

	if fields.Title != "" {
		merged = append(merged, Field{KeyTitle, quotedScalar(fields.Title)})
	}
	if len(fields.Authors) > 0 {
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		for _, author := range fields.Authors {
			seq.Content = append(seq.Content, quotedScalar(author))
		}
		merged = append(merged, Field{KeyAuthors, seq})
	}
	if fields.Book != "" {
		merged = append(merged, Field{KeyBook, quotedScalar(fields.Book)})
	}
	if fields.Date != "" {
		merged = append(merged, Field{KeyDate, quotedScalar(fields.Date)})
	}

	var warnings []string
	for _, f := range existing {
		if isGeneratedKey(f.Key) {
			warnings = append(warnings, fmt.Sprintf("overwrote existing key %s", f.Key))
			continue
		}
		merged = append(merged, f)
	}

	return merged, warnings
}

func isGeneratedKey(key string) bool {
	for _, k := range generatedKeys {
		if key == k {
			return true
		}
	}
	return false
}

func quotedScalar(value string) *yaml.Node {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Style: yaml.DoubleQuotedStyle,
		Value: value,
	}
}
