// Package frontmatter splits, merges, and serializes YAML front matter
// while preserving key order.
package frontmatter

import (
	"strings"

	"gopkg.in/yaml.v3"
)

const delimiter = "---"

type (
	// Field is a single front matter key with its value node. Keeping
	// the yaml node rather than a decoded value preserves the original
	// scalar/list shape through a round trip.
	Field struct {
		Key   string
		Value *yaml.Node
	}

	// Mapping is an ordered front matter key-value sequence. Key order
	// is an observable output contract, so a map cannot carry it.
	Mapping []Field
)

// Get returns the value node for the first field with the given key.
func (m Mapping) Get(key string) (*yaml.Node, bool) {
	for _, f := range m {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Keys returns the mapping's keys in order.
func (m Mapping) Keys() []string {
	keys := make([]string, len(m))
	for i, f := range m {
		keys[i] = f.Key
	}
	return keys
}

// Split separates a document into its front matter mapping and body.
// The returned bool is false when front matter is missing or
// malformed; the whole document is then treated as body with an empty
// mapping. Split never fails on arbitrary input.
func Split(content string) (Mapping, string, bool) {
	if !strings.HasPrefix(content, delimiter+"\n") {
		return nil, content, false
	}

	rest := content[len(delimiter)+1:]
	var yamlPart, body string
	switch {
	case strings.HasPrefix(rest, delimiter+"\n"):
		// Empty front matter block.
		body = rest[len(delimiter)+1:]
	case rest == delimiter:
		// Empty block at end of input.
	default:
		if i := strings.Index(rest, "\n"+delimiter+"\n"); i >= 0 {
			yamlPart = rest[:i]
			body = rest[i+len(delimiter)+2:]
		} else if strings.HasSuffix(rest, "\n"+delimiter) {
			yamlPart = rest[:len(rest)-len(delimiter)-1]
		} else {
			// Opening delimiter with no matching close.
			return nil, content, false
		}
	}

	mapping, ok := parseMapping(yamlPart)
	if !ok {
		return nil, content, false
	}
	return mapping, body, true
}

func parseMapping(yamlPart string) (Mapping, bool) {
	if strings.TrimSpace(yamlPart) == "" {
		return nil, true
	}

	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(yamlPart), &doc); err != nil {
		return nil, false
	}
	if len(doc.Content) == 0 {
		return nil, true
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, false
	}

	mapping := make(Mapping, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		mapping = append(mapping, Field{
			Key:   root.Content[i].Value,
			Value: root.Content[i+1],
		})
	}
	return mapping, true
}

// Render serializes a mapping to a YAML block with two-space indent.
// An empty mapping renders as an empty string.
func Render(mapping Mapping) (string, error) {
	if len(mapping) == 0 {
		return "", nil
	}

	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range mapping {
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: f.Key},
			f.Value,
		)
	}

	var b strings.Builder
	enc := yaml.NewEncoder(&b)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Assemble rebuilds a document from a mapping and the original body.
func Assemble(mapping Mapping, body string) (string, error) {
	block, err := Render(mapping)
	if err != nil {
		return "", err
	}
	return delimiter + "\n" + block + delimiter + "\n" + body, nil
}
