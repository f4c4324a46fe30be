// Package wikilink formats Obsidian wiki-link references.
package wikilink

// Link wraps a name in Obsidian's double-bracket reference syntax.
// The merger always serializes linked values as double-quoted YAML
// scalars, so embedded quotes are escaped at serialization time.
func Link(name string) string {
	return "[[" + name + "]]"
}

// LinkAll wraps every name in wiki-link syntax, preserving order.
func LinkAll(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	links := make([]string, len(names))
	for i, name := range names {
		links[i] = Link(name)
	}
	return links
}
