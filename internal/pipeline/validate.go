package pipeline

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/taigrr/obsidian-frontmatter/internal/frontmatter"
	"github.com/taigrr/obsidian-frontmatter/internal/types"
	"github.com/taigrr/obsidian-frontmatter/internal/wikilink"
)

// validate re-splits the reassembled document and checks that every
// generated field landed with the expected value. Fields whose source
// data was never found must be absent from the output; anything else
// is an error.
func validate(output string, md types.MarkdownMetadata) []string {
	var errs []string

	mapping, _, ok := frontmatter.Split(output)
	if !ok {
		return []string{"front matter delimiters not found in merged output"}
	}

	errs = append(errs, checkScalar(mapping, frontmatter.KeyTitle, md.Title)...)
	errs = append(errs, checkAuthors(mapping, md.Authors)...)
	errs = append(errs, checkScalar(mapping, frontmatter.KeyBook, linkIfPresent(md.Book))...)
	errs = append(errs, checkScalar(mapping, frontmatter.KeyDate, md.Date)...)

	return errs
}

func checkScalar(mapping frontmatter.Mapping, key, want string) []string {
	node, found := mapping.Get(key)
	if want == "" {
		if found {
			return []string{fmt.Sprintf("%s present in output but absent in metadata", key)}
		}
		return nil
	}
	if !found {
		return []string{fmt.Sprintf("%s field not found in front matter", key)}
	}
	if node.Kind != yaml.ScalarNode || node.Value != want {
		return []string{fmt.Sprintf("%s mismatch: expected %q, found %q", key, want, node.Value)}
	}
	return nil
}

func checkAuthors(mapping frontmatter.Mapping, authors []string) []string {
	node, found := mapping.Get(frontmatter.KeyAuthors)
	if len(authors) == 0 {
		if found {
			return []string{fmt.Sprintf("%s present in output but absent in metadata", frontmatter.KeyAuthors)}
		}
		return nil
	}
	if !found {
		return []string{fmt.Sprintf("%s field not found in front matter", frontmatter.KeyAuthors)}
	}
	if node.Kind != yaml.SequenceNode {
		return []string{fmt.Sprintf("%s is not a list", frontmatter.KeyAuthors)}
	}
	if len(node.Content) != len(authors) {
		return []string{fmt.Sprintf("%s count mismatch: expected %d, found %d",
			frontmatter.KeyAuthors, len(authors), len(node.Content))}
	}

	var errs []string
	for i, author := range authors {
		want := wikilink.Link(author)
		if node.Content[i].Value != want {
			errs = append(errs, fmt.Sprintf("author %d mismatch: expected %q, found %q",
				i, want, node.Content[i].Value))
		}
	}
	return errs
}
