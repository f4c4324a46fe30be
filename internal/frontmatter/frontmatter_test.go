package frontmatter

import (
	"slices"
	"strings"
	"testing"
)

func TestSplitWithFrontMatter(t *testing.T) {
	content := `---
sourcehash: abc123
tags: [a, b]
---

# Title

Body text.`

	mapping, body, ok := Split(content)
	if !ok {
		t.Fatal("Split() ok = false, want true")
	}

	wantKeys := []string{"sourcehash", "tags"}
	if !slices.Equal(mapping.Keys(), wantKeys) {
		t.Errorf("Keys() = %v, want %v", mapping.Keys(), wantKeys)
	}

	node, found := mapping.Get("sourcehash")
	if !found {
		t.Fatal("sourcehash not found")
	}
	if node.Value != "abc123" {
		t.Errorf("sourcehash = %q, want %q", node.Value, "abc123")
	}

	wantBody := "\n# Title\n\nBody text."
	if body != wantBody {
		t.Errorf("body = %q, want %q", body, wantBody)
	}
}

func TestSplitKeyOrderPreserved(t *testing.T) {
	content := "---\nzebra: 1\nalpha: 2\nmiddle: 3\n---\nbody"

	mapping, _, ok := Split(content)
	if !ok {
		t.Fatal("Split() ok = false, want true")
	}

	want := []string{"zebra", "alpha", "middle"}
	if !slices.Equal(mapping.Keys(), want) {
		t.Errorf("Keys() = %v, want %v", mapping.Keys(), want)
	}
}

func TestSplitWithoutFrontMatter(t *testing.T) {
	content := "# Title\n\nBody text."

	mapping, body, ok := Split(content)
	if ok {
		t.Error("Split() ok = true, want false")
	}
	if len(mapping) != 0 {
		t.Errorf("mapping = %v, want empty", mapping)
	}
	if body != content {
		t.Errorf("body = %q, want full content", body)
	}
}

func TestSplitUnterminated(t *testing.T) {
	content := "---\nsourcehash: abc123\n# Title without closing delimiter"

	mapping, body, ok := Split(content)
	if ok {
		t.Error("Split() ok = true, want false")
	}
	if len(mapping) != 0 {
		t.Errorf("mapping = %v, want empty", mapping)
	}
	if body != content {
		t.Errorf("body = %q, want full content", body)
	}
}

func TestSplitEmptyBlock(t *testing.T) {
	mapping, body, ok := Split("---\n---\nbody here")
	if !ok {
		t.Fatal("Split() ok = false, want true")
	}
	if len(mapping) != 0 {
		t.Errorf("mapping = %v, want empty", mapping)
	}
	if body != "body here" {
		t.Errorf("body = %q, want %q", body, "body here")
	}
}

func TestSplitInvalidYAML(t *testing.T) {
	content := "---\nkey: [unclosed\n---\nbody"

	_, body, ok := Split(content)
	if ok {
		t.Error("Split() ok = true, want false")
	}
	if body != content {
		t.Errorf("body = %q, want full content", body)
	}
}

func TestSplitNonMappingBlock(t *testing.T) {
	content := "---\n- just\n- a list\n---\nbody"

	_, _, ok := Split(content)
	if ok {
		t.Error("Split() ok = true, want false for a non-mapping block")
	}
}

func TestMergeOrdering(t *testing.T) {
	existing, _, ok := Split("---\nsourcehash: abc123\nstatus: draft\n---\n")
	if !ok {
		t.Fatal("Split() failed on fixture")
	}

	merged, warnings := Merge(existing, Fields{
		Title:   "A Title",
		Authors: []string{"[[Jane Doe]]"},
		Book:    "[[Journal]]",
		Date:    "May 2015",
	})

	want := []string{"Title", "Authors", "Book", "Date", "sourcehash", "status"}
	if !slices.Equal(merged.Keys(), want) {
		t.Errorf("Keys() = %v, want %v", merged.Keys(), want)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v, want none", warnings)
	}
}

func TestMergeSkipsAbsentFields(t *testing.T) {
	merged, _ := Merge(nil, Fields{Title: "Only Title"})

	want := []string{"Title"}
	if !slices.Equal(merged.Keys(), want) {
		t.Errorf("Keys() = %v, want %v", merged.Keys(), want)
	}
}

func TestMergeCollision(t *testing.T) {
	existing, _, ok := Split("---\nTitle: Old Title\nsourcehash: abc123\n---\n")
	if !ok {
		t.Fatal("Split() failed on fixture")
	}

	merged, warnings := Merge(existing, Fields{Title: "New Title"})

	want := []string{"Title", "sourcehash"}
	if !slices.Equal(merged.Keys(), want) {
		t.Errorf("Keys() = %v, want %v", merged.Keys(), want)
	}

	node, _ := merged.Get("Title")
	if node.Value != "New Title" {
		t.Errorf("Title = %q, want %q", node.Value, "New Title")
	}

	if len(warnings) != 1 || !strings.Contains(warnings[0], "overwrote existing key Title") {
		t.Errorf("warnings = %v, want one collision warning for Title", warnings)
	}
}

func TestRenderQuoting(t *testing.T) {
	merged, _ := Merge(nil, Fields{
		Title:   "The Cognitive Cost of Attention",
		Authors: []string{"[[Jane Doe]]", "[[Alex Lee]]"},
		Book:    "[[Journal of Mind]]",
		Date:    "March-April 2023",
	})

	block, err := Render(merged)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	for _, want := range []string{
		`Title: "The Cognitive Cost of Attention"`,
		"Authors:",
		`- "[[Jane Doe]]"`,
		`- "[[Alex Lee]]"`,
		`Book: "[[Journal of Mind]]"`,
		`Date: "March-April 2023"`,
	} {
		if !strings.Contains(block, want) {
			t.Errorf("Render() missing %q in:\n%s", want, block)
		}
	}
}

func TestRenderEscapesQuotes(t *testing.T) {
	merged, _ := Merge(nil, Fields{Authors: []string{`[[Jane "JD" Doe]]`}})

	block, err := Render(merged)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(block, `\"JD\"`) {
		t.Errorf("Render() should escape embedded quotes, got:\n%s", block)
	}
}

func TestRenderEmptyMapping(t *testing.T) {
	block, err := Render(nil)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if block != "" {
		t.Errorf("Render(nil) = %q, want empty", block)
	}
}

func TestAssembleRoundTrip(t *testing.T) {
	content := "---\nsourcehash: abc123\ntags: [a, b]\ncount: 42\n---\n\nBody text.\n"

	mapping, body, ok := Split(content)
	if !ok {
		t.Fatal("Split() ok = false, want true")
	}

	out, err := Assemble(mapping, body)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	if out != content {
		t.Errorf("round trip mismatch:\ngot  %q\nwant %q", out, content)
	}
}

func TestAssembleEmptyMapping(t *testing.T) {
	out, err := Assemble(nil, "body")
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	if out != "---\n---\nbody" {
		t.Errorf("Assemble() = %q, want %q", out, "---\n---\nbody")
	}

	// The reassembled form must split cleanly again.
	mapping, body, ok := Split(out)
	if !ok || len(mapping) != 0 || body != "body" {
		t.Errorf("Split(Assemble()) = (%v, %q, %v), want empty mapping and original body", mapping, body, ok)
	}
}
