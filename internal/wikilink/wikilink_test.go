package wikilink

import "testing"

func TestLink(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple name", "Jane Doe", "[[Jane Doe]]"},
		{"name with quote", `Jane "JD" Doe`, `[[Jane "JD" Doe]]`},
		{"empty string", "", "[[]]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Link(tt.input)
			if got != tt.want {
				t.Errorf("Link(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLinkAll(t *testing.T) {
	got := LinkAll([]string{"Jane Doe", "John Smith"})
	want := []string{"[[Jane Doe]]", "[[John Smith]]"}
	if len(got) != len(want) {
		t.Fatalf("LinkAll() returned %d links, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("LinkAll()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLinkAllEmpty(t *testing.T) {
	if got := LinkAll(nil); got != nil {
		t.Errorf("LinkAll(nil) = %v, want nil", got)
	}
}
