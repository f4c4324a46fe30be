package ascii

import (
	"testing"
	"unicode"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain ascii untouched",
			input: "March-April 2023",
			want:  "March-April 2023",
		},
		{
			name:  "en dash",
			input: "March–April 2023",
			want:  "March-April 2023",
		},
		{
			name:  "em dash",
			input: "a—b",
			want:  "a-b",
		},
		{
			name:  "minus sign",
			input: "Jan−Feb",
			want:  "Jan-Feb",
		},
		{
			name:  "non-breaking space",
			input: "May 2015",
			want:  "May 2015",
		},
		{
			name:  "thin space",
			input: "Q1 2023",
			want:  "Q1 2023",
		},
		{
			name:  "soft hyphen dropped",
			input: "pub­lication",
			want:  "publication",
		},
		{
			name:  "zero-width space dropped",
			input: "Jane​Doe",
			want:  "JaneDoe",
		},
		{
			name:  "accented text kept",
			input: "café",
			want:  "café",
		},
		{
			name:  "non-latin text kept",
			input: "日本語 notes",
			want:  "日本語 notes",
		},
		{
			name:  "accents kept around mapped dash",
			input: "José–María",
			want:  "José-María",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clean(tt.input)
			if got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestStrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "en dash replaced before stripping",
			input: "March–April 2023",
			want:  "March-April 2023",
		},
		{
			name:  "accented runes dropped",
			input: "café 2015",
			want:  "caf 2015",
		},
		{
			name:  "non-latin runes dropped",
			input: "2015年5月",
			want:  "20155",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Strip(tt.input)
			if got != tt.want {
				t.Errorf("Strip(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestStripTotality(t *testing.T) {
	inputs := []string{
		"March–April—2023  　",
		"‐‑‒―−",
		"mixed ascii and éü中 text",
	}

	for _, input := range inputs {
		got := Strip(input)
		for _, r := range got {
			if r > unicode.MaxASCII {
				t.Errorf("Strip(%q) left non-ASCII rune %q in %q", input, r, got)
			}
		}
	}
}

func TestCleanIdempotent(t *testing.T) {
	inputs := []string{
		"March–April 2023",
		"café society",
		"already clean",
	}

	for _, input := range inputs {
		once := Clean(input)
		twice := Clean(once)
		if once != twice {
			t.Errorf("Clean not idempotent for %q: %q != %q", input, once, twice)
		}
		if Strip(Strip(input)) != Strip(input) {
			t.Errorf("Strip not idempotent for %q", input)
		}
	}
}
