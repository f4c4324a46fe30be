// Package ascii canonicalizes non-ASCII punctuation before extraction.
package ascii

import (
	"strings"
	"unicode"
)

// replacements maps common non-ASCII punctuation to ASCII equivalents.
// Runes mapped to the empty string are dropped entirely.
var replacements = map[rune]string{
	'‐': "-", // hyphen
	'‑': "-", // non-breaking hyphen
	'‒': "-", // figure dash
	'–': "-", // en dash
	'—': "-", // em dash
	'―': "-", // horizontal bar
	'−': "-", // minus sign
	'­': "",  // soft hyphen
	' ': " ", // non-breaking space
	' ': " ", // en space
	' ': " ", // em space
	' ': " ", // thin space
	' ': " ", // hair space
	'​': "",  // zero-width space
	' ': " ", // narrow no-break space
	' ': " ", // medium mathematical space
	'　': " ", // ideographic space
}

// Clean replaces non-ASCII dash and space variants with their ASCII
// equivalents. Any other rune passes through unchanged, so accented
// and non-Latin text survives. Clean is total and idempotent.
func Clean(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if repl, ok := replacements[r]; ok {
			b.WriteString(repl)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Strip applies Clean and then drops every remaining rune outside the
// ASCII range. Date strings are flattened this way before pattern
// matching; prose fields keep their Unicode and go through Clean only.
func Strip(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range Clean(s) {
		if r <= unicode.MaxASCII {
			b.WriteRune(r)
		}
	}
	return b.String()
}
