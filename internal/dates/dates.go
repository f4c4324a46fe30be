// Package dates canonicalizes free-form publication date strings.
package dates

import (
	"regexp"
	"strings"
	"time"

	"github.com/taigrr/obsidian-frontmatter/internal/ascii"
)

// monthNames maps lowercase month names and abbreviations to their
// canonical full form.
var monthNames = map[string]string{
	"jan": "January", "january": "January",
	"feb": "February", "february": "February",
	"mar": "March", "march": "March",
	"apr": "April", "april": "April",
	"may": "May",
	"jun": "June", "june": "June",
	"jul": "July", "july": "July",
	"aug": "August", "august": "August",
	"sep": "September", "sept": "September", "september": "September",
	"oct": "October", "october": "October",
	"nov": "November", "november": "November",
	"dec": "December", "december": "December",
}

// seasonNames maps lowercase season words to their canonical form.
var seasonNames = map[string]string{
	"spring": "Spring",
	"summer": "Summer",
	"fall":   "Fall",
	"autumn": "Fall",
	"winter": "Winter",
}

// nonDateValues pass through unchanged without counting as unmatched.
var nonDateValues = map[string]bool{
	"not specified": true,
	"unknown":       true,
	"n/a":           true,
	"none":          true,
	"tbd":           true,
	"undated":       true,
}

// A canonicalizer turns regexp submatches plus the extracted year into
// a canonical date string. It returns ok=false when the lexical match
// is not semantically valid (e.g. a word that is not a month name),
// letting the next table entry try.
type canonicalizer func(m []string, year string) (string, bool)

// datePattern pairs a pattern with its canonicalizer. The table is
// consulted in order; the first entry whose pattern matches and whose
// canonicalizer accepts wins.
type datePattern struct {
	re    *regexp.Regexp
	canon canonicalizer
}

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	yearRe       = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	bareYearRe   = regexp.MustCompile(`^(?:19|20)\d{2}$`)
)

var patternTable = []datePattern{
	// Month ranges: "March-April 2023", "Jan/Feb 2020".
	{regexp.MustCompile(`(?i)\b([a-z]+)\s*[-/]\s*([a-z]+)\b`), canonMonthRange},
	// Season + year: "Spring 2023", "autumn 2019".
	{regexp.MustCompile(`(?i)\b(spring|summer|fall|autumn|winter)\b`), canonSeason},
	// Quarter + year: "Q1 2023", "q4 2020".
	{regexp.MustCompile(`(?i)\b(q[1-4])\b`), canonQuarter},
	// Month + year: "May 2015", "Sept, 2020".
	{regexp.MustCompile(`(?i)\b([a-z]+)\.?\s*,?\s*((?:19|20)\d{2})\b`), canonMonthWord},
	// Month day, year: "May 1, 2015".
	{regexp.MustCompile(`(?i)\b([a-z]+)\s+\d{1,2}\s*,?\s*((?:19|20)\d{2})\b`), canonMonthWord},
	// Day month year: "1 May 2015".
	{regexp.MustCompile(`(?i)\b\d{1,2}\s+([a-z]+)\s*,?\s*((?:19|20)\d{2})\b`), canonMonthWord},
	// US numeric: "05/12/2015".
	{regexp.MustCompile(`\b(\d{1,2})[/-]\d{1,2}[/-](?:19|20)\d{2}\b`), canonMonthNumber},
	// Numeric month first: "05/2015", "5-2015".
	{regexp.MustCompile(`\b(\d{1,2})[/-](?:19|20)\d{2}\b`), canonMonthNumber},
	// ISO year first: "2015-05", "2015/5", "2015-05-12".
	{regexp.MustCompile(`\b(?:19|20)\d{2}[/-](\d{1,2})\b`), canonMonthNumber},
}

// Normalize canonicalizes a free-form date string. The returned bool
// reports whether the input matched a recognized pattern; unrecognized
// input is returned cleaned but otherwise unchanged so the caller can
// record a format warning. Normalize is idempotent and never fails.
func Normalize(raw string) (string, bool) {
	cleaned := strings.TrimSpace(ascii.Strip(raw))
	cleaned = whitespaceRe.ReplaceAllString(cleaned, " ")
	if cleaned == "" {
		return cleaned, false
	}
	if nonDateValues[strings.ToLower(cleaned)] {
		return cleaned, true
	}

	year := yearRe.FindString(cleaned)
	if year == "" {
		return cleaned, false
	}

	for _, p := range patternTable {
		m := p.re.FindStringSubmatch(cleaned)
		if m == nil {
			continue
		}
		if out, ok := p.canon(m, year); ok {
			return out, true
		}
	}

	if bareYearRe.MatchString(cleaned) {
		return cleaned, true
	}
	return cleaned, false
}

func canonMonthRange(m []string, year string) (string, bool) {
	first, ok1 := monthNames[strings.ToLower(m[1])]
	second, ok2 := monthNames[strings.ToLower(m[2])]
	if !ok1 || !ok2 {
		return "", false
	}
	return first + "-" + second + " " + year, true
}

func canonSeason(m []string, year string) (string, bool) {
	return seasonNames[strings.ToLower(m[1])] + " " + year, true
}

func canonQuarter(m []string, year string) (string, bool) {
	return strings.ToUpper(m[1]) + " " + year, true
}

func canonMonthWord(m []string, year string) (string, bool) {
	month, ok := monthNames[strings.ToLower(m[1])]
	if !ok {
		return "", false
	}
	return month + " " + year, true
}

func canonMonthNumber(m []string, year string) (string, bool) {
	n := 0
	for _, c := range m[1] {
		n = n*10 + int(c-'0')
	}
	if n < 1 || n > 12 {
		return "", false
	}
	return time.Month(n).String() + " " + year, true
}
