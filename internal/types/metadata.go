// Package types defines the data structures shared across the pipeline.
package types

type (
	// MarkdownMetadata holds bibliographic metadata extracted from a
	// markdown body. A zero field means the source document did not
	// carry that information. Values are never mutated after extraction.
	MarkdownMetadata struct {
		Title   string   `json:"title,omitempty"`
		Authors []string `json:"authors,omitempty"`
		Book    string   `json:"book,omitempty"`
		RawDate string   `json:"rawDate,omitempty"`
		Date    string   `json:"date,omitempty"`
	}

	// ValidationResult accumulates diagnostics from every pipeline
	// stage. Errors block the write decision; warnings are advisory.
	ValidationResult struct {
		Errors   []string `json:"errors"`
		Warnings []string `json:"warnings"`
	}
)

// IsValid reports whether the result carries no errors.
func (r ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}

// AddError appends an error message.
func (r *ValidationResult) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
}

// AddWarning appends a warning message.
func (r *ValidationResult) AddWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}
