package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/taigrr/obsidian-frontmatter/internal/types"
)

type (
	// ProcessInput contains parameters for transforming a document.
	ProcessInput struct {
		Content string `json:"content" jsonschema:"Markdown document text to transform"`
	}

	// ProcessOutput contains the transformed document and diagnostics.
	ProcessOutput struct {
		Content  string                 `json:"content"`
		Metadata types.MarkdownMetadata `json:"metadata"`
		Errors   []string               `json:"errors"`
		Warnings []string               `json:"warnings"`
		Valid    bool                   `json:"valid"`
	}

	// ExtractInput contains parameters for metadata extraction.
	ExtractInput struct {
		Content string `json:"content" jsonschema:"Markdown document text to scan"`
	}

	// ExtractOutput contains the extracted metadata and any warnings.
	ExtractOutput struct {
		Metadata types.MarkdownMetadata `json:"metadata"`
		Warnings []string               `json:"warnings"`
	}

	// NormalizeDateInput contains a raw date string.
	NormalizeDateInput struct {
		Date string `json:"date" jsonschema:"Free-form date string to canonicalize"`
	}

	// NormalizeDateOutput contains the canonical date form.
	NormalizeDateOutput struct {
		Normalized string `json:"normalized"`
		Matched    bool   `json:"matched"`
	}
)

func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "process",
		Description: "Transform a markdown document: extract title/authors/publication/date from the body and merge them into the YAML front matter as wiki-linked fields. Returns the transformed text plus validation errors and warnings.",
	}, handleProcess)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "extract",
		Description: "Extract bibliographic metadata (title, authors, publication, normalized date) from a markdown document without transforming it.",
	}, handleExtract)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "normalize_date",
		Description: "Canonicalize a free-form date string (month ranges, seasons, quarters, numeric formats). Unrecognized input is returned unchanged with matched=false.",
	}, handleNormalizeDate)
}
