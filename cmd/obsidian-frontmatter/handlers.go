package main

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/taigrr/obsidian-frontmatter/internal/ascii"
	"github.com/taigrr/obsidian-frontmatter/internal/dates"
	"github.com/taigrr/obsidian-frontmatter/internal/extract"
	"github.com/taigrr/obsidian-frontmatter/internal/frontmatter"
	"github.com/taigrr/obsidian-frontmatter/internal/pipeline"
)

func handleProcess(ctx context.Context, req *mcp.CallToolRequest, input ProcessInput) (*mcp.CallToolResult, ProcessOutput, error) {
	if input.Content == "" {
		return &mcp.CallToolResult{IsError: true}, ProcessOutput{}, fmt.Errorf("content cannot be empty")
	}

	result := pipeline.Transform(input.Content)

	return nil, ProcessOutput{
		Content:  result.Output,
		Metadata: result.Metadata,
		Errors:   result.Validation.Errors,
		Warnings: result.Validation.Warnings,
		Valid:    result.Validation.IsValid(),
	}, nil
}

func handleExtract(ctx context.Context, req *mcp.CallToolRequest, input ExtractInput) (*mcp.CallToolResult, ExtractOutput, error) {
	if input.Content == "" {
		return &mcp.CallToolResult{IsError: true}, ExtractOutput{}, fmt.Errorf("content cannot be empty")
	}

	_, body, ok := frontmatter.Split(input.Content)
	var warnings []string
	if !ok {
		warnings = append(warnings, "front matter missing or malformed")
	}
	md, extractWarnings := extract.Extract(ascii.Clean(body))
	warnings = append(warnings, extractWarnings...)
	if md.RawDate != "" {
		var matched bool
		md.Date, matched = dates.Normalize(md.RawDate)
		if !matched {
			warnings = append(warnings, "date string did not match any recognized pattern")
		}
	}

	return nil, ExtractOutput{
		Metadata: md,
		Warnings: warnings,
	}, nil
}

func handleNormalizeDate(ctx context.Context, req *mcp.CallToolRequest, input NormalizeDateInput) (*mcp.CallToolResult, NormalizeDateOutput, error) {
	normalized, matched := dates.Normalize(input.Date)
	return nil, NormalizeDateOutput{
		Normalized: normalized,
		Matched:    matched,
	}, nil
}
