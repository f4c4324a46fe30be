package main

import (
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Run an MCP server exposing the metadata pipeline",
		Long: `mcp runs a Model Context Protocol server over stdio. It exposes
the extract/normalize/merge/validate pipeline as tools so any
MCP-compatible harness can annotate note content without touching the
filesystem itself.`,
		Args: cobra.NoArgs,
		RunE: runMCP,
	}
}

func runMCP(cmd *cobra.Command, args []string) error {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "obsidian-frontmatter",
		Version: version,
	}, nil)

	registerTools(server)

	if err := server.Run(cmd.Context(), &mcp.StdioTransport{}); err != nil {
		return fmt.Errorf("error running server: %w", err)
	}
	return nil
}
