// Package main implements the Obsidian front matter utility.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

func main() {
	cmd := &cobra.Command{
		Use:   "obsidian-frontmatter",
		Short: "Front matter tooling for Obsidian vaults",
		Long: `obsidian-frontmatter extracts bibliographic metadata (title,
authors, publication, date) embedded in markdown documents and merges
it into YAML front matter as Obsidian-compatible wiki-links,
preserving any pre-existing front matter keys. It also ships a
directory synchronization helper and an MCP server exposing the same
pipeline to MCP-compatible harnesses.`,
		Example: `obsidian-frontmatter process -o ./vault note.md
obsidian-frontmatter sync ~/notes ~/backup
obsidian-frontmatter mcp`,
	}

	cmd.AddCommand(newProcessCmd(), newSyncCmd(), newMCPCmd())

	if err := fang.Execute(
		context.Background(),
		cmd,
		fang.WithVersion(version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		os.Exit(1)
	}
}
