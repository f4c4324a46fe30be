package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/taigrr/obsidian-frontmatter/internal/pipeline"
	"github.com/taigrr/obsidian-frontmatter/internal/uri"
)

type processOptions struct {
	outputDir string
	dryRun    bool
	verbose   bool
	quiet     bool
}

func newProcessCmd() *cobra.Command {
	var opts processOptions

	cmd := &cobra.Command{
		Use:   "process <file>",
		Short: "Extract metadata and merge it into front matter",
		Long: `process reads a markdown file, extracts the title heading and the
Author(s)/Publication/Date lines from its body, and writes a copy with
the metadata merged into the YAML front matter as wiki-linked fields.
The original file is never modified.`,
		Example: `obsidian-frontmatter process -o ./out note.md
obsidian-frontmatter process -o ./out -n note.md
obsidian-frontmatter process -o ./out -v note.md`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProcess(args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", "", "output directory for processed files")
	cmd.Flags().BoolVarP(&opts.dryRun, "dry-run", "n", false, "preview changes without writing the file")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "show detailed output")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress output except errors")
	_ = cmd.MarkFlagRequired("output-dir")

	return cmd
}

func runProcess(filename string, opts processOptions) error {
	if !opts.quiet {
		fmt.Println(labelStyle.Render("Processing: ") + filepath.Base(filename))
	}

	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	result := pipeline.Transform(string(content))

	if opts.verbose {
		printMetadata(result.Metadata)
	}
	if opts.verbose || !result.Validation.IsValid() {
		printValidation(result.Validation)
	}
	if !result.Validation.IsValid() {
		return fmt.Errorf("aborting due to %d validation error(s)", len(result.Validation.Errors))
	}

	if opts.verbose || opts.dryRun {
		printFrontMatterPreview(result.Output)
	}

	outputFile := filepath.Join(opts.outputDir, filepath.Base(filename))
	if opts.dryRun {
		if !opts.quiet {
			fmt.Println(warnStyle.Render("Dry run - would write to: ") + outputFile)
		}
		return nil
	}

	if err := os.MkdirAll(opts.outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(outputFile, []byte(result.Output), 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	if !opts.quiet {
		fmt.Println(okStyle.Render("Written to: ") + outputFile)
		if opts.verbose {
			absDir, err := filepath.Abs(opts.outputDir)
			if err == nil {
				fmt.Println(dimStyle.Render(uri.NoteURI(absDir, filepath.Base(filename))))
			}
		}
	}
	return nil
}
