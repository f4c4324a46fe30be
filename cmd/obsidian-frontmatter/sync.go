package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taigrr/obsidian-frontmatter/internal/pathfilter"
	"github.com/taigrr/obsidian-frontmatter/internal/vaultsync"
)

type syncOptions struct {
	dryRun  bool
	verbose bool
	quiet   bool
}

func newSyncCmd() *cobra.Command {
	var opts syncOptions

	cmd := &cobra.Command{
		Use:   "sync <source-dir> <dest-dir>",
		Short: "Copy changed markdown files between directories",
		Long: `sync copies markdown files from the source directory to the
destination, preserving directory structure. A file is copied when it
is missing from the destination, its source mtime is newer, or the
mtimes match but the content hashes differ. Files are never deleted
from the destination.`,
		Example: `obsidian-frontmatter sync ~/notes ~/backup
obsidian-frontmatter sync -n ~/notes ~/backup`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(args[0], args[1], opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.dryRun, "dry-run", "n", false, "preview changes without copying files")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "show detailed output including file list")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress output except errors")

	return cmd
}

func runSync(sourceDir, destDir string, opts syncOptions) error {
	service, err := vaultsync.New(sourceDir, destDir, pathfilter.New(nil))
	if err != nil {
		return err
	}

	if !opts.quiet {
		fmt.Println(labelStyle.Render("Source: ") + sourceDir)
		fmt.Println(labelStyle.Render("Destination: ") + destDir)
		if opts.dryRun {
			fmt.Println(warnStyle.Render("Dry run mode - no files will be copied"))
		}
		fmt.Println()
	}

	plan, err := service.Plan()
	if err != nil {
		return err
	}

	if opts.verbose || opts.dryRun {
		printSyncPlan(plan)
	}

	if len(plan.Candidates) == 0 {
		if !opts.quiet {
			fmt.Println(okStyle.Render("All files are up to date."))
		}
		return nil
	}

	result := service.Execute(plan, opts.dryRun)

	if !opts.quiet {
		printSyncSummary(result, len(plan.Skipped), opts.dryRun)
	}

	if len(result.Errors) > 0 {
		return fmt.Errorf("sync finished with %d error(s)", len(result.Errors))
	}
	return nil
}
