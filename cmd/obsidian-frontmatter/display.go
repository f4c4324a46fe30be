package main

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/taigrr/obsidian-frontmatter/internal/types"
)

var (
	labelStyle = lipgloss.NewStyle().Bold(true)
	okStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	dimStyle   = lipgloss.NewStyle().Faint(true)
)

func printMetadata(md types.MarkdownMetadata) {
	fmt.Println(labelStyle.Render("Extracted metadata:"))
	printField("Title", md.Title)
	printField("Authors", strings.Join(md.Authors, ", "))
	printField("Book", md.Book)
	printField("Date", md.Date)
	fmt.Println()
}

func printField(name, value string) {
	rendered := dimStyle.Render("empty")
	if value != "" {
		rendered = valueStyle.Render(value)
	}
	fmt.Printf("  %-8s %s\n", name, rendered)
}

func printValidation(v types.ValidationResult) {
	if v.IsValid() {
		fmt.Println(okStyle.Render("Validation passed."))
	} else {
		fmt.Println(errStyle.Render("Validation failed!"))
	}
	if len(v.Errors) > 0 {
		fmt.Println(errStyle.Render("Errors:"))
		for _, e := range v.Errors {
			fmt.Println("  " + errStyle.Render(e))
		}
	}
	if len(v.Warnings) > 0 {
		fmt.Println(warnStyle.Render("Warnings:"))
		for _, w := range v.Warnings {
			fmt.Println("  " + warnStyle.Render(w))
		}
	}
	fmt.Println()
}

// printFrontMatterPreview prints the front matter block of a document,
// up to and including the closing delimiter.
func printFrontMatterPreview(output string) {
	fmt.Println(labelStyle.Render("Front matter preview:"))
	lines := strings.Split(output, "\n")
	for i, line := range lines {
		fmt.Println("  " + dimStyle.Render(line))
		if i > 0 && line == "---" {
			break
		}
	}
	fmt.Println()
}

func printSyncPlan(plan types.SyncPlan) {
	if len(plan.Candidates) == 0 {
		fmt.Println(dimStyle.Render("No files to sync."))
		return
	}
	fmt.Println(labelStyle.Render(fmt.Sprintf("Files to sync (%d):", len(plan.Candidates))))
	for _, c := range plan.Candidates {
		fmt.Printf("  %s %s\n", valueStyle.Render(c.RelPath), warnStyle.Render("("+string(c.Reason)+")"))
	}
	fmt.Println()
}

func printSyncSummary(result types.SyncResult, skipped int, dryRun bool) {
	action := "Synced"
	if dryRun {
		action = "Would sync"
	}
	fmt.Println(okStyle.Render(fmt.Sprintf("%s: %d file(s)", action, len(result.Copied))))
	fmt.Println(dimStyle.Render(fmt.Sprintf("Skipped: %d file(s)", skipped)))
	if len(result.Errors) > 0 {
		fmt.Println(errStyle.Render(fmt.Sprintf("Errors: %d", len(result.Errors))))
		for _, e := range result.Errors {
			fmt.Printf("  %s %s\n", errStyle.Render(e.Path+":"), e.Message)
		}
	}
}
