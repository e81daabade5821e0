package app

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Ycristian01/book-library-management/internal/browser"
	"github.com/Ycristian01/book-library-management/internal/pagination"
	"github.com/Ycristian01/book-library-management/internal/tui"
)

func newBrowseCmd() *cobra.Command {
	var (
		page  int
		limit int
	)

	cmd := &cobra.Command{
		Use:     "browse",
		Aliases: []string{"ls"},
		Short:   "Browse the catalog (interactive TUI or text output)",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit == 0 {
				limit = cfg.Defaults.Limit
			}
			if !pagination.ValidLimit(limit) {
				return fmt.Errorf("invalid --limit %d (valid: %v)", limit, pagination.Limits)
			}

			if tui.ShouldUseTUI(cmd) {
				return browser.Run(client, limit)
			}

			return printPage(page, limit)
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "Page to show (text output only)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Books per page (5, 10, 25 or 50)")

	return cmd
}

// printPage writes one page of the catalog as a plain table, for piped
// output and --no-interactive runs.
func printPage(page, limit int) error {
	if page < 1 {
		page = 1
	}

	result, err := client.List(page, limit)
	if err != nil {
		return err
	}

	if result.Total == 0 {
		fmt.Println("No books found.")
		return nil
	}

	fmt.Printf("%-6s %-40s %-24s %-6s %s\n", "ID", "TITLE", "AUTHOR", "YEAR", "ISBN")
	for _, b := range result.Books {
		fmt.Printf("%-6d %-40s %-24s %-6d %s\n", b.ID, b.Title, b.Author, b.Year, b.ISBN)
	}

	start, end := pagination.Range(page, limit, result.Total)
	fmt.Println()
	fmt.Println(color.CyanString("Showing %d to %d of %d results (page %d of %d)",
		start, end, result.Total, page, pagination.TotalPages(result.Total, limit)))
	return nil
}
