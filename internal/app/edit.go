package app

import (
	"github.com/spf13/cobra"

	"github.com/Ycristian01/book-library-management/internal/book"
)

func newEditCmd() *cobra.Command {
	var (
		title  string
		author string
		year   int
		isbn   string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update fields of an existing book",
		Long: `Update fields of an existing book. Only the flags you pass change;
everything else keeps its current value.

Examples:
  bookctl edit 12 --year 2016
  bookctl edit 12 --title "New Title" --isbn 9780134190440`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseBookID(args[0])
			if err != nil {
				return err
			}

			current, err := client.Get(id)
			if err != nil {
				return serviceError(err)
			}

			if cmd.Flags().Changed("title") {
				current.Title = title
			}
			if cmd.Flags().Changed("author") {
				current.Author = author
			}
			if cmd.Flags().Changed("year") {
				current.Year = year
			}
			if cmd.Flags().Changed("isbn") {
				current.ISBN = book.NormalizeISBN(isbn)
			}

			if err := validateDraft(current); err != nil {
				return err
			}

			updated, err := client.Update(current)
			if err != nil {
				return serviceError(err)
			}

			ok("Updated book %d: %s", updated.ID, updated.Label())
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&author, "author", "", "New author")
	cmd.Flags().IntVar(&year, "year", 0, "New publication year")
	cmd.Flags().StringVar(&isbn, "isbn", "", "New 13-digit ISBN")

	return cmd
}
