package app

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Ycristian01/book-library-management/internal/api"
	"github.com/Ycristian01/book-library-management/internal/book"
)

func newAddCmd() *cobra.Command {
	var draft book.Book

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a book to the catalog",
		Long: `Add a book to the catalog.

Examples:
  bookctl add --title "The Go Programming Language" --author "Donovan" --year 2015 --isbn 978-0-13-419044-0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			draft.ISBN = book.NormalizeISBN(draft.ISBN)
			if err := validateDraft(draft); err != nil {
				return err
			}

			created, err := client.Create(draft)
			if err != nil {
				return serviceError(err)
			}

			ok("Added book %d: %s", created.ID, created.Label())
			return nil
		},
	}

	cmd.Flags().StringVar(&draft.Title, "title", "", "Book title (required)")
	cmd.Flags().StringVar(&draft.Author, "author", "", "Book author (required)")
	cmd.Flags().IntVar(&draft.Year, "year", 0, "Publication year (required)")
	cmd.Flags().StringVar(&draft.ISBN, "isbn", "", "13-digit ISBN, separators allowed (required)")

	return cmd
}

// validateDraft runs field validation and flattens the failures into a
// single error, one field per line.
func validateDraft(draft book.Book) error {
	failures := book.Validate(draft)
	if len(failures) == 0 {
		return nil
	}

	fields := make([]string, 0, len(failures))
	for field := range failures {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	lines := make([]string, 0, len(fields))
	for _, field := range fields {
		lines = append(lines, fmt.Sprintf("  %s: %s", field, reasonText(failures[field])))
	}
	return fmt.Errorf("invalid book:\n%s", strings.Join(lines, "\n"))
}

func reasonText(reason string) string {
	switch reason {
	case book.ReasonRequired:
		return "is required"
	case book.ReasonOutOfRange:
		return fmt.Sprintf("must be between %d and %d", book.MinYear, book.MaxYear())
	case book.ReasonInvalidFormat:
		return fmt.Sprintf("must be %d digits", book.ISBNLength)
	}
	return reason
}

// serviceError turns a client error into the user-facing message.
func serviceError(err error) error {
	if err == nil {
		return nil
	}
	return errors.New(api.Classify(err))
}
