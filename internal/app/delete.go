package app

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Ycristian01/book-library-management/internal/tui"
)

func newDeleteCmd() *cobra.Command {
	var skipConfirm bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a book from the catalog",
		Long: `Remove a book from the catalog.

Examples:
  # Confirm interactively
  bookctl delete 12

  # Skip confirmation prompt
  bookctl delete 12 --yes`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseBookID(args[0])
			if err != nil {
				return err
			}

			b, err := client.Get(id)
			if err != nil {
				return serviceError(err)
			}

			if !skipConfirm {
				if !tui.IsTTY() {
					return fmt.Errorf("refusing to delete without --yes in non-interactive mode")
				}

				fmt.Println()
				fmt.Println(color.YellowString("⚠ You are about to delete a book"))
				fmt.Println()
				fmt.Printf("ID:      %d\n", b.ID)
				fmt.Printf("Title:   %s\n", color.WhiteString(b.Title))
				fmt.Printf("Author:  %s\n", b.Author)
				fmt.Println()
				fmt.Println(color.RedString("THIS CANNOT BE UNDONE"))
				fmt.Println()

				fmt.Print("Type the book ID to confirm deletion: ")
				var confirmation string
				_, _ = fmt.Scanln(&confirmation)
				if confirmation != strconv.FormatInt(id, 10) {
					return fmt.Errorf("confirmation did not match - aborted")
				}
			}

			if err := client.Delete(id); err != nil {
				return serviceError(err)
			}

			ok("Deleted book %d: %s", b.ID, b.Label())
			return nil
		},
	}

	cmd.Flags().BoolVar(&skipConfirm, "yes", false, "Skip confirmation prompt")

	return cmd
}

// parseBookID parses a positional book id argument.
func parseBookID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid book id %q", arg)
	}
	return id, nil
}
