package app

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <id>",
		Short: "Show details for one book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseBookID(args[0])
			if err != nil {
				return err
			}

			b, err := client.Get(id)
			if err != nil {
				return serviceError(err)
			}

			header("Book %d", b.ID)
			fmt.Printf("Title:   %s\n", color.WhiteString(b.Title))
			fmt.Printf("Author:  %s\n", b.Author)
			fmt.Printf("Year:    %d\n", b.Year)
			fmt.Printf("ISBN:    %s\n", b.ISBN)
			return nil
		},
	}
}
