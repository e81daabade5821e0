package app

import (
	"fmt"
	"net/http"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Ycristian01/book-library-management/internal/server"
)

func newServeCmd() *cobra.Command {
	var (
		host string
		port int
		seed bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run an in-memory book service for development",
		Long: `Run an in-memory book service for development.

The server speaks the same REST API bookctl consumes, so a second
terminal can point at it:

  bookctl serve --seed
  BOOKCTL_SERVICE_BASE_URL=http://127.0.0.1:8080 bookctl browse

All data lives in memory and is lost when the server stops.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if host == "" {
				host = cfg.Serve.Host
			}
			if port == 0 {
				port = cfg.Serve.Port
			}

			var repo *server.Repository
			if seed {
				repo = server.NewRepository(server.SeedBooks()...)
			} else {
				repo = server.NewRepository()
			}

			addr := fmt.Sprintf("%s:%d", host, port)
			header("Book service listening on http://%s", addr)
			if seed {
				fmt.Println(color.CyanString("Seeded with sample books."))
			}
			fmt.Println("Press Ctrl+C to stop.")

			return http.ListenAndServe(addr, server.Handler(repo))
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "Listen address (default from config)")
	cmd.Flags().IntVar(&port, "port", 0, "Listen port (default from config)")
	cmd.Flags().BoolVar(&seed, "seed", false, "Start with sample books")

	return cmd
}
