package app

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Ycristian01/book-library-management/internal/api"
	"github.com/Ycristian01/book-library-management/internal/browser"
	"github.com/Ycristian01/book-library-management/internal/config"
	"github.com/Ycristian01/book-library-management/internal/tui"
)

var (
	cfg    *config.Config
	client *api.Client

	flagNoColor       bool
	flagNoInteractive bool
	flagConfig        string
)

var rootCmd = &cobra.Command{
	Use:   "bookctl",
	Short: "Manage a book catalog backed by a REST book service",
	Long: `bookctl is a client for a book catalog service.

Run 'bookctl' with no arguments to launch the interactive browser.
Every operation is also available as a plain sub-command for scripting,
and 'bookctl serve' starts an in-memory development server.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if tui.ShouldUseTUI(cmd) {
			return browser.Run(client, cfg.Defaults.Limit)
		}
		return cmd.Help()
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagNoInteractive, "no-interactive", false, "Disable interactive TUI mode")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/bookctl/config.yml)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		tui.InitColor(flagNoColor)

		var err error
		cfg, err = config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		client = api.New(cfg.Service.BaseURL)
		return nil
	}

	// Register sub-commands.
	rootCmd.AddCommand(
		newBrowseCmd(),
		newAddCmd(),
		newEditCmd(),
		newDeleteCmd(),
		newInfoCmd(),
		newServeCmd(),
		newVersionCmd(),
		newCompletionCmd(),
	)
}

// ok prints a green success line.
func ok(format string, a ...interface{}) {
	fmt.Println(color.GreenString("✓"), fmt.Sprintf(format, a...))
}

// warn prints a yellow warning line.
func warn(format string, a ...interface{}) {
	fmt.Fprintln(os.Stderr, color.YellowString("!"), fmt.Sprintf(format, a...))
}

// header prints a cyan section heading.
func header(format string, a ...interface{}) {
	fmt.Println(color.CyanString(fmt.Sprintf(format, a...)))
}
