package tui

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// IsTTY returns true if stdout is a terminal.
func IsTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

// InitColor configures color output based on flags and terminal detection.
func InitColor(noColor bool) {
	if noColor || !IsTTY() {
		color.NoColor = true
	}
}

// ShouldUseTUI returns true if the command should run interactively:
// stdout is a TTY and --no-interactive is not set. Piped or redirected
// output always gets the plain text path.
func ShouldUseTUI(cmd *cobra.Command) bool {
	if !IsTTY() {
		return false
	}
	noInteractive, _ := cmd.Flags().GetBool("no-interactive")
	return !noInteractive
}
