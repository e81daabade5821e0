package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ClearActiveKeyMsg clears the pressed-key highlight in the footer.
type ClearActiveKeyMsg struct{}

// ShortcutEntry pairs a trigger key with its footer label.
type ShortcutEntry struct {
	Key   string // trigger key matched against the active key (empty = never highlighted)
	Label string // display text
}

// HighlightKey returns a short tick that clears the pressed-key highlight.
// Callers set the active key on the model before returning:
//
//	m.activeKey = "enter"
//	return m, tui.HighlightKey()
func HighlightKey() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(time.Time) tea.Msg {
		return ClearActiveKeyMsg{}
	})
}

// RenderFooterBar renders the shortcut bar. The entry matching activeKey is
// drawn with StyleHighlight; the rest are dim.
func RenderFooterBar(shortcuts []ShortcutEntry, activeKey string) string {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	parts := make([]string, len(shortcuts))
	for i, sc := range shortcuts {
		if activeKey != "" && sc.Key == activeKey {
			parts[i] = StyleHighlight.Render("[ " + sc.Label + " ]")
		} else {
			parts[i] = dim.Render(sc.Label)
		}
	}

	return lipgloss.NewStyle().Padding(0, 1).Render(strings.Join(parts, dim.Render(" • ")))
}
