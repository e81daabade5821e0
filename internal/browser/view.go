package browser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Ycristian01/book-library-management/internal/pagination"
	"github.com/Ycristian01/book-library-management/internal/tui"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.mode {
	case modeAdd, modeEdit:
		return m.viewForm()
	case modeView:
		return m.viewDetail()
	case modeDeleteConfirm:
		return m.viewConfirm()
	}
	return m.viewList()
}

func (m Model) viewList() string {
	var b strings.Builder

	b.WriteString(tui.StyleHeader.Render("Library Management"))
	b.WriteString("\n")
	b.WriteString(m.renderNotification())
	b.WriteString("\n\n")

	switch {
	case m.status == statusLoading:
		b.WriteString(m.spinner.View())
		b.WriteString(tui.StyleHelp.Render(" Loading books..."))
		b.WriteString("\n")

	case m.status == statusError:
		b.WriteString(tui.StyleError.Render("Error Loading Books"))
		b.WriteString("\n\n")
		b.WriteString(tui.StyleNormal.Render(m.errMsg))
		b.WriteString("\n\n")
		b.WriteString(tui.StyleHelp.Render("Press r to try again"))
		b.WriteString("\n")

	case m.total == 0:
		b.WriteString(tui.StyleHeader.Render("No Books Found"))
		b.WriteString("\n\n")
		b.WriteString(tui.StyleHelp.Render("There are no books in the library yet. Press a to add one."))
		b.WriteString("\n")

	default:
		b.WriteString(columnHeader(m.list.Width()))
		b.WriteString("\n")
		b.WriteString(m.list.View())
		b.WriteString("\n")
		b.WriteString(m.renderPaginationBar())
	}

	b.WriteString("\n")
	b.WriteString(tui.RenderFooterBar([]tui.ShortcutEntry{
		{Key: "", Label: "a add"},
		{Key: "", Label: "enter details"},
		{Key: "", Label: "e edit"},
		{Key: "", Label: "d delete"},
		{Key: "next", Label: "←/→ page"},
		{Key: "size", Label: "s page size"},
		{Key: "", Label: "r refresh"},
		{Key: "", Label: "q quit"},
	}, m.activeKey))

	return m.frame(b.String())
}

// renderPaginationBar shows the visible range and page position.
func (m Model) renderPaginationBar() string {
	start, end := pagination.Range(m.page, m.limit, m.total)
	pages := pagination.TotalPages(m.total, m.limit)

	left := fmt.Sprintf("Showing %d to %d of %d results", start, end, m.total)
	right := fmt.Sprintf("Page %d of %d · %d per page", m.page, pages, m.limit)

	var arrows string
	if pagination.CanPrev(m.page) {
		arrows += "← "
	} else {
		arrows += "  "
	}
	if pagination.CanNext(m.page, m.limit, m.total) {
		arrows += "→"
	}

	return tui.StyleHelp.Render(left + "   " + right + "  " + arrows)
}

func (m Model) renderNotification() string {
	if !m.notif.visible {
		return ""
	}
	if m.notif.sev == severityError {
		return tui.StyleError.Render("✗ " + m.notif.message)
	}
	return tui.StyleSuccess.Render("✓ " + m.notif.message)
}

func (m Model) viewForm() string {
	title := "Add New Book"
	if m.mode == modeEdit {
		title = "Edit Book"
	}

	sepStyle := lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#D0D0D0", Dark: "#444444"})
	formLabel := lipgloss.NewStyle().
		Foreground(tui.ColorGray).
		Width(10).
		Align(lipgloss.Right).
		PaddingRight(1)
	formLabelActive := lipgloss.NewStyle().
		Foreground(tui.ColorYellow).
		Bold(true).
		Width(10).
		Align(lipgloss.Right).
		PaddingRight(1)

	const w = 56
	sep := sepStyle.Render(strings.Repeat("─", w))

	var b strings.Builder

	b.WriteString(tui.StyleHeader.Render(title))
	b.WriteString("\n")
	if m.mode == modeEdit && m.target != nil {
		b.WriteString(tui.StyleHelp.Render(fmt.Sprintf("#%d", m.target.ID)))
		b.WriteString("\n")
	}
	b.WriteString(m.renderNotification())
	b.WriteString("\n")
	b.WriteString(sep)
	b.WriteString("\n\n")

	for i := 0; i < fieldCount; i++ {
		if i == m.form.focused && !m.busy {
			b.WriteString(formLabelActive.Render("› " + fieldLabels[i]))
		} else {
			b.WriteString(formLabel.Render(fieldLabels[i]))
		}
		b.WriteString(m.form.inputs[i].View())
		b.WriteString("\n")
		if reason, bad := m.form.errors[fieldNames[i]]; bad {
			b.WriteString(formLabel.Render(""))
			b.WriteString(tui.StyleError.Render(fieldError(fieldNames[i], reason)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(sep)
	b.WriteString("\n")

	if m.busy {
		b.WriteString(m.spinner.View())
		b.WriteString(tui.StyleHelp.Render(" Saving..."))
	} else {
		submit := "enter add book"
		if m.mode == modeEdit {
			submit = "enter update"
		}
		b.WriteString(tui.RenderFooterBar([]tui.ShortcutEntry{
			{Key: "", Label: "tab/↑↓ navigate"},
			{Key: "", Label: submit},
			{Key: "", Label: "esc cancel"},
		}, m.activeKey))
	}
	b.WriteString("\n")

	return m.frame(b.String())
}

func (m Model) viewDetail() string {
	if m.target == nil {
		return ""
	}

	label := lipgloss.NewStyle().
		Foreground(tui.ColorGray).
		Width(8).
		Align(lipgloss.Right).
		PaddingRight(1)

	var b strings.Builder
	b.WriteString(tui.StyleHeader.Render("Book Details"))
	b.WriteString("\n\n")

	b.WriteString(label.Render("Title"))
	b.WriteString(tui.StyleNormal.Bold(true).Render(m.target.Title))
	b.WriteString("\n")
	b.WriteString(label.Render("Author"))
	b.WriteString(tui.StyleNormal.Render(m.target.Author))
	b.WriteString("\n")
	b.WriteString(label.Render("Year"))
	b.WriteString(tui.StyleMeta.Render(strconv.Itoa(m.target.Year)))
	b.WriteString("\n")
	b.WriteString(label.Render("ISBN"))
	b.WriteString(tui.StyleMeta.Render(m.target.ISBN))
	b.WriteString("\n")
	b.WriteString(label.Render("ID"))
	b.WriteString(tui.StyleHelp.Render(strconv.FormatInt(m.target.ID, 10)))
	b.WriteString("\n\n")

	b.WriteString(tui.RenderFooterBar([]tui.ShortcutEntry{
		{Key: "", Label: "e edit"},
		{Key: "", Label: "esc close"},
	}, m.activeKey))
	b.WriteString("\n")

	return m.frame(b.String())
}

func (m Model) viewConfirm() string {
	if m.target == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(tui.StyleDanger.Render("Delete Book"))
	b.WriteString("\n")
	b.WriteString(m.renderNotification())
	b.WriteString("\n\n")

	b.WriteString(tui.StyleNormal.Render("Delete this book from the library?"))
	b.WriteString("\n\n")
	b.WriteString(tui.StyleNormal.Render("  " + m.target.Label()))
	b.WriteString("\n")
	b.WriteString(tui.StyleHelp.Render("  ISBN " + m.target.ISBN))
	b.WriteString("\n\n")
	b.WriteString(tui.StyleDanger.Render("THIS CANNOT BE UNDONE"))
	b.WriteString("\n\n")

	if m.busy {
		b.WriteString(m.spinner.View())
		b.WriteString(tui.StyleHelp.Render(" Deleting..."))
	} else {
		b.WriteString(tui.RenderFooterBar([]tui.ShortcutEntry{
			{Key: "", Label: "enter/y confirm"},
			{Key: "", Label: "esc/n cancel"},
		}, m.activeKey))
	}
	b.WriteString("\n")

	return m.frame(b.String())
}

// frame wraps a view in the shared border with outer padding.
func (m Model) frame(content string) string {
	outer := lipgloss.NewStyle().Padding(1, 2)
	inner := lipgloss.NewStyle().Padding(0, 2, 0, 1)
	return outer.Render(tui.StyleBorder.Render(inner.Render(content)))
}
