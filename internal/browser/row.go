package browser

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	xansi "github.com/charmbracelet/x/ansi"

	"github.com/Ycristian01/book-library-management/internal/book"
	"github.com/Ycristian01/book-library-management/internal/tui"
)

// bookRow wraps a Book for display in the list.
type bookRow struct {
	book book.Book
}

// FilterValue implements list.Item. Filtering is disabled (the service
// paginates; a local filter would only search one page), but the interface
// requires it.
func (r bookRow) FilterValue() string {
	return fmt.Sprintf("%s %s %s", r.book.Title, r.book.Author, r.book.ISBN)
}

func toRows(books []book.Book) []list.Item {
	items := make([]list.Item, len(books))
	for i, b := range books {
		items[i] = bookRow{book: b}
	}
	return items
}

// Column width constraints
const (
	idWidth        = 5
	yearWidth      = 5
	isbnWidth      = 14
	minTitleWidth  = 12
	maxTitleWidth  = 52
	minAuthorWidth = 10
	maxAuthorWidth = 28
	columnGap      = 1
)

// computeColumnWidths splits the flexible space between title and author.
func computeColumnWidths(totalWidth int) (titleW, authorW int) {
	prefix := 2
	gaps := columnGap * 4
	flex := totalWidth - prefix - gaps - idWidth - yearWidth - isbnWidth
	if flex < minTitleWidth+minAuthorWidth {
		return minTitleWidth, minAuthorWidth
	}
	titleW = flex * 60 / 100
	if titleW > maxTitleWidth {
		titleW = maxTitleWidth
	}
	authorW = flex - titleW
	if authorW > maxAuthorWidth {
		authorW = maxAuthorWidth
	}
	return titleW, authorW
}

// padTrunc fits s to exactly width cells, truncating with an ellipsis.
func padTrunc(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = xansi.Truncate(s, width, "…")
	if pad := width - xansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

// columnHeader renders the heading row above the book list.
func columnHeader(totalWidth int) string {
	titleW, authorW := computeColumnWidths(totalWidth)
	gap := strings.Repeat(" ", columnGap)
	line := "  " + padTrunc("ID", idWidth) + gap +
		padTrunc("Title", titleW) + gap +
		padTrunc("Author", authorW) + gap +
		padTrunc("Year", yearWidth) + gap +
		padTrunc("ISBN", isbnWidth)
	return tui.StyleHelp.Render(line)
}

// rowDelegate renders one book per line with fixed-width columns.
type rowDelegate struct{}

func (d rowDelegate) Height() int                               { return 1 }
func (d rowDelegate) Spacing() int                              { return 0 }
func (d rowDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	row, ok := item.(bookRow)
	if !ok {
		return
	}

	listWidth := m.Width()
	if listWidth <= 0 {
		listWidth = 80
	}
	titleW, authorW := computeColumnWidths(listWidth)
	gap := strings.Repeat(" ", columnGap)

	idCol := padTrunc(strconv.FormatInt(row.book.ID, 10), idWidth)
	titleCol := padTrunc(row.book.Title, titleW)
	authorCol := padTrunc(row.book.Author, authorW)
	yearCol := padTrunc(strconv.Itoa(row.book.Year), yearWidth)
	isbnCol := padTrunc(row.book.ISBN, isbnWidth)

	if index == m.Index() {
		line := tui.StyleHighlight.Render("› "+idCol+gap+titleCol) + gap +
			tui.StyleNormal.Render(authorCol) + gap +
			tui.StyleMeta.Render(yearCol+gap+isbnCol)
		_, _ = fmt.Fprint(w, line)
		return
	}

	line := "  " + tui.StyleHelp.Render(idCol) + gap +
		tui.StyleNormal.Render(titleCol) + gap +
		tui.StyleHelp.Render(authorCol) + gap +
		tui.StyleMeta.Render(yearCol+gap+isbnCol)
	_, _ = fmt.Fprint(w, line)
}
