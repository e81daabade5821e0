package browser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Ycristian01/book-library-management/internal/book"
)

const (
	fieldTitle = iota
	fieldAuthor
	fieldYear
	fieldISBN
	fieldCount
)

var fieldNames = [fieldCount]string{"title", "author", "year", "isbn"}
var fieldLabels = [fieldCount]string{"Title", "Author", "Year", "ISBN"}

// bookForm collects the fields of a candidate record for the add and edit
// workflows. It owns per-field validation errors; submission and the busy
// flag belong to the browser model.
type bookForm struct {
	inputs  [fieldCount]textinput.Model
	focused int
	errors  map[string]string
}

func newBookForm(defaults *book.Book) bookForm {
	f := bookForm{errors: map[string]string{}}

	const fieldWidth = 42

	f.inputs[fieldTitle] = textinput.New()
	f.inputs[fieldTitle].Placeholder = "Book title"
	f.inputs[fieldTitle].CharLimit = 200
	f.inputs[fieldTitle].Width = fieldWidth
	f.inputs[fieldTitle].Prompt = "│ "

	f.inputs[fieldAuthor] = textinput.New()
	f.inputs[fieldAuthor].Placeholder = "Author name"
	f.inputs[fieldAuthor].CharLimit = 100
	f.inputs[fieldAuthor].Width = fieldWidth
	f.inputs[fieldAuthor].Prompt = "│ "

	f.inputs[fieldYear] = textinput.New()
	f.inputs[fieldYear].Placeholder = "2024"
	f.inputs[fieldYear].CharLimit = 4
	f.inputs[fieldYear].Width = 8
	f.inputs[fieldYear].Prompt = "│ "

	f.inputs[fieldISBN] = textinput.New()
	f.inputs[fieldISBN].Placeholder = "9780000000000"
	f.inputs[fieldISBN].Width = 20
	f.inputs[fieldISBN].Prompt = "│ "

	if defaults != nil {
		f.inputs[fieldTitle].SetValue(defaults.Title)
		f.inputs[fieldAuthor].SetValue(defaults.Author)
		if defaults.Year > 0 {
			f.inputs[fieldYear].SetValue(strconv.Itoa(defaults.Year))
		}
		f.inputs[fieldISBN].SetValue(defaults.ISBN)
	}

	f.inputs[fieldTitle].Focus()
	return f
}

// cycleFocus moves focus forward (or backward) through the fields.
func (f *bookForm) cycleFocus(backward bool) tea.Cmd {
	if backward {
		f.focused--
	} else {
		f.focused++
	}
	if f.focused < 0 {
		f.focused = fieldCount - 1
	} else if f.focused >= fieldCount {
		f.focused = 0
	}

	var cmds []tea.Cmd
	for i := range f.inputs {
		if i == f.focused {
			cmds = append(cmds, f.inputs[i].Focus())
		} else {
			f.inputs[i].Blur()
		}
	}
	return tea.Batch(cmds...)
}

// update forwards input to the focused field, keeping the ISBN and year
// fields digits-only. Editing a field clears its validation error.
func (f *bookForm) update(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(f.inputs))
	for i := range f.inputs {
		f.inputs[i], cmds[i] = f.inputs[i].Update(msg)
	}

	// Strip non-digits as the user types so the ISBN can never exceed
	// thirteen digits; shorter input only fails at submit time.
	if v := f.inputs[fieldISBN].Value(); v != book.NormalizeISBN(v) {
		f.inputs[fieldISBN].SetValue(book.NormalizeISBN(v))
		f.inputs[fieldISBN].CursorEnd()
	}
	if v := f.inputs[fieldYear].Value(); v != digitsOnly(v) {
		f.inputs[fieldYear].SetValue(digitsOnly(v))
		f.inputs[fieldYear].CursorEnd()
	}

	if _, isKey := msg.(tea.KeyMsg); isKey {
		delete(f.errors, fieldNames[f.focused])
	}

	return tea.Batch(cmds...)
}

// draft assembles the candidate record from the current field values.
func (f *bookForm) draft() book.Book {
	year, _ := strconv.Atoi(strings.TrimSpace(f.inputs[fieldYear].Value()))
	return book.Book{
		Title:  strings.TrimSpace(f.inputs[fieldTitle].Value()),
		Author: strings.TrimSpace(f.inputs[fieldAuthor].Value()),
		Year:   year,
		ISBN:   f.inputs[fieldISBN].Value(),
	}
}

// validate runs the field validator and stores all failures for rendering.
// Returns true when the draft may be submitted.
func (f *bookForm) validate() bool {
	f.errors = book.Validate(f.draft())
	return len(f.errors) == 0
}

// fieldError returns the display message for a field's validation failure.
func fieldError(field, reason string) string {
	switch reason {
	case book.ReasonRequired:
		return fieldLabels[fieldIndex(field)] + " is required"
	case book.ReasonOutOfRange:
		return fmt.Sprintf("Year must be between %d and %d", book.MinYear, book.MaxYear())
	case book.ReasonInvalidFormat:
		return fmt.Sprintf("ISBN must be exactly %d digits", book.ISBNLength)
	default:
		return reason
	}
}

func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r < '0' || r > '9' {
			return -1
		}
		return r
	}, s)
}

func fieldIndex(field string) int {
	for i, name := range fieldNames {
		if name == field {
			return i
		}
	}
	return 0
}
