// Package browser is the interactive catalog browser. One Bubble Tea model
// owns the list truth (page, limit, total, items, fetch status), the
// mutually-exclusive modal workflows that mutate it, and the transient
// notification shown after each outcome. All remote work runs as commands;
// the Update loop is the only writer of any state.
package browser

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Ycristian01/book-library-management/internal/api"
	"github.com/Ycristian01/book-library-management/internal/book"
	"github.com/Ycristian01/book-library-management/internal/pagination"
	"github.com/Ycristian01/book-library-management/internal/tui"
)

// fetch status of the list
type status int

const (
	statusIdle status = iota
	statusLoading
	statusError
)

// mode is the active modal workflow. At most one is open at a time.
type mode int

const (
	modeNone mode = iota
	modeAdd
	modeEdit
	modeView
	modeDeleteConfirm
)

type severity int

const (
	severitySuccess severity = iota
	severityError
)

// notifDuration is how long a notification stays visible before
// auto-dismissing. Variable so tests can shorten it.
var notifDuration = 4 * time.Second

type notification struct {
	message string
	sev     severity
	visible bool
	seq     int
}

// Model is the browser state. List state changes only through load results,
// workflow state only through the open/close/submit handlers.
type Model struct {
	client *api.Client

	// list state: books always reflects the most recently completed fetch
	// for (page, limit); a fetch in flight never touches it.
	books  []book.Book
	page   int
	limit  int
	total  int
	status status
	errMsg string

	// loadSeq tags the latest issued load; results carrying an older seq
	// are stale and discarded.
	loadSeq int

	// workflow state
	mode     mode
	target   *book.Book
	busy     bool
	form     bookForm
	workflow int // instance counter, bumped on every open and close

	notif notification

	list      list.Model
	spinner   spinner.Model
	keys      keyMap
	width     int
	height    int
	activeKey string
	quitting  bool
}

type keyMap struct {
	add     key.Binding
	view    key.Binding
	edit    key.Binding
	del     key.Binding
	next    key.Binding
	prev    key.Binding
	resize  key.Binding
	refresh key.Binding
	quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		add:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		view:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		edit:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		del:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		next:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next page")),
		prev:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "prev page")),
		resize:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "page size")),
		refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// New creates the browser model. The first page loads on Init.
func New(client *api.Client, limit int) Model {
	if !pagination.ValidLimit(limit) {
		limit = pagination.DefaultLimit
	}

	l := list.New(nil, rowDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = tui.StyleHighlight

	return Model{
		client:  client,
		page:    1,
		limit:   limit,
		status:  statusLoading,
		loadSeq: 1,
		list:    l,
		spinner: sp,
		keys:    newKeyMap(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadCmd(m.client, m.loadSeq, m.page, m.limit))
}

// loadCmd fetches one page, tagging the result with the request it was
// issued for.
func loadCmd(client *api.Client, seq, page, limit int) tea.Cmd {
	return func() tea.Msg {
		p, err := client.List(page, limit)
		return booksLoadedMsg{
			seq: seq, page: page, limit: limit,
			books: p.Books, total: p.Total, echoed: p.Page,
			err: err,
		}
	}
}

// startLoad records a new authoritative request and returns its command.
// Any earlier load still in flight becomes stale from this point on.
func (m *Model) startLoad(page, limit int) tea.Cmd {
	m.loadSeq++
	m.page = page
	m.limit = limit
	m.status = statusLoading
	m.errMsg = ""
	return loadCmd(m.client, m.loadSeq, page, limit)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h, v := tui.StyleBorder.GetFrameSize()
		// Leave room for the header, column header, pagination bar and
		// notification line.
		m.list.SetSize(msg.Width-h, msg.Height-v-8)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tui.ClearActiveKeyMsg:
		m.activeKey = ""
		return m, nil

	case booksLoadedMsg:
		return m.handleLoaded(msg)

	case bookSavedMsg:
		return m.handleSaved(msg)

	case bookDeletedMsg:
		return m.handleDeleted(msg)

	case notifExpiredMsg:
		if msg.seq == m.notif.seq {
			m.notif.visible = false
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleLoaded applies a completed fetch, unless it is stale.
func (m Model) handleLoaded(msg booksLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.loadSeq {
		// A newer load's parameters are authoritative; this response
		// arrived too late to matter.
		return m, nil
	}

	if msg.err != nil {
		m.status = statusError
		m.errMsg = api.Classify(msg.err)
		m.books = nil
		m.total = 0
		m.list.SetItems(nil)
		return m, nil
	}

	m.status = statusIdle
	m.total = msg.total
	if msg.echoed > 0 {
		m.page = msg.echoed
	} else {
		m.page = msg.page
	}

	// Deleting the last record of the last page leaves the requested page
	// empty; step back until there is something to show.
	if len(msg.books) == 0 && m.page > 1 {
		return m, m.startLoad(m.page-1, m.limit)
	}

	m.books = msg.books
	m.list.SetItems(toRows(msg.books))
	return m, nil
}

// handleSaved finishes a create/update submission.
func (m Model) handleSaved(msg bookSavedMsg) (tea.Model, tea.Cmd) {
	current := msg.workflow == m.workflow
	if current {
		m.busy = false
	}

	if msg.err != nil {
		// The dialog stays open with the entered values so the user can
		// correct and resubmit.
		return m, m.notify(api.Classify(msg.err), severityError)
	}

	text := "Book added successfully!"
	if msg.mode == modeEdit {
		text = "Book updated successfully!"
	}
	if current {
		m.closeWorkflow()
	}
	return m, tea.Batch(m.notify(text, severitySuccess), m.startLoad(m.page, m.limit))
}

// handleDeleted finishes a delete request.
func (m Model) handleDeleted(msg bookDeletedMsg) (tea.Model, tea.Cmd) {
	current := msg.workflow == m.workflow
	if current {
		m.busy = false
	}

	if msg.err != nil {
		// The confirmation dialog stays open.
		return m, m.notify(api.Classify(msg.err), severityError)
	}

	if current {
		m.closeWorkflow()
	}
	return m, tea.Batch(m.notify("Book deleted successfully!", severitySuccess), m.startLoad(m.page, m.limit))
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeNone:
		return m.handleListKey(msg)
	case modeAdd, modeEdit:
		return m.handleFormKey(msg)
	case modeView:
		return m.handleDetailKey(msg)
	case modeDeleteConfirm:
		return m.handleConfirmKey(msg)
	}
	return m, nil
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.refresh):
		return m, m.startLoad(m.page, m.limit)

	case key.Matches(msg, m.keys.add):
		if m.openWorkflow(modeAdd, nil) {
			m.form = newBookForm(nil)
		}
		return m, nil

	case key.Matches(msg, m.keys.view):
		if b, ok := m.selectedBook(); ok {
			m.openWorkflow(modeView, &b)
		}
		return m, nil

	case key.Matches(msg, m.keys.edit):
		if b, ok := m.selectedBook(); ok && m.openWorkflow(modeEdit, &b) {
			m.form = newBookForm(&b)
		}
		return m, nil

	case key.Matches(msg, m.keys.del):
		if b, ok := m.selectedBook(); ok {
			m.openWorkflow(modeDeleteConfirm, &b)
		}
		return m, nil

	case key.Matches(msg, m.keys.next):
		if pagination.CanNext(m.page, m.limit, m.total) && m.status == statusIdle {
			m.activeKey = "next"
			return m, tea.Batch(m.startLoad(m.page+1, m.limit), tui.HighlightKey())
		}
		return m, nil

	case key.Matches(msg, m.keys.prev):
		if pagination.CanPrev(m.page) && m.status == statusIdle {
			m.activeKey = "prev"
			return m, tea.Batch(m.startLoad(m.page-1, m.limit), tui.HighlightKey())
		}
		return m, nil

	case key.Matches(msg, m.keys.resize):
		// A new page size invalidates the old page offsets; restart at
		// page one.
		m.activeKey = "size"
		next := pagination.NextLimit(m.limit)
		return m, tea.Batch(m.startLoad(1, next), tui.HighlightKey())
	}

	// Cursor movement and scrolling stay with the list.
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "esc":
		// Closing does not cancel an in-flight save; the response is
		// simply discarded when it arrives for a dead workflow.
		m.closeWorkflow()
		return m, nil

	case "enter":
		if m.busy {
			return m, nil
		}
		if !m.form.validate() {
			return m, nil
		}
		draft := m.form.draft()
		if m.mode == modeEdit && m.target != nil {
			draft.ID = m.target.ID
		}
		m.busy = true
		return m, saveCmd(m.client, m.workflow, m.mode, draft)

	case "tab", "down":
		return m, m.form.cycleFocus(false)

	case "shift+tab", "up":
		return m, m.form.cycleFocus(true)
	}

	if m.busy {
		return m, nil
	}
	return m, m.form.update(msg)
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "esc", "q":
		m.closeWorkflow()
		return m, nil

	case "e":
		// View-to-edit shortcut: same target, fresh workflow instance.
		target := m.target
		m.closeWorkflow()
		if m.openWorkflow(modeEdit, target) {
			m.form = newBookForm(target)
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "esc", "n":
		// No dismissal while the delete is outstanding.
		if m.busy {
			return m, nil
		}
		m.closeWorkflow()
		return m, nil

	case "enter", "y":
		if m.busy || m.target == nil {
			return m, nil
		}
		m.busy = true
		return m, deleteCmd(m.client, m.workflow, m.target.ID)
	}
	return m, nil
}

// saveCmd submits a draft, tagged with the workflow instance that owns it.
func saveCmd(client *api.Client, workflow int, formMode mode, draft book.Book) tea.Cmd {
	return func() tea.Msg {
		var (
			saved book.Book
			err   error
		)
		if formMode == modeEdit {
			saved, err = client.Update(draft)
		} else {
			saved, err = client.Create(draft)
		}
		return bookSavedMsg{workflow: workflow, mode: formMode, book: saved, err: err}
	}
}

func deleteCmd(client *api.Client, workflow int, id int64) tea.Cmd {
	return func() tea.Msg {
		err := client.Delete(id)
		return bookDeletedMsg{workflow: workflow, id: id, err: err}
	}
}

// openWorkflow activates a modal workflow. Opening while another is active
// is rejected, guarding mutual exclusivity even if a view wires a key it
// should not have.
func (m *Model) openWorkflow(newMode mode, target *book.Book) bool {
	if m.mode != modeNone {
		return false
	}
	m.mode = newMode
	m.target = target
	m.busy = false
	m.workflow++
	return true
}

// closeWorkflow returns to the plain list. Bumping the instance counter
// orphans any result still in flight for the old workflow.
func (m *Model) closeWorkflow() {
	m.mode = modeNone
	m.target = nil
	m.busy = false
	m.form = bookForm{}
	m.workflow++
}

// notify replaces the visible notification and schedules its dismissal.
func (m *Model) notify(text string, sev severity) tea.Cmd {
	m.notif = notification{message: text, sev: sev, visible: true, seq: m.notif.seq + 1}
	seq := m.notif.seq
	return tea.Tick(notifDuration, func(time.Time) tea.Msg {
		return notifExpiredMsg{seq: seq}
	})
}

func (m Model) selectedBook() (book.Book, bool) {
	row, ok := m.list.SelectedItem().(bookRow)
	if !ok {
		return book.Book{}, false
	}
	return row.book, true
}

// Run launches the browser in the alternate screen.
func Run(client *api.Client, limit int) error {
	p := tea.NewProgram(New(client, limit), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
