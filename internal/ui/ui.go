package ui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"jot/internal/config"
	"jot/internal/notes"
)

type route int

const (
	routeList route = iota
	routeAdd
)

type field int

const (
	fieldTitle field = iota
	fieldContent
	fieldCategory
)

// form holds the transient buffers behind both the add view and inline edit.
type form struct {
	title    textinput.Model
	content  textarea.Model
	category notes.Category
	focus    field
}

func newForm(width int) form {
	ti := textinput.New()
	ti.Placeholder = "Enter note title..."
	ti.CharLimit = 256
	ti.Width = width

	ta := textarea.New()
	ta.Placeholder = "Enter note content..."
	ta.ShowLineNumbers = false
	ta.SetWidth(width)
	ta.SetHeight(4)

	return form{title: ti, content: ta, category: notes.Personal}
}

func (f *form) reset(title, content string, category notes.Category) tea.Cmd {
	f.title.SetValue(title)
	f.title.CursorEnd()
	f.content.SetValue(content)
	f.category = category
	return f.focusField(fieldTitle)
}

func (f *form) focusField(to field) tea.Cmd {
	f.focus = to
	f.title.Blur()
	f.content.Blur()
	switch to {
	case fieldTitle:
		return f.title.Focus()
	case fieldContent:
		return f.content.Focus()
	}
	return nil
}

func (f *form) blur() {
	f.title.Blur()
	f.content.Blur()
}

func (f *form) setWidth(w int) {
	f.title.Width = w
	f.content.SetWidth(w)
}

// ready reports whether the submit control is enabled.
func (f form) ready() bool {
	return notBlank(f.title.Value()) && notBlank(f.content.Value())
}

func (f form) update(msg tea.Msg) (form, tea.Cmd) {
	var cmd tea.Cmd
	switch f.focus {
	case fieldTitle:
		f.title, cmd = f.title.Update(msg)
	case fieldContent:
		f.content, cmd = f.content.Update(msg)
	}
	return f, cmd
}

type Model struct {
	store      *notes.Store
	cfg        config.Config
	route      route
	filter     notes.Filter
	visible    notes.Collection
	cursor     int
	add        form
	edit       form
	editing    bool
	editID     int64
	confirmDel bool
	pendingDel *notes.Note
	alert      string
	status     string
	width      int
	now        func() time.Time
}

// New builds the model over an already loaded store.
func New(store *notes.Store, cfg config.Config) Model {
	m := Model{
		store:  store,
		cfg:    cfg,
		route:  routeList,
		filter: notes.All,
		add:    newForm(40),
		edit:   newForm(40),
		status: fmt.Sprintf("Press '%s' to add, '%s' to edit, '%s' to delete.", cfg.Keys.Add, cfg.Keys.Edit, cfg.Keys.Delete),
		width:  80,
		now:    time.Now,
	}
	m.add.category = cfg.Category()
	m.refresh()
	return m
}

func Run(store *notes.Store, cfg config.Config) error {
	program := tea.NewProgram(New(store, cfg), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.alert != "" {
			return m.updateAlert(msg.String())
		}
		if m.confirmDel {
			return m.updateDeleteConfirm(msg.String())
		}
		if m.route == routeAdd {
			return m.updateAddRoute(msg)
		}
		if m.editing {
			return m.updateEditMode(msg)
		}
		return m.updateListRoute(msg.String())
	case tea.WindowSizeMsg:
		m.width = msg.Width
		inner := clampWidth(msg.Width - 10)
		m.add.setWidth(inner)
		m.edit.setWidth(inner)
		return m, nil
	}
	var cmd tea.Cmd
	switch {
	case m.route == routeAdd:
		m.add, cmd = m.add.update(msg)
	case m.editing:
		m.edit, cmd = m.edit.update(msg)
	}
	return m, cmd
}

// updateAlert blocks every key except the ones that dismiss the alert.
func (m Model) updateAlert(key string) (tea.Model, tea.Cmd) {
	switch key {
	case m.cfg.Keys.Confirm, m.cfg.Keys.Cancel, "enter", "esc":
		m.alert = ""
	}
	return m, nil
}

func (m Model) updateListRoute(key string) (tea.Model, tea.Cmd) {
	switch key {
	case m.cfg.Keys.Quit:
		return m, tea.Quit
	case m.cfg.Keys.Down, "down":
		if len(m.visible) == 0 {
			return m, nil
		}
		m.cursor = clampCursor(m.cursor+1, len(m.visible))
	case m.cfg.Keys.Up, "up":
		if m.cursor > 0 {
			m.cursor = clampCursor(m.cursor-1, len(m.visible))
		}
	case m.cfg.Keys.NextFilter:
		m.setFilter(cycleFilter(m.filter, 1))
	case m.cfg.Keys.PrevFilter:
		m.setFilter(cycleFilter(m.filter, -1))
	case "1", "2", "3", "4":
		m.setFilter(notes.Filters()[int(key[0]-'1')])
	case m.cfg.Keys.Add:
		m.route = routeAdd
		m.status = "New note: tab to move between fields, ctrl+s to add, esc to go back"
		cmd := m.add.reset("", "", m.cfg.Category())
		return m, cmd
	case m.cfg.Keys.Edit:
		n, ok := m.selected()
		if !ok {
			m.status = "No notes to edit"
			return m, nil
		}
		m.editing = true
		m.editID = n.ID
		m.status = fmt.Sprintf("Editing \"%s\": %s to save, %s to cancel", n.Title, m.cfg.Keys.Save, m.cfg.Keys.Cancel)
		cmd := m.edit.reset(n.Title, n.Content, n.Category)
		return m, cmd
	case m.cfg.Keys.Delete:
		n, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.confirmDel = true
		m.pendingDel = &n
		m.status = fmt.Sprintf("Delete \"%s\"? y/n", n.Title)
	}
	return m, nil
}

func (m Model) updateAddRoute(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case m.cfg.Keys.Cancel:
		m.add.reset("", "", m.cfg.Category())
		m.add.blur()
		m.route = routeList
		m.status = "Cancelled"
		return m, nil
	case "tab":
		cmd := m.add.focusField((m.add.focus + 1) % 3)
		return m, cmd
	case "shift+tab":
		cmd := m.add.focusField((m.add.focus + 2) % 3)
		return m, cmd
	case m.cfg.Keys.Save:
		n, err := m.store.Add(m.add.title.Value(), m.add.content.Value(), m.add.category)
		if err != nil {
			return m.fail(err, "save failed")
		}
		m.add.reset("", "", m.cfg.Category())
		m.add.blur()
		m.route = routeList
		m.refresh()
		m.selectID(n.ID)
		m.status = fmt.Sprintf("Added \"%s\"", n.Title)
		return m, nil
	}
	if m.add.focus == fieldCategory {
		switch msg.String() {
		case "right", "l", "down", "j", " ":
			m.add.category = cycleCategory(m.add.category, 1)
		case "left", "h", "up", "k":
			m.add.category = cycleCategory(m.add.category, -1)
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.add, cmd = m.add.update(msg)
	return m, cmd
}

func (m Model) updateEditMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case m.cfg.Keys.Cancel:
		// Buffers are discarded; the next edit reloads them from the note.
		m.editing = false
		m.edit.blur()
		m.status = "Edit cancelled"
		return m, nil
	case "tab", "shift+tab":
		next := fieldContent
		if m.edit.focus == fieldContent {
			next = fieldTitle
		}
		cmd := m.edit.focusField(next)
		return m, cmd
	case m.cfg.Keys.Save:
		if err := m.store.Edit(m.editID, m.edit.title.Value(), m.edit.content.Value()); err != nil {
			return m.fail(err, "save failed")
		}
		m.editing = false
		m.edit.blur()
		m.refresh()
		m.selectID(m.editID)
		m.status = "Note saved"
		return m, nil
	}
	var cmd tea.Cmd
	m.edit, cmd = m.edit.update(msg)
	return m, cmd
}

func (m Model) updateDeleteConfirm(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "n", "N", m.cfg.Keys.Cancel:
		m.status = "Delete cancelled"
		m.confirmDel = false
		m.pendingDel = nil
		return m, nil
	case "y", "Y":
		if m.pendingDel == nil {
			m.status = "Nothing to delete"
			m.confirmDel = false
			return m, nil
		}
		title := m.pendingDel.Title
		err := m.store.Delete(m.pendingDel.ID)
		m.confirmDel = false
		m.pendingDel = nil
		if err != nil {
			m.status = fmt.Sprintf("delete failed: %v", err)
			return m, nil
		}
		m.refresh()
		m.status = fmt.Sprintf("Deleted \"%s\"", title)
		return m, nil
	default:
		return m, nil
	}
}

// fail routes validation errors to the blocking alert and everything else to
// the status line.
func (m Model) fail(err error, prefix string) (tea.Model, tea.Cmd) {
	if errors.Is(err, notes.ErrEmptyField) {
		m.alert = notes.EmptyFieldAlert
		return m, nil
	}
	m.status = fmt.Sprintf("%s: %v", prefix, err)
	return m, nil
}

func (m *Model) setFilter(f notes.Filter) {
	m.filter = f
	m.cursor = 0
	m.refresh()
	m.status = fmt.Sprintf("Showing %s (%d)", f.Label(), len(m.visible))
}

func (m *Model) refresh() {
	m.visible = m.store.Visible(m.filter)
	m.cursor = clampCursor(m.cursor, len(m.visible))
}

func (m *Model) selectID(id int64) {
	for i, n := range m.visible {
		if n.ID == id {
			m.cursor = i
			return
		}
	}
}

func (m Model) selected() (notes.Note, bool) {
	if len(m.visible) == 0 {
		return notes.Note{}, false
	}
	return m.visible[clampCursor(m.cursor, len(m.visible))], true
}

func cycleFilter(cur notes.Filter, step int) notes.Filter {
	fs := notes.Filters()
	for i, f := range fs {
		if f == cur {
			return fs[wrapIndex(i+step, len(fs))]
		}
	}
	return notes.All
}

func cycleCategory(cur notes.Category, step int) notes.Category {
	cs := notes.Categories()
	for i, c := range cs {
		if c == cur {
			return cs[wrapIndex(i+step, len(cs))]
		}
	}
	return cs[0]
}

func wrapIndex(idx, n int) int {
	if n <= 0 {
		return 0
	}
	idx %= n
	if idx < 0 {
		idx += n
	}
	return idx
}

func clampCursor(cur, n int) int {
	if n <= 0 {
		return 0
	}
	if cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}

func clampWidth(w int) int {
	if w < 20 {
		return 20
	}
	return w
}
