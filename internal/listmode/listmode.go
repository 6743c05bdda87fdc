// Package listmode is the interactive exercise browser entered from watch
// mode with `l`. It can filter and search the exercise list, reset an
// exercise, or continue watching at another exercise.
package listmode

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/gopherlings/internal/curriculum"
	"github.com/abhisek/gopherlings/internal/ui/components"
	"github.com/abhisek/gopherlings/internal/ui/layout"
	"github.com/abhisek/gopherlings/internal/ui/theme"
)

// Filter restricts the listed exercises by state.
type Filter int

const (
	FilterNone Filter = iota
	FilterDone
	FilterPending
)

// Resetter restores an exercise file to its starting content.
type Resetter interface {
	Reset(ctx context.Context, ex curriculum.Exercise) error
}

// chrome is the number of lines around the table: title, progress,
// footer, message and the blank lines between them.
const chrome = 9

// Model is the list mode Bubble Tea model.
type Model struct {
	ctx      context.Context
	cur      *curriculum.Curriculum
	resetter Resetter

	// rows holds curriculum indices matching the filter and query.
	rows     []int
	selected int
	offset   int

	filter    Filter
	query     string
	searching bool
	search    components.SearchInput
	message   string

	width  int
	height int
	err    error
}

// New creates the list model with the current exercise selected.
func New(ctx context.Context, cur *curriculum.Curriculum, resetter Resetter) Model {
	m := Model{ctx: ctx, cur: cur, resetter: resetter}
	m.refresh(cur.CurrentIndex())
	return m
}

// Run shows list mode until the user leaves it.
func Run(ctx context.Context, cur *curriculum.Curriculum, resetter Resetter) error {
	p := tea.NewProgram(New(ctx, cur, resetter), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run list: %w", err)
	}
	if m, ok := final.(Model); ok && m.err != nil {
		return m.err
	}
	return nil
}

// Selected returns the curriculum index of the selected row.
func (m Model) Selected() (int, bool) {
	if len(m.rows) == 0 {
		return 0, false
	}
	return m.rows[m.selected], true
}

// Err returns the error that ended list mode, if any.
func (m Model) Err() error { return m.err }

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.scroll()
		return m, nil

	case tea.KeyPressMsg:
		if m.searching {
			return m.updateSearch(msg)
		}

		m.message = ""
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "j", "down":
			m.move(1)
		case "k", "up":
			m.move(-1)
		case "g", "home":
			m.selected = 0
		case "G", "end":
			m.selected = max(len(m.rows)-1, 0)
		case "d":
			m.toggle(FilterDone)
		case "p":
			m.toggle(FilterPending)
		case "s", "/":
			m.searching = true
			m.search = components.NewSearchInput("exercise name", 64)
			m.search.Model.SetValue(m.query)
		case "r":
			return m.resetSelected()
		case "c", "enter":
			return m.continueAtSelected()
		}
		m.scroll()
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
	case "esc":
		m.searching = false
		m.query = ""
		m.reselect()
	default:
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.query = m.search.Value()
		m.reselect()
		return m, cmd
	}
	return m, nil
}

func (m *Model) move(delta int) {
	if len(m.rows) == 0 {
		return
	}
	m.selected = min(max(m.selected+delta, 0), len(m.rows)-1)
}

func (m *Model) toggle(f Filter) {
	if m.filter == f {
		m.filter = FilterNone
		m.message = "Showing all exercises"
	} else {
		m.filter = f
		if f == FilterDone {
			m.message = "Showing only done exercises"
		} else {
			m.message = "Showing only pending exercises"
		}
	}
	m.reselect()
}

func (m Model) resetSelected() (tea.Model, tea.Cmd) {
	i, ok := m.Selected()
	if !ok {
		m.message = "No exercise selected"
		return m, nil
	}

	ex := m.cur.Exercise(i)
	if err := m.cur.SetPending(i); err != nil {
		m.err = err
		return m, tea.Quit
	}
	if err := m.resetter.Reset(m.ctx, ex); err != nil {
		m.err = fmt.Errorf("reset %s: %w", ex.Name, err)
		return m, tea.Quit
	}

	m.reselect()
	m.message = fmt.Sprintf("The exercise `%s` has been reset", ex.Name)
	return m, nil
}

func (m Model) continueAtSelected() (tea.Model, tea.Cmd) {
	i, ok := m.Selected()
	if !ok {
		m.message = "No exercise selected"
		return m, nil
	}
	if err := m.cur.SetCurrent(i); err != nil {
		m.err = err
	}
	return m, tea.Quit
}

// reselect rebuilds the rows and keeps the selected exercise if it is
// still listed.
func (m *Model) reselect() {
	want, ok := m.Selected()
	if !ok {
		want = m.cur.CurrentIndex()
	}
	m.refresh(want)
}

func (m *Model) refresh(want int) {
	query := strings.ToLower(m.query)

	m.rows = nil
	for i, ex := range m.cur.Exercises() {
		switch {
		case m.filter == FilterDone && !ex.Done,
			m.filter == FilterPending && ex.Done,
			query != "" && !strings.Contains(strings.ToLower(ex.Name), query):
			continue
		}
		m.rows = append(m.rows, i)
	}

	m.selected = 0
	for pos, i := range m.rows {
		if i >= want {
			m.selected = pos
			break
		}
		m.selected = pos
	}
	m.scroll()
}

// scroll keeps the selected row inside the visible window.
func (m *Model) scroll() {
	page := m.page()
	if page <= 0 {
		m.offset = 0
		return
	}
	if m.selected < m.offset {
		m.offset = m.selected
	}
	if m.selected >= m.offset+page {
		m.offset = m.selected - page + 1
	}
}

func (m Model) page() int {
	if m.height == 0 {
		return 0
	}
	return max(m.height-chrome, 1)
}

func (m Model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

func (m Model) render() string {
	width := layout.ClampWidth(m.width)

	var footer string
	if m.searching {
		footer = m.search.View()
	} else {
		footer = layout.RenderFooter(hints(m.filter))
	}

	var message string
	if m.message != "" {
		message = theme.Hint.Render(m.message)
	}

	return layout.RenderFrame(
		theme.Title.Render("Exercises"),
		m.table(),
		components.NewProgressBar(m.cur.DoneCount(), m.cur.Len(), width).View(),
		footer,
		message,
	)
}

func (m Model) table() string {
	if len(m.rows) == 0 {
		return theme.Dim.Render("No exercises match.")
	}

	nameWidth := len("Name")
	for _, i := range m.rows {
		nameWidth = max(nameWidth, len(m.cur.Exercise(i).Name))
	}

	rows := m.rows[m.offset:]
	if page := m.page(); page > 0 && len(rows) > page {
		rows = rows[:page]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "  Current State    %-*s Path", nameWidth, "Name")
	for n, i := range rows {
		ex := m.cur.Exercise(i)

		cursor := "  "
		if m.offset+n == m.selected {
			cursor = theme.Selected.Render("> ")
		}
		current := "       "
		if i == m.cur.CurrentIndex() {
			current = theme.Selected.Render(">>>>>>>")
		}
		state := theme.Pending.Render("PENDING")
		if ex.Done {
			state = theme.Done.Render("DONE   ")
		}

		line := fmt.Sprintf("%s%s %s  %-*s %s", cursor, current, state, nameWidth, ex.Name, theme.Path.Render(ex.Path))
		b.WriteString("\n" + line)
	}
	return b.String()
}

func hints(f Filter) []layout.KeyHint {
	done, pending := "done", "pending"
	switch f {
	case FilterDone:
		done = "all"
	case FilterPending:
		pending = "all"
	}
	return []layout.KeyHint{
		{Key: "↓/j ↑/k home/g end/G", Description: "jump"},
		{Key: "s", Description: "search"},
		{Key: "d", Description: done},
		{Key: "p", Description: pending},
		{Key: "r", Description: "reset"},
		{Key: "c", Description: "continue at"},
		{Key: "q", Description: "quit"},
	}
}
