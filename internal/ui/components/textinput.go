package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/gopherlings/internal/ui/theme"
)

// SearchInput wraps bubbles/textinput as a one-line search prompt.
type SearchInput struct {
	Model textinput.Model
}

// NewSearchInput creates a focused search prompt.
func NewSearchInput(placeholder string, maxWidth int) SearchInput {
	ti := textinput.New()
	ti.Prompt = "search: "
	ti.Placeholder = placeholder
	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}
	ti.Focus()

	return SearchInput{Model: ti}
}

// Update handles messages.
func (s SearchInput) Update(msg tea.Msg) (SearchInput, tea.Cmd) {
	var cmd tea.Cmd
	s.Model, cmd = s.Model.Update(msg)
	return s, cmd
}

// View renders the search prompt.
func (s SearchInput) View() string {
	return theme.Body.Render(s.Model.View())
}

// Value returns the current query.
func (s SearchInput) Value() string {
	return s.Model.Value()
}
