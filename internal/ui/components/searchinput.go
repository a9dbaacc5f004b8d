package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rajat/learnhub/internal/ui/theme"
)

// SearchInput wraps bubbles/textinput as a list-filter box. The
// browse screens keep one unfocused until the user hits "/".
type SearchInput struct {
	Model   textinput.Model
	focused bool
}

// NewSearchInput creates a new styled search input.
func NewSearchInput(placeholder string) SearchInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 40
	return SearchInput{Model: ti}
}

// Focus starts capturing keystrokes.
func (s *SearchInput) Focus() tea.Cmd {
	s.focused = true
	return s.Model.Focus()
}

// Blur stops capturing keystrokes.
func (s *SearchInput) Blur() {
	s.focused = false
	s.Model.Blur()
}

// Focused reports whether the input is capturing keystrokes.
func (s SearchInput) Focused() bool {
	return s.focused
}

// Update handles messages while focused.
func (s SearchInput) Update(msg tea.Msg) (SearchInput, tea.Cmd) {
	if !s.focused {
		return s, nil
	}
	var cmd tea.Cmd
	s.Model, cmd = s.Model.Update(msg)
	return s, cmd
}

// View renders the search input with a filter glyph.
func (s SearchInput) View() string {
	glyph := lipgloss.NewStyle().Foreground(theme.TextDim).Render("⌕ ")
	return glyph + s.Model.View()
}

// Value returns the current filter text.
func (s SearchInput) Value() string {
	return s.Model.Value()
}

// Reset clears the filter text.
func (s *SearchInput) Reset() {
	s.Model.SetValue("")
}
