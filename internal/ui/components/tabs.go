package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/rajat/learnhub/internal/ui/theme"
)

// Tabs renders a horizontal switcher, used for picking the active
// quiz. Selection is driven by the owning screen.
type Tabs struct {
	Labels []string
	Active int
}

// View renders the tab row.
func (t Tabs) View() string {
	if len(t.Labels) == 0 {
		return ""
	}

	parts := make([]string, 0, len(t.Labels))
	for i, label := range t.Labels {
		if i == t.Active {
			parts = append(parts, lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Accent).
				Bold(true).
				Padding(0, 1).
				Render(label))
		} else {
			parts = append(parts, lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Padding(0, 1).
				Render(label))
		}
	}
	return strings.Join(parts, " ")
}
