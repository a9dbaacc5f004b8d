package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/rajat/learnhub/internal/ui/theme"
)

// OptionList renders one question's options. Unlike a free-standing
// selector it carries no submission state of its own: the quiz engine
// owns the answer map, this component only draws what it is told.
type OptionList struct {
	Options []string

	// Cursor is the highlighted option for keyboard selection.
	Cursor int

	// Chosen is the recorded answer for this question, -1 when
	// unanswered.
	Chosen int

	// Submitted switches the list into scored rendering, marking the
	// correct option and the learner's wrong pick.
	Submitted bool

	// Correct is the correct option index, only consulted once
	// Submitted is set.
	Correct int
}

var optionLabels = []string{"A", "B", "C", "D", "E", "F", "G", "H"}

// View renders the option list.
func (o OptionList) View() string {
	var s string
	for i, opt := range o.Options {
		label := fmt.Sprintf("%d", i+1)
		if i < len(optionLabels) {
			label = optionLabels[i]
		}

		prefix := "  "
		if i == o.Cursor && !o.Submitted {
			prefix = "▸ "
		}

		marker := ""
		if i == o.Chosen {
			marker = "  ●"
		}

		line := fmt.Sprintf("%s%s)  %s%s", prefix, label, opt, marker)

		switch {
		case o.Submitted && i == o.Correct:
			s += theme.Correct.Render(line+"  ✓") + "\n"
		case o.Submitted && i == o.Chosen && i != o.Correct:
			s += theme.Wrong.Render(line+"  ✗") + "\n"
		case o.Submitted:
			s += theme.Dim.Render(line) + "\n"
		case i == o.Chosen:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(line) + "\n"
		case i == o.Cursor:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += theme.Body.Render(line) + "\n"
		}
	}
	return s
}
