package classes

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/rajat/learnhub/internal/api"
	"github.com/rajat/learnhub/internal/router"
	"github.com/rajat/learnhub/internal/screen"
	"github.com/rajat/learnhub/internal/ui/components"
	"github.com/rajat/learnhub/internal/ui/layout"
	"github.com/rajat/learnhub/internal/ui/theme"
)

type classesLoadedMsg struct {
	Classes []api.Class
	Err     error
}

// Lister is the slice of the API client this screen needs.
type Lister interface {
	ListClasses(ctx context.Context) ([]api.Class, error)
}

// ClassesScreen lists the scheduled classes with search and a
// subject filter.
type ClassesScreen struct {
	lister Lister

	classes  []api.Class
	subjects []string // "All" + distinct subjects, filter cycles through
	subject  int
	search   components.SearchInput
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*ClassesScreen)(nil)
var _ screen.KeyHintProvider = (*ClassesScreen)(nil)

// New creates a new ClassesScreen.
func New(lister Lister) *ClassesScreen {
	return &ClassesScreen{
		lister: lister,
		search: components.NewSearchInput("Search classes..."),
	}
}

func (s *ClassesScreen) Init() tea.Cmd {
	return func() tea.Msg {
		classes, err := s.lister.ListClasses(context.Background())
		return classesLoadedMsg{Classes: classes, Err: err}
	}
}

func (s *ClassesScreen) Title() string {
	return "Classes"
}

func (s *ClassesScreen) KeyHints() []layout.KeyHint {
	if s.search.Focused() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Apply"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "/", Description: "Search"},
		{Key: "F", Description: "Subject"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ClassesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case classesLoadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = "Couldn't load the class schedule."
			return s, nil
		}
		s.classes = msg.Classes
		s.subjects = collectSubjects(msg.Classes)
		return s, nil

	case tea.KeyPressMsg:
		if s.search.Focused() {
			switch msg.String() {
			case "enter":
				s.search.Blur()
				s.selected = 0
				return s, nil
			case "esc":
				s.search.Reset()
				s.search.Blur()
				return s, nil
			}
			var cmd tea.Cmd
			s.search, cmd = s.search.Update(msg)
			s.selected = 0
			return s, cmd
		}

		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "/":
			return s, s.search.Focus()
		case "f":
			if len(s.subjects) > 0 {
				s.subject = (s.subject + 1) % len(s.subjects)
				s.selected = 0
			}
			return s, nil
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.filtered())-1 {
				s.selected++
			}
			return s, nil
		}
	}
	return s, nil
}

// filtered applies the subject filter and the search query.
func (s *ClassesScreen) filtered() []api.Class {
	query := strings.ToLower(s.search.Value())
	var out []api.Class
	for _, c := range s.classes {
		if s.subject > 0 && c.Subject != s.subjects[s.subject] {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(c.Title), query) &&
			!strings.Contains(strings.ToLower(c.Track), query) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func (s *ClassesScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render("\n\n" + s.errMsg)
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading classes...")
	}

	var b strings.Builder
	b.WriteString("\n")

	filterLabel := "All subjects"
	if s.subject > 0 {
		filterLabel = s.subjects[s.subject]
	}
	b.WriteString("  " + s.search.View() + "   " +
		lipgloss.NewStyle().Foreground(theme.Secondary).Render("["+filterLabel+"]"))
	b.WriteString("\n\n")

	list := s.filtered()
	if len(list) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render("  No classes match."))
		return b.String()
	}

	for i, c := range list {
		mode := c.Mode
		if mode == "Live" {
			mode = lipgloss.NewStyle().Foreground(theme.Success).Render("● Live")
		}
		line := fmt.Sprintf("  %s  %s-%s  %s  (%s)  %s  %d seats",
			c.Date, c.Start, c.End, c.Title, c.Subject, mode, c.Seats)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
			line = ">" + line[1:]
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

func collectSubjects(classes []api.Class) []string {
	seen := map[string]bool{}
	subjects := []string{"All"}
	for _, c := range classes {
		if c.Subject != "" && !seen[c.Subject] {
			seen[c.Subject] = true
			subjects = append(subjects, c.Subject)
		}
	}
	return subjects
}
