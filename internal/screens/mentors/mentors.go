package mentors

import (
	"context"
	"fmt"
	"sort"
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

type mentorsLoadedMsg struct {
	Mentors []api.Mentor
	Err     error
}

type sortMode int

const (
	sortByRating sortMode = iota
	sortByPrice
	sortBySessions
)

func (m sortMode) label() string {
	switch m {
	case sortByPrice:
		return "price"
	case sortBySessions:
		return "sessions"
	default:
		return "rating"
	}
}

// Lister is the slice of the API client this screen needs.
type Lister interface {
	ListMentors(ctx context.Context) ([]api.Mentor, error)
}

// MentorsScreen lists mentor profiles with search, a city filter and
// sortable columns.
type MentorsScreen struct {
	lister Lister

	mentors  []api.Mentor
	cities   []string
	city     int
	sort     sortMode
	search   components.SearchInput
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*MentorsScreen)(nil)
var _ screen.KeyHintProvider = (*MentorsScreen)(nil)

// New creates a new MentorsScreen.
func New(lister Lister) *MentorsScreen {
	return &MentorsScreen{
		lister: lister,
		search: components.NewSearchInput("Search mentors..."),
	}
}

func (s *MentorsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		mentors, err := s.lister.ListMentors(context.Background())
		return mentorsLoadedMsg{Mentors: mentors, Err: err}
	}
}

func (s *MentorsScreen) Title() string {
	return "Mentors"
}

func (s *MentorsScreen) KeyHints() []layout.KeyHint {
	if s.search.Focused() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Apply"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "/", Description: "Search"},
		{Key: "F", Description: "City"},
		{Key: "O", Description: "Sort"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *MentorsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case mentorsLoadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = "Couldn't load the mentor directory."
			return s, nil
		}
		s.mentors = msg.Mentors
		s.cities = collectCities(msg.Mentors)
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
			if len(s.cities) > 0 {
				s.city = (s.city + 1) % len(s.cities)
				s.selected = 0
			}
			return s, nil
		case "o":
			s.sort = (s.sort + 1) % 3
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

// filtered applies the city filter and search query, then sorts.
func (s *MentorsScreen) filtered() []api.Mentor {
	query := strings.ToLower(s.search.Value())
	var out []api.Mentor
	for _, m := range s.mentors {
		if s.city > 0 && m.City != s.cities[s.city] {
			continue
		}
		if query != "" && !matchesMentor(m, query) {
			continue
		}
		out = append(out, m)
	}

	sort.SliceStable(out, func(i, j int) bool {
		switch s.sort {
		case sortByPrice:
			return out[i].Price < out[j].Price
		case sortBySessions:
			return out[i].Sessions > out[j].Sessions
		default:
			return out[i].Rating > out[j].Rating
		}
	})
	return out
}

func matchesMentor(m api.Mentor, query string) bool {
	if strings.Contains(strings.ToLower(m.Name), query) {
		return true
	}
	for _, sub := range m.Subjects {
		if strings.Contains(strings.ToLower(sub), query) {
			return true
		}
	}
	return false
}

func (s *MentorsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render("\n\n" + s.errMsg)
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading mentors...")
	}

	var b strings.Builder
	b.WriteString("\n")

	filterLabel := "All cities"
	if s.city > 0 {
		filterLabel = s.cities[s.city]
	}
	b.WriteString("  " + s.search.View() + "   " +
		lipgloss.NewStyle().Foreground(theme.Secondary).
			Render(fmt.Sprintf("[%s] sort: %s", filterLabel, s.sort.label())))
	b.WriteString("\n\n")

	list := s.filtered()
	if len(list) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render("  No mentors match."))
		return b.String()
	}

	for i, m := range list {
		line := fmt.Sprintf("  %-20s ★ %.1f  %s  %d sessions  ₹%d/hr  %s",
			m.Name, m.Rating, m.City, m.Sessions, m.Price,
			strings.Join(m.Subjects, ", "))

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

func collectCities(mentors []api.Mentor) []string {
	seen := map[string]bool{}
	cities := []string{"All"}
	for _, m := range mentors {
		if m.City != "" && !seen[m.City] {
			seen[m.City] = true
			cities = append(cities, m.City)
		}
	}
	return cities
}
