package resources

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

type resourcesLoadedMsg struct {
	Resources []api.Resource
	Err       error
}

// Lister is the slice of the API client this screen needs.
type Lister interface {
	ListResources(ctx context.Context) ([]api.Resource, error)
}

// ResourcesScreen lists study resources with search and a category
// filter.
type ResourcesScreen struct {
	lister Lister

	resources  []api.Resource
	categories []string
	category   int
	search     components.SearchInput
	selected   int
	loaded     bool
	errMsg     string
}

var _ screen.Screen = (*ResourcesScreen)(nil)
var _ screen.KeyHintProvider = (*ResourcesScreen)(nil)

// New creates a new ResourcesScreen.
func New(lister Lister) *ResourcesScreen {
	return &ResourcesScreen{
		lister: lister,
		search: components.NewSearchInput("Search resources..."),
	}
}

func (s *ResourcesScreen) Init() tea.Cmd {
	return func() tea.Msg {
		resources, err := s.lister.ListResources(context.Background())
		return resourcesLoadedMsg{Resources: resources, Err: err}
	}
}

func (s *ResourcesScreen) Title() string {
	return "Resources"
}

func (s *ResourcesScreen) KeyHints() []layout.KeyHint {
	if s.search.Focused() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Apply"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "/", Description: "Search"},
		{Key: "F", Description: "Category"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ResourcesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case resourcesLoadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = "Couldn't load resources."
			return s, nil
		}
		s.resources = msg.Resources
		s.categories = collectCategories(msg.Resources)
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
			if len(s.categories) > 0 {
				s.category = (s.category + 1) % len(s.categories)
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

func (s *ResourcesScreen) filtered() []api.Resource {
	query := strings.ToLower(s.search.Value())
	var out []api.Resource
	for _, r := range s.resources {
		if s.category > 0 && r.Category != s.categories[s.category] {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(r.Title), query) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func (s *ResourcesScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render("\n\n" + s.errMsg)
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading resources...")
	}

	var b strings.Builder
	b.WriteString("\n")

	filterLabel := "All categories"
	if s.category > 0 {
		filterLabel = s.categories[s.category]
	}
	b.WriteString("  " + s.search.View() + "   " +
		lipgloss.NewStyle().Foreground(theme.Secondary).Render("["+filterLabel+"]"))
	b.WriteString("\n\n")

	list := s.filtered()
	if len(list) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render("  No resources match."))
		return b.String()
	}

	for i, r := range list {
		line := fmt.Sprintf("  %s %-38s %s  %s  %s",
			formatIcon(r.Format), r.Title, r.Category, r.Level, r.Size)

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

func formatIcon(format string) string {
	switch strings.ToLower(format) {
	case "video":
		return "▶"
	case "pdf":
		return "▤"
	default:
		return "•"
	}
}

func collectCategories(resources []api.Resource) []string {
	seen := map[string]bool{}
	categories := []string{"All"}
	for _, r := range resources {
		if r.Category != "" && !seen[r.Category] {
			seen[r.Category] = true
			categories = append(categories, r.Category)
		}
	}
	return categories
}
