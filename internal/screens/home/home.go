package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/rajat/learnhub/internal/api"
	"github.com/rajat/learnhub/internal/bus"
	"github.com/rajat/learnhub/internal/identity"
	"github.com/rajat/learnhub/internal/report"
	"github.com/rajat/learnhub/internal/router"
	"github.com/rajat/learnhub/internal/screen"
	"github.com/rajat/learnhub/internal/screens/classes"
	"github.com/rajat/learnhub/internal/screens/mentors"
	"github.com/rajat/learnhub/internal/screens/progress"
	"github.com/rajat/learnhub/internal/screens/quizzes"
	"github.com/rajat/learnhub/internal/screens/resources"
	"github.com/rajat/learnhub/internal/store"
	"github.com/rajat/learnhub/internal/ui/components"
	"github.com/rajat/learnhub/internal/ui/theme"
)

// HomeScreen is the portal's landing screen: greeting, a snapshot of
// recent practice, and the navigation menu.
type HomeScreen struct {
	menu        components.Menu
	studentName string
	attempts    int
	avgAccuracy int
	lastQuiz    string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. student may be nil when nobody is
// logged in; the quiz flow still works, results just stay local.
func New(client *api.Client, reporter *report.Reporter, attemptRepo store.AttemptRepo, student *identity.Student, events *bus.Bus) *HomeScreen {
	var recent []store.AttemptRecord
	if attemptRepo != nil {
		recent, _ = attemptRepo.Recent(context.Background(), 20)
	}

	var attempts, accSum int
	var lastQuiz string
	for i, rec := range recent {
		if i == 0 {
			lastQuiz = rec.QuizTitle
		}
		attempts++
		accSum += rec.Accuracy
	}
	avgAccuracy := 0
	if attempts > 0 {
		avgAccuracy = accSum / attempts
	}

	items := []components.MenuItem{
		{Label: "PRACTICE QUIZZES", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quizzes.New(client, reporter)}
			}
		}},
		{Label: "MY PROGRESS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: progress.New(client, attemptRepo, student, events)}
			}
		}},
		{Label: "CLASSES", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: classes.New(client)}
			}
		}},
		{Label: "MENTORS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: mentors.New(client)}
			}
		}},
		{Label: "RESOURCES", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: resources.New(client)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	var name string
	if student != nil {
		name = student.Name
	}

	return &HomeScreen{
		menu:        components.NewMenu(items),
		studentName: name,
		attempts:    attempts,
		avgAccuracy: avgAccuracy,
		lastQuiz:    lastQuiz,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, renderGreeting(h.studentName, width))
	sections = append(sections, renderSnapshot(h.attempts, h.avgAccuracy, h.lastQuiz, width))
	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func renderGreeting(name string, width int) string {
	greeting := "Welcome to Learnhub"
	if name != "" {
		greeting = fmt.Sprintf("Welcome back, %s", name)
	}
	title := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Render(greeting)
	sub := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Your study portal, in the terminal")
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, title) + "\n" +
		lipgloss.PlaceHorizontal(width, lipgloss.Center, sub)
}

func renderSnapshot(attempts, avgAccuracy int, lastQuiz string, width int) string {
	var line string
	if attempts == 0 {
		line = "No quiz attempts yet. Pick a quiz and get started!"
	} else {
		line = fmt.Sprintf("%d recent attempts  ·  %d%% avg accuracy", attempts, avgAccuracy)
		if lastQuiz != "" {
			line += "  ·  last: " + lastQuiz
		}
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Foreground(theme.Text).
		Padding(0, 2).
		Render(line)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, box)
}
