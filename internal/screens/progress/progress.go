package progress

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/rajat/learnhub/internal/api"
	"github.com/rajat/learnhub/internal/bus"
	"github.com/rajat/learnhub/internal/identity"
	"github.com/rajat/learnhub/internal/router"
	"github.com/rajat/learnhub/internal/screen"
	"github.com/rajat/learnhub/internal/store"
	"github.com/rajat/learnhub/internal/ui/components"
	"github.com/rajat/learnhub/internal/ui/layout"
	"github.com/rajat/learnhub/internal/ui/theme"
)

type progressLoadedMsg struct {
	Summary  *api.ProgressSummary
	Attempts []store.AttemptRecord
	Err      error
}

// progressUpdatedMsg arrives when another screen reports a new quiz
// result; it triggers a reload.
type progressUpdatedMsg struct{}

// ProgressFetcher is the slice of the API client this screen needs.
type ProgressFetcher interface {
	FetchProgress(ctx context.Context, userID string) (*api.ProgressSummary, error)
}

// ProgressScreen shows the student's KPIs, per-subject completion and
// recent quiz attempts. It refreshes itself whenever a quiz result is
// reported elsewhere in the app.
type ProgressScreen struct {
	fetcher  ProgressFetcher
	attempts store.AttemptRepo
	student  *identity.Student
	updates  <-chan struct{}

	summary *api.ProgressSummary
	recent  []store.AttemptRecord
	loaded  bool
	errMsg  string
}

var _ screen.Screen = (*ProgressScreen)(nil)
var _ screen.KeyHintProvider = (*ProgressScreen)(nil)

// New creates a new ProgressScreen. events may be nil in tests; the
// screen then simply never auto-refreshes.
func New(fetcher ProgressFetcher, attempts store.AttemptRepo, student *identity.Student, events *bus.Bus) *ProgressScreen {
	s := &ProgressScreen{
		fetcher:  fetcher,
		attempts: attempts,
		student:  student,
	}
	if events != nil {
		s.updates = events.Subscribe()
	}
	return s
}

func (s *ProgressScreen) Init() tea.Cmd {
	return tea.Batch(s.load(), s.waitForUpdate())
}

func (s *ProgressScreen) Title() string {
	return "My Progress"
}

func (s *ProgressScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "R", Description: "Refresh"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ProgressScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case progressLoadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = "Couldn't load progress right now."
		} else {
			s.errMsg = ""
			s.summary = msg.Summary
		}
		s.recent = msg.Attempts
		return s, nil

	case progressUpdatedMsg:
		return s, tea.Batch(s.load(), s.waitForUpdate())

	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "r":
			return s, s.load()
		}
	}
	return s, nil
}

// load fetches the remote summary and local attempt history. Local
// history is best-effort; remote failures surface as errMsg only when
// a student is logged in.
func (s *ProgressScreen) load() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		var recent []store.AttemptRecord
		if s.attempts != nil {
			recent, _ = s.attempts.Recent(ctx, 10)
		}

		if s.student == nil || s.fetcher == nil {
			return progressLoadedMsg{Attempts: recent}
		}

		summary, err := s.fetcher.FetchProgress(ctx, s.student.ID)
		if err != nil {
			return progressLoadedMsg{Attempts: recent, Err: err}
		}
		return progressLoadedMsg{Summary: summary, Attempts: recent}
	}
}

func (s *ProgressScreen) waitForUpdate() tea.Cmd {
	if s.updates == nil {
		return nil
	}
	ch := s.updates
	return func() tea.Msg {
		<-ch
		return progressUpdatedMsg{}
	}
}

func (s *ProgressScreen) View(width, height int) string {
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading progress...")
	}

	var sections []string

	if s.errMsg != "" {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Error).Render("  "+s.errMsg))
	}

	if s.summary != nil {
		sections = append(sections, renderKPIs(s.summary.KPIs))
		if len(s.summary.Subjects) > 0 {
			sections = append(sections, renderSubjects(s.summary.Subjects))
		}
		if len(s.summary.Badges) > 0 {
			sections = append(sections, renderBadges(s.summary.Badges))
		}
	} else if s.student == nil {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.TextDim).Italic(true).
			Render("  Log in to sync progress with the portal."))
	}

	sections = append(sections, renderRecent(s.recent))

	content := strings.Join(sections, "\n\n")
	return lipgloss.NewStyle().Width(width).Render("\n" + content)
}

func renderKPIs(k api.ProgressKPIs) string {
	cell := func(label, value string) string {
		return lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1).
			Render(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(value) +
				"\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Render(label))
	}

	hours := k.StudyMinutes / 60
	mins := k.StudyMinutes % 60

	return lipgloss.JoinHorizontal(lipgloss.Top,
		cell("Study time", fmt.Sprintf("%dh %02dm", hours, mins)),
		cell("Accuracy", fmt.Sprintf("%d%%", k.Accuracy)),
		cell("Streak", fmt.Sprintf("%d days", k.Streak)),
		cell("Rank", fmt.Sprintf("#%d", k.Rank)),
		cell("Completion", fmt.Sprintf("%d%%", k.Completion)),
	)
}

func renderSubjects(subjects []api.SubjectProgress) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("  Subjects"))
	b.WriteString("\n")
	for _, sub := range subjects {
		bar := components.NewProgressBar(sub.Name, float64(sub.Progress)/100, true, 30)
		b.WriteString("  " + bar.View() + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderBadges(badges []string) string {
	return lipgloss.NewStyle().Foreground(theme.Secondary).
		Render("  Badges: " + strings.Join(badges, "  "))
}

func renderRecent(recent []store.AttemptRecord) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("  Recent quizzes"))
	b.WriteString("\n")

	if len(recent) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render("  No attempts yet."))
		return b.String()
	}

	for _, rec := range recent {
		synced := " "
		if !rec.Reported {
			synced = lipgloss.NewStyle().Foreground(theme.TextDim).Render("(local)")
		}
		line := fmt.Sprintf("  %s  %s  %d/%d  %d%%  %s",
			rec.TakenAt.Format("Jan 02 15:04"), rec.QuizTitle,
			rec.Correct, rec.Total, rec.Accuracy, synced)
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
