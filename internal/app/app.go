package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rajat/learnhub/internal/api"
	"github.com/rajat/learnhub/internal/bus"
	"github.com/rajat/learnhub/internal/identity"
	"github.com/rajat/learnhub/internal/report"
	"github.com/rajat/learnhub/internal/router"
	"github.com/rajat/learnhub/internal/screen"
	"github.com/rajat/learnhub/internal/screens/home"
	"github.com/rajat/learnhub/internal/store"
	"github.com/rajat/learnhub/internal/ui/layout"
)

// Options carries everything the root model needs, wired up in cmd.
type Options struct {
	Client      *api.Client
	Reporter    *report.Reporter
	AttemptRepo store.AttemptRepo
	Student     *identity.Student // nil when not logged in
	Events      *bus.Bus
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router      *router.Router
	studentName string
	width       int
	height      int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.Client, opts.Reporter, opts.AttemptRepo, opts.Student, opts.Events)
	var name string
	if opts.Student != nil {
		name = opts.Student.Name
	}
	return AppModel{
		router:      router.New(homeScreen),
		studentName: name,
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.studentName, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// footerHints asks the active screen for its hints, falling back to
// generic navigation keys.
func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if provider, ok := active.(screen.KeyHintProvider); ok {
		hints := provider.KeyHints()
		return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
