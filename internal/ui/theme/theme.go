package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette, matched to the portal's deep navy look
var (
	Primary   = lipgloss.Color("#2C5AA0") // Portal Blue
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#FFC107") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#EF4444") // Red
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0A2342") // Deep Navy
	BgCard    = lipgloss.Color("#1B3D6B") // Mid Navy
	Border    = lipgloss.Color("#33527E") // Muted Navy
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Accent).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Wrong = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	Dim = lipgloss.NewStyle().
		Foreground(TextDim)
)
