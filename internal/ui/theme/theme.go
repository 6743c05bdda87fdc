package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette, close to the Go brand colors
var (
	Primary   = lipgloss.Color("#00ADD8") // Gopher Blue
	Secondary = lipgloss.Color("#5DC9E2") // Light Blue
	Accent    = lipgloss.Color("#FDDD00") // Yellow
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Dim = lipgloss.NewStyle().
		Foreground(TextDim)

	Hint = lipgloss.NewStyle().
		Foreground(Secondary).
		Italic(true)

	Path = lipgloss.NewStyle().
		Foreground(Accent).
		Underline(true)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Done = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Pending = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Foreground(Success)

	ProgressEmpty = lipgloss.NewStyle().
			Foreground(Border)

	Key = lipgloss.NewStyle().
		Foreground(Text).
		Bold(true)
)
