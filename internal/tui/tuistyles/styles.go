package tuistyles

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorPrimary   = lipgloss.Color("86")  // cyan
	ColorAccent    = lipgloss.Color("212") // pink
	ColorSuccess   = lipgloss.Color("42")  // green
	ColorDanger    = lipgloss.Color("196") // red
	ColorWarning   = lipgloss.Color("214") // orange
	ColorMuted     = lipgloss.Color("241") // gray
	ColorForeground = lipgloss.Color("252")
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	StatusKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	GoalLabelStyle = lipgloss.NewStyle().
			Foreground(ColorForeground)

	GoalValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorForeground)

	SliderTrackStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	SliderThumbStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary)

	ReachableStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	UnreachableStyle = lipgloss.NewStyle().
				Foreground(ColorDanger)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorDanger)
)
