package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorAccent    = lipgloss.Color("#F59E0B") // Amber
	ColorWarning   = lipgloss.Color("#F59E0B") // Amber
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorMuted     = lipgloss.Color("#6B7280") // Gray
	ColorDimmed    = lipgloss.Color("#374151") // Dark Gray

	ColorText      = lipgloss.Color("#F8FAFC") // Slate 50
	ColorTextMuted = lipgloss.Color("#94A3B8") // Slate 400
)

// Header styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true)
)

// Panel styles
var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDimmed).
			Padding(0, 1)

	FocusedPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary).
				Padding(0, 1)

	PanelTitleStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)
)

// Form styles
var (
	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	FocusedLabelStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true)

	SelectorValueStyle = lipgloss.NewStyle().
				Foreground(ColorText)
)

// Result styles
var (
	ResultStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	SummaryKeyStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	SummaryValueStyle = lipgloss.NewStyle().
				Foreground(ColorText)
)

// Plot styles
var (
	PlotAxisStyle  = lipgloss.NewStyle().Foreground(ColorTextMuted)
	PlotArrowStyle = lipgloss.NewStyle().Foreground(ColorPrimary)
	PlotLabelStyle = lipgloss.NewStyle().Foreground(ColorSecondary)
)

// Footer style
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)
