package tui

import "github.com/charmbracelet/lipgloss"

// Palette.
const (
	ColorHeader   = lipgloss.Color("12")
	ColorLabel    = lipgloss.Color("245")
	ColorValue    = lipgloss.Color("252")
	ColorAccent   = lipgloss.Color("205")
	ColorCritical = lipgloss.Color("196")
	ColorSubtle   = lipgloss.Color("240")
	ColorSelected = lipgloss.Color("57")
)

// Shared styles.
//
//nolint:gochecknoglobals // Immutable style values shared by all views.
var (
	HeaderStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader)
	LabelStyle    = lipgloss.NewStyle().Foreground(ColorLabel)
	InfoStyle     = lipgloss.NewStyle().Foreground(ColorAccent)
	SubtleStyle   = lipgloss.NewStyle().Foreground(ColorSubtle)
	CriticalStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorCritical)

	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorHeader).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true).
				Padding(0, 1)
	TableSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(ColorSelected)

	ButtonStyle         = lipgloss.NewStyle().Foreground(ColorValue).Padding(0, 1)
	ButtonDisabledStyle = lipgloss.NewStyle().Foreground(ColorSubtle).Faint(true).Padding(0, 1)
	ButtonActiveStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent).Padding(0, 1)

	HelpKeyStyle  = lipgloss.NewStyle().Foreground(ColorAccent)
	HelpDescStyle = lipgloss.NewStyle().Foreground(ColorLabel)
)
