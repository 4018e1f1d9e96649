package tui

import "github.com/charmbracelet/lipgloss"

// Color palette.
const (
	ColorHeader   = lipgloss.Color("39")
	ColorLabel    = lipgloss.Color("245")
	ColorValue    = lipgloss.Color("255")
	ColorSubtle   = lipgloss.Color("241")
	ColorBorder   = lipgloss.Color("240")
	ColorSelected = lipgloss.Color("57")
	ColorTag      = lipgloss.Color("213")
	ColorError    = lipgloss.Color("196")
)

//nolint:gochecknoglobals // Shared styles are read-only after init.
var (
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader)
	LabelStyle  = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle  = lipgloss.NewStyle().Foreground(ColorValue)
	InfoStyle   = lipgloss.NewStyle().Foreground(ColorSubtle).Italic(true)
	SubtleStyle = lipgloss.NewStyle().Foreground(ColorSubtle)
	TagStyle    = lipgloss.NewStyle().Foreground(ColorTag)
	ErrorStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorError)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	SelectedRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(ColorSelected)

	ButtonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	DisabledButtonStyle = lipgloss.NewStyle().
				Foreground(ColorSubtle).
				Background(lipgloss.Color("236")).
				Padding(0, 1)
)
