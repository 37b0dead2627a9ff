package tui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	colorPurple = lipgloss.Color("#7D56F4")
	colorGray   = lipgloss.Color("#999999")
	colorDim    = lipgloss.Color("#666666")
	colorWhite  = lipgloss.Color("#FFFFFF")
	colorRed    = lipgloss.Color("#FF5555")
	colorGreen  = lipgloss.Color("#55FF55")
	colorYellow = lipgloss.Color("#FFFF55")
	colorCyan   = lipgloss.Color("#55FFFF")
)

// Styles holds every style used for prompts and result output.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Header   lipgloss.Style
	Message  lipgloss.Style
	Command  lipgloss.Style
	Hint     lipgloss.Style
	Success  lipgloss.Style
	Failure  lipgloss.Style
	Warning  lipgloss.Style

	prompt   lipgloss.Style
	answer   lipgloss.Style
	cursor   lipgloss.Style
	choice   lipgloss.Style
	selected lipgloss.Style
	label    lipgloss.Style
	err      lipgloss.Style
}

// NewStyles builds styles for output written to w. noColor forces plain text.
func NewStyles(w io.Writer, noColor bool) *Styles {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Styles{
		Title:    r.NewStyle().Bold(true).Foreground(colorPurple),
		Subtitle: r.NewStyle().Foreground(colorCyan),
		Header:   r.NewStyle().Bold(true).Foreground(colorYellow),
		Message:  r.NewStyle().Foreground(colorWhite),
		Command:  r.NewStyle().Foreground(colorGreen),
		Hint:     r.NewStyle().Foreground(colorCyan),
		Success:  r.NewStyle().Bold(true).Foreground(colorGreen),
		Failure:  r.NewStyle().Bold(true).Foreground(colorRed),
		Warning:  r.NewStyle().Foreground(colorYellow),

		prompt:   r.NewStyle().Bold(true),
		answer:   r.NewStyle().Foreground(colorPurple),
		cursor:   r.NewStyle().Foreground(colorPurple).Bold(true),
		choice:   r.NewStyle().Foreground(colorGray),
		selected: r.NewStyle().Foreground(colorWhite),
		label:    r.NewStyle().Foreground(colorDim),
		err:      r.NewStyle().Foreground(colorRed),
	}
}
