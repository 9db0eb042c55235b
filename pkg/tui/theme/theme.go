// Package theme centralizes Lip Gloss styles for the Bubble Tea UI.
package theme

import (
	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"

	"tableflip.dev/citas/pkg/appointment"
	"tableflip.dev/citas/pkg/calendar"
)

// Theme groups the styles used across the UI.
type Theme struct {
	Header    lipgloss.Style
	Tally     lipgloss.Style
	DayTitle  lipgloss.Style
	Row       lipgloss.Style
	RowCursor lipgloss.Style
	Muted     lipgloss.Style
	Status    lipgloss.Style
	Error     lipgloss.Style
	Panel     lipgloss.Style
	Help      lipgloss.Style

	Scheduled lipgloss.Style
	Completed lipgloss.Style
	Cancelled lipgloss.Style

	Calendar calendar.Options
}

// studio pink, the accent everything else derives from
const accentHex = "#f26bb5"

// Default builds the built-in theme. The accent is lightened or darkened
// with go-colorful depending on the terminal background.
func Default() Theme {
	accent := accentHex
	if base, err := colorful.Hex(accentHex); err == nil {
		h, s, l := base.Hsl()
		if termenv.HasDarkBackground() {
			accent = colorful.Hsl(h, s, l+0.12).Clamped().Hex()
		} else {
			accent = colorful.Hsl(h, s, l-0.18).Clamped().Hex()
		}
	}

	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	cal := calendar.DefaultOptions()
	cal.SelectedStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(accent)).
		Foreground(lipgloss.Color("0"))

	return Theme{
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color(accent)).Bold(true),
		Tally:     muted,
		DayTitle:  lipgloss.NewStyle().Bold(true).Underline(true),
		Row:       lipgloss.NewStyle(),
		RowCursor: lipgloss.NewStyle().Foreground(lipgloss.Color(accent)).Bold(true),
		Muted:     muted,
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Panel:     lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(1, 2),
		Help:      lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245")),

		Scheduled: lipgloss.NewStyle().Foreground(lipgloss.Color(accent)),
		Completed: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		Cancelled: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),

		Calendar: cal,
	}
}

// ForStatus returns the style for a status tag.
func (t Theme) ForStatus(s appointment.Status) lipgloss.Style {
	switch s {
	case appointment.Completed:
		return t.Completed
	case appointment.Cancelled:
		return t.Cancelled
	default:
		return t.Scheduled
	}
}
