package calendar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
)

// markerWidth is the rune width of one marker cell: the day column plus the
// gap to the next one, enough for the capped dot count.
const markerWidth = maxMarkers

// Options controls the styling of the rendered calendar.
type Options struct {
	HeaderStyle   lipgloss.Style
	EmptyStyle    lipgloss.Style
	BusyStyle     lipgloss.Style
	TodayStyle    lipgloss.Style
	SelectedStyle lipgloss.Style
	ShowHeader    bool
}

// DefaultOptions returns the styling used for calendar rendering.
func DefaultOptions() Options {
	return Options{
		HeaderStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
		EmptyStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		BusyStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
		TodayStyle:    lipgloss.NewStyle().Underline(true),
		SelectedStyle: lipgloss.NewStyle().Background(lipgloss.Color("212")).Foreground(lipgloss.Color("0")),
		ShowHeader:    true,
	}
}

// Render produces a multi-line month block from grid cells: a weekday header
// and 7-column week rows, with markers under days that have appointments.
func Render(m Month, cells []Cell, opts Options) string {
	var lines []string
	if opts.ShowHeader {
		lines = append(lines, opts.HeaderStyle.Render("Su Mo Tu We Th Fr Sa"))
	}

	rows := (len(cells) + 6) / 7
	for row := 0; row < rows; row++ {
		var day, marks []string
		for col := 0; col < 7; col++ {
			i := row*7 + col
			if i >= len(cells) || cells[i].Day == 0 {
				day = append(day, opts.EmptyStyle.Render("  "))
				marks = append(marks, "   ")
				continue
			}
			day = append(day, renderDay(cells[i], opts))
			marks = append(marks, MarkerStrip(cells[i]))
		}
		lines = append(lines, strings.Join(day, " "))
		if rowHasMarkers(cells, row) {
			lines = append(lines, strings.TrimRight(strings.Join(marks, ""), " "))
		}
	}

	return strings.Join(lines, "\n")
}

func renderDay(c Cell, opts Options) string {
	style := opts.EmptyStyle
	if c.HasAppointments {
		style = opts.BusyStyle
	}
	if c.IsToday {
		style = style.Inherit(opts.TodayStyle)
	}
	if c.IsSelected {
		style = style.Inherit(opts.SelectedStyle)
	}
	return style.Render(fmt.Sprintf("%2d", c.Day))
}

// MarkerStrip builds one three-column marker cell, dot per appointment.
// The dots are multi-byte runes, so the strip is assembled by rune count
// and padded to its display width, never byte-sliced.
func MarkerStrip(c Cell) string {
	return strings.Repeat("·", c.Markers) + strings.Repeat(" ", markerWidth-c.Markers)
}

func rowHasMarkers(cells []Cell, row int) bool {
	for col := 0; col < 7; col++ {
		i := row*7 + col
		if i < len(cells) && cells[i].Markers > 0 {
			return true
		}
	}
	return false
}

