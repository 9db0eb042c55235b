// Package calendar computes the renderable month grid and per-day
// appointment occupancy.
package calendar

import (
	"fmt"
	"time"

	"tableflip.dev/citas/pkg/appointment"
)

// maxMarkers caps the per-day occupancy markers regardless of how many
// appointments exist that day.
const maxMarkers = 3

// Month identifies a displayed year and month.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the month containing t.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// Prev moves one month back, rolling the year when leaving January.
func (m Month) Prev() Month {
	return MonthOf(m.First().AddDate(0, -1, 0))
}

// Next moves one month forward, rolling the year when leaving December.
func (m Month) Next() Month {
	return MonthOf(m.First().AddDate(0, 1, 0))
}

// First returns midnight on day 1 of the month.
func (m Month) First() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.Local)
}

// DaysIn returns the day count of the month, leap years included.
func (m Month) DaysIn() int {
	return m.First().AddDate(0, 1, -1).Day()
}

// Date formats the given day of the month as a calendar-date string.
func (m Month) Date(day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", m.Year, int(m.Month), day)
}

func (m Month) String() string {
	return m.First().Format("January 2006")
}

// Cell is one slot of the 7-column month grid. Leading placeholder cells
// carry Day == 0.
type Cell struct {
	Day             int
	Date            string
	IsToday         bool
	IsSelected      bool
	HasAppointments bool
	Markers         int
}

// Grid builds the cells for the month: empty placeholders for the weekday
// offset of day 1 (Sunday first), then one cell per day. Occupancy comes
// from filtering appts by each day's date; selection from selectedDate;
// today from now.
func Grid(m Month, appts []appointment.Appointment, selectedDate string, now time.Time) []Cell {
	perDay := make(map[string]int, len(appts))
	for _, a := range appts {
		perDay[a.Date]++
	}

	today := appointment.Day(now)
	offset := int(m.First().Weekday())
	days := m.DaysIn()

	cells := make([]Cell, 0, offset+days)
	for i := 0; i < offset; i++ {
		cells = append(cells, Cell{})
	}
	for day := 1; day <= days; day++ {
		date := m.Date(day)
		count := perDay[date]
		markers := count
		if markers > maxMarkers {
			markers = maxMarkers
		}
		cells = append(cells, Cell{
			Day:             day,
			Date:            date,
			IsToday:         date == today,
			IsSelected:      date == selectedDate,
			HasAppointments: count > 0,
			Markers:         markers,
		})
	}
	return cells
}

// Toggle applies the day-click rule: clicking the selected day clears the
// selection, clicking any other day selects it.
func Toggle(selected, date string) string {
	if selected == date {
		return ""
	}
	return date
}
