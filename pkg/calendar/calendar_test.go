package calendar

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"tableflip.dev/citas/pkg/appointment"
)

func dayCells(cells []Cell) []Cell {
	out := make([]Cell, 0, len(cells))
	for _, c := range cells {
		if c.Day != 0 {
			out = append(out, c)
		}
	}
	return out
}

func TestGridDayCount(t *testing.T) {
	tests := []struct {
		month Month
		days  int
	}{
		{Month{2024, time.February}, 29}, // leap year
		{Month{2023, time.February}, 28},
		{Month{2024, time.January}, 31},
		{Month{2024, time.April}, 30},
	}
	for _, tt := range tests {
		cells := Grid(tt.month, nil, "", time.Now())
		if got := len(dayCells(cells)); got != tt.days {
			t.Fatalf("%s: expected %d day cells, got %d", tt.month, tt.days, got)
		}
	}
}

func TestGridWeekdayOffset(t *testing.T) {
	// February 2024 starts on a Thursday: 4 leading placeholders.
	cells := Grid(Month{2024, time.February}, nil, "", time.Now())
	for i := 0; i < 4; i++ {
		if cells[i].Day != 0 {
			t.Fatalf("cell %d should be a placeholder, got day %d", i, cells[i].Day)
		}
	}
	if cells[4].Day != 1 {
		t.Fatalf("expected day 1 after the offset, got %d", cells[4].Day)
	}
}

func TestGridOccupancyAndMarkerCap(t *testing.T) {
	appts := []appointment.Appointment{
		{ID: "1", ClientName: "Ana", Date: "2024-02-10", Time: "09:00", Status: appointment.Scheduled},
		{ID: "2", ClientName: "Eva", Date: "2024-02-10", Time: "10:00", Status: appointment.Scheduled},
		{ID: "3", ClientName: "Mar", Date: "2024-02-10", Time: "11:00", Status: appointment.Scheduled},
		{ID: "4", ClientName: "Luz", Date: "2024-02-10", Time: "12:00", Status: appointment.Scheduled},
		{ID: "5", ClientName: "Sol", Date: "2024-02-12", Time: "09:00", Status: appointment.Scheduled},
	}

	cells := Grid(Month{2024, time.February}, appts, "", time.Now())
	byDay := make(map[int]Cell)
	for _, c := range dayCells(cells) {
		byDay[c.Day] = c
	}

	if c := byDay[10]; !c.HasAppointments || c.Markers != 3 {
		t.Fatalf("day 10: expected occupancy with markers capped at 3, got %+v", c)
	}
	if c := byDay[12]; !c.HasAppointments || c.Markers != 1 {
		t.Fatalf("day 12: expected one marker, got %+v", c)
	}
	if c := byDay[11]; c.HasAppointments || c.Markers != 0 {
		t.Fatalf("day 11: expected no occupancy, got %+v", c)
	}
}

func TestGridTodayAndSelected(t *testing.T) {
	now := time.Date(2024, time.February, 10, 12, 0, 0, 0, time.Local)
	cells := Grid(Month{2024, time.February}, nil, "2024-02-12", now)

	for _, c := range dayCells(cells) {
		switch c.Day {
		case 10:
			if !c.IsToday {
				t.Fatalf("day 10 should be today")
			}
		case 12:
			if !c.IsSelected {
				t.Fatalf("day 12 should be selected")
			}
		default:
			if c.IsToday || c.IsSelected {
				t.Fatalf("day %d should be neither today nor selected", c.Day)
			}
		}
	}
}

func TestMonthNavigationRollsOver(t *testing.T) {
	dec := Month{2023, time.December}
	if got := dec.Next(); got != (Month{2024, time.January}) {
		t.Fatalf("expected December to roll into January, got %v", got)
	}
	jan := Month{2024, time.January}
	if got := jan.Prev(); got != (Month{2023, time.December}) {
		t.Fatalf("expected January to roll back into December, got %v", got)
	}
	if got := (Month{2024, time.June}).Next(); got != (Month{2024, time.July}) {
		t.Fatalf("expected plain month step, got %v", got)
	}
}

func TestToggle(t *testing.T) {
	if got := Toggle("", "2024-02-10"); got != "2024-02-10" {
		t.Fatalf("expected selection, got %q", got)
	}
	if got := Toggle("2024-02-10", "2024-02-10"); got != "" {
		t.Fatalf("expected re-click to clear, got %q", got)
	}
	if got := Toggle("2024-02-10", "2024-02-11"); got != "2024-02-11" {
		t.Fatalf("expected selection to move, got %q", got)
	}
}

func TestMarkerStripRendersDotPerAppointment(t *testing.T) {
	for markers := 0; markers <= 3; markers++ {
		strip := MarkerStrip(Cell{Day: 1, Markers: markers})
		if got := utf8.RuneCountInString(strip); got != 3 {
			t.Fatalf("markers=%d: strip must be 3 runes wide, got %d (%q)", markers, got, strip)
		}
		if got := strings.Count(strip, "·"); got != markers {
			t.Fatalf("markers=%d: expected %d dots, got %d (%q)", markers, markers, got, strip)
		}
	}
}

func TestRenderShowsCappedDotsUnderBusyDays(t *testing.T) {
	appts := []appointment.Appointment{
		{ID: "1", ClientName: "Ana", Date: "2024-02-10", Time: "09:00", Status: appointment.Scheduled},
		{ID: "2", ClientName: "Eva", Date: "2024-02-10", Time: "10:00", Status: appointment.Scheduled},
		{ID: "3", ClientName: "Mar", Date: "2024-02-10", Time: "11:00", Status: appointment.Scheduled},
		{ID: "4", ClientName: "Luz", Date: "2024-02-10", Time: "12:00", Status: appointment.Scheduled},
		{ID: "5", ClientName: "Sol", Date: "2024-02-12", Time: "09:00", Status: appointment.Scheduled},
	}

	m := Month{2024, time.February}
	cells := Grid(m, appts, "", time.Date(2024, time.June, 1, 0, 0, 0, 0, time.Local))
	out := Render(m, cells, DefaultOptions())

	// The marker rows carry nothing but dots and padding. February 2024
	// starts on a Thursday, so day 10 sits in column 6 of its week and
	// day 12 in column 1 of the next.
	var markRows []string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "·") {
			markRows = append(markRows, line)
		}
	}
	if len(markRows) != 2 {
		t.Fatalf("expected 2 marker rows, got %d in:\n%s", len(markRows), out)
	}
	if want := strings.Repeat(" ", 18) + "···"; markRows[0] != want {
		t.Fatalf("day 10 must show three dots: got %q, want %q", markRows[0], want)
	}
	if want := "   ·"; markRows[1] != want {
		t.Fatalf("day 12 must show one dot: got %q, want %q", markRows[1], want)
	}
}

func TestMonthDate(t *testing.T) {
	m := Month{2024, time.February}
	if got := m.Date(9); got != "2024-02-09" {
		t.Fatalf("expected zero-padded date, got %q", got)
	}
}
