package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/citas/pkg/appointment"
	"tableflip.dev/citas/pkg/view"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("171dff69-f8b9-9dca-0000-0123456789ab  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" appointment")
	default:
		_, _ = c.Println(" appointments")
	}
}

// DayTitle prints a date heading, long form.
func (pp *PrettyPrint) DayTitle(date string) {
	if t, err := time.Parse(appointment.DateLayout, date); err == nil {
		pp.Title(t.Format("Monday, January 2, 2006"))
		return
	}
	pp.Title(date)
}

// Appointments prints one date group, time first.
func (pp *PrettyPrint) Appointments(appts ...appointment.Appointment) {
	if len(appts) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, a := range appts {
		row := []interface{}{a.Time, statusPrinter(a.Status).Sprint(a.Status.Glyph()), a.ClientName}
		if pp.ShowID {
			row = append([]interface{}{y.Sprint(a.ID)}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Grouped prints date-grouped appointments in group order.
func (pp *PrettyPrint) Grouped(groups []view.Group) {
	for _, g := range groups {
		pp.DayTitle(g.Date)
		pp.Appointments(g.Appointments...)
	}
}

// Tally prints the aggregate counters block.
func (pp *PrettyPrint) Tally(t view.Tally) {
	b := color.New(color.Bold)
	f := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(f.Sprint("total"), b.Sprint(t.Total))
	tbl.AddRow(f.Sprint("today"), b.Sprint(t.Today))
	tbl.AddRow(f.Sprint("scheduled"), statusPrinter(appointment.Scheduled).Sprint(t.Scheduled))
	tbl.AddRow(f.Sprint("completed"), statusPrinter(appointment.Completed).Sprint(t.Completed))
	tbl.AddRow(f.Sprint("cancelled"), statusPrinter(appointment.Cancelled).Sprint(t.Cancelled))
	_, _ = fmt.Fprintln(color.Output, tbl)
}

func statusPrinter(s appointment.Status) *color.Color {
	switch s {
	case appointment.Completed:
		return color.New(color.FgGreen)
	case appointment.Cancelled:
		return color.New(color.FgRed)
	default:
		return color.New(color.FgHiMagenta)
	}
}
