// Package month provides the runner logic for the month-grid view.
package month

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/citas/pkg/app"
	"tableflip.dev/citas/pkg/calendar"
	"tableflip.dev/citas/pkg/printers"
	"tableflip.dev/citas/pkg/view"
)

type Month struct {
	// Month selects the displayed month as "YYYY-MM". Empty means the
	// current month.
	Month  string
	Search string

	Service *app.Service
}

func (n *Month) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not render calendar, no service")
	}

	now := time.Now()
	m := calendar.MonthOf(now)
	if n.Month != "" {
		t, err := time.Parse("2006-01", n.Month)
		if err != nil {
			return fmt.Errorf("bad month %q, want YYYY-MM", n.Month)
		}
		m = calendar.MonthOf(t)
	}

	all, err := n.Service.Appointments(ctx)
	if err != nil {
		return err
	}
	appts := view.Search(all, n.Search)

	cells := calendar.Grid(m, appts, "", now)
	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title(m.String())
	_, _ = fmt.Fprintln(color.Output, calendar.Render(m, cells, calendar.DefaultOptions()))

	// List the month's appointments under the grid, day by day.
	monthAppts := appts[:0:0]
	for _, a := range view.SortChronological(appts) {
		if t, ok := a.When(); ok && t.Year() == m.Year && t.Month() == m.Month {
			monthAppts = append(monthAppts, a)
		}
	}
	if len(monthAppts) > 0 {
		pp.NewLine()
		pp.Grouped(view.GroupByDate(monthAppts))
	}
	return nil
}
