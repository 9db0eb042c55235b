package add

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/citas/pkg/app"
	"tableflip.dev/citas/pkg/appointment"
	"tableflip.dev/citas/pkg/printers"
	"tableflip.dev/citas/pkg/view"
)

type Add struct {
	ClientName string
	Date       string
	Time       string

	Service *app.Service
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}
	if n.Date == "" {
		n.Date = appointment.Day(time.Now())
	}

	a, err := n.Service.Add(ctx, n.ClientName, n.Date, n.Time)
	if err != nil {
		return err
	}

	// Show the full day the new appointment landed on.
	all, err := n.Service.Appointments(ctx)
	if err != nil {
		return err
	}
	day := view.SortChronological(view.OnDate(all, a.Date))

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.DayTitle(a.Date)
	pp.Appointments(day...)
	return nil
}
