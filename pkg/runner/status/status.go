// Package status provides the runner logic for re-tagging appointments.
package status

import (
	"context"
	"errors"

	"tableflip.dev/citas/pkg/app"
	"tableflip.dev/citas/pkg/appointment"
	"tableflip.dev/citas/pkg/printers"
	"tableflip.dev/citas/pkg/view"
)

// SetStatus re-tags the appointment with the configured id. Every transition
// is permitted; an unknown id changes nothing.
type SetStatus struct {
	ID     string
	Status appointment.Status

	Service *app.Service
}

func (n *SetStatus) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not set status, no service")
	}

	if err := n.Service.SetStatus(ctx, n.ID, n.Status); err != nil {
		return err
	}

	all, err := n.Service.Appointments(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	pp.NewLine()
	for _, a := range all {
		if a.ID == n.ID {
			pp.DayTitle(a.Date)
			pp.Appointments(view.SortChronological(view.OnDate(all, a.Date))...)
			return nil
		}
	}
	pp.Title("Appointments")
	pp.Appointments()
	return nil
}
