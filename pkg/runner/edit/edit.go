package edit

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/citas/pkg/app"
	"tableflip.dev/citas/pkg/printers"
	"tableflip.dev/citas/pkg/view"
)

// Edit replaces fields on an existing appointment. Flags that were not set
// keep the stored value.
type Edit struct {
	ID         string
	ClientName string
	Date       string
	Time       string

	Service *app.Service
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not edit, no service")
	}

	all, err := n.Service.Appointments(ctx)
	if err != nil {
		return err
	}

	for _, a := range all {
		if a.ID != n.ID {
			continue
		}
		if strings.TrimSpace(n.ClientName) != "" {
			a.ClientName = n.ClientName
		}
		if n.Date != "" {
			a.Date = n.Date
		}
		if n.Time != "" {
			a.Time = n.Time
		}
		if err := n.Service.Edit(ctx, a); err != nil {
			return err
		}

		fresh, err := n.Service.Appointments(ctx)
		if err != nil {
			return err
		}
		day := view.SortChronological(view.OnDate(fresh, a.Date))

		pp := printers.PrettyPrint{ShowID: true}
		pp.NewLine()
		pp.DayTitle(a.Date)
		pp.Appointments(day...)
		return nil
	}

	return fmt.Errorf("no appointment with id %s", n.ID)
}
