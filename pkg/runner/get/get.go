package get

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/citas/pkg/app"
	"tableflip.dev/citas/pkg/appointment"
	"tableflip.dev/citas/pkg/printers"
	"tableflip.dev/citas/pkg/view"
)

type Get struct {
	ShowID bool
	JSON   bool

	Search string
	Date   string
	Status appointment.Status

	Service *app.Service
}

func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no service")
	}

	all, err := n.Service.Appointments(ctx)
	if err != nil {
		return err
	}

	appts := view.Search(all, n.Search)
	appts = view.OnDate(appts, n.Date)
	appts = view.WithStatus(appts, n.Status)
	appts = view.SortChronological(appts)

	if n.JSON {
		b, err := json.MarshalIndent(appts, "", "  ")
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(color.Output, string(b))
		return nil
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	if len(appts) == 0 {
		pp.Title("Appointments")
		pp.Appointments()
		return nil
	}
	pp.Grouped(view.GroupByDate(appts))
	pp.Tally(view.Count(all, time.Now()))
	return nil
}
