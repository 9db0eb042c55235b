package remove

import (
	"context"
	"errors"

	"tableflip.dev/citas/pkg/app"
	"tableflip.dev/citas/pkg/printers"
	"tableflip.dev/citas/pkg/view"
)

type Remove struct {
	ID string

	Service *app.Service
}

// Do deletes the appointment permanently. An unknown id changes nothing.
func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove, no service")
	}

	if err := n.Service.Remove(ctx, n.ID); err != nil {
		return err
	}

	all, err := n.Service.Appointments(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.TitleWithCount("Appointments", len(all))
	pp.Grouped(view.GroupByDate(view.SortChronological(all)))
	return nil
}
