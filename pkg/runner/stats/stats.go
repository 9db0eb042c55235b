package stats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/citas/pkg/app"
	"tableflip.dev/citas/pkg/printers"
	"tableflip.dev/citas/pkg/view"
)

type Stats struct {
	JSON bool

	Service *app.Service
}

func (n *Stats) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not count, no service")
	}

	all, err := n.Service.Appointments(ctx)
	if err != nil {
		return err
	}
	tally := view.Count(all, time.Now())

	if n.JSON {
		b, err := json.Marshal(tally)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(color.Output, string(b))
		return nil
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title("Appointments")
	pp.Tally(tally)
	return nil
}
