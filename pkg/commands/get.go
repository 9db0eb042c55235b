package commands

import (
	"context"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/citas/pkg/app"
	"tableflip.dev/citas/pkg/appointment"
	"tableflip.dev/citas/pkg/commands/options"
	"tableflip.dev/citas/pkg/runner/get"
	"tableflip.dev/citas/pkg/store"
)

func addGet(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "get [search]",
		Aliases: []string{"list", "ls"},
		Short:   "List appointments, grouped by day",
		Example: `
citas get
citas get maría
citas get --today
citas get --date 2024-03-10 --status scheduled
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				fo.Search = strings.Join(args, " ")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			status := appointment.Status("")
			if fo.Status != "" {
				status, err = appointment.ParseStatus(fo.Status)
				if err != nil {
					return oo.HandleError(err)
				}
			}
			date := fo.Date
			if fo.Today {
				date = appointment.Day(time.Now())
			}

			s := get.Get{
				ShowID:  io.ShowID,
				JSON:    oo.JSON,
				Search:  fo.Search,
				Date:    date,
				Status:  status,
				Service: &app.Service{Persistence: p},
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddFilterArgs(cmd, fo)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
