package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/citas/pkg/app"
	"tableflip.dev/citas/pkg/commands/options"
	"tableflip.dev/citas/pkg/runner/stats"
	"tableflip.dev/citas/pkg/store"
)

func addStats(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show the appointment counters",
		Example: `
citas stats
citas stats --json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := stats.Stats{
				JSON:    oo.JSON,
				Service: &app.Service{Persistence: p},
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
