package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/citas/pkg/app"
	"tableflip.dev/citas/pkg/runner/month"
	"tableflip.dev/citas/pkg/store"
)

func addCalendar(topLevel *cobra.Command) {
	monthFlag := ""
	search := ""

	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal"},
		Short:   "Show the month grid with appointment markers",
		Example: `
citas calendar
citas calendar --month 2024-02
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := month.Month{
				Month:   monthFlag,
				Search:  search,
				Service: &app.Service{Persistence: p},
			}
			return s.Do(context.Background())
		},
	}

	cmd.Flags().StringVarP(&monthFlag, "month", "m", "", "Month to show, YYYY-MM. Defaults to the current month.")
	cmd.Flags().StringVarP(&search, "search", "s", "", "Keep only clients whose name contains this text.")

	topLevel.AddCommand(cmd)
}
