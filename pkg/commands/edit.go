package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/citas/pkg/app"
	"tableflip.dev/citas/pkg/commands/options"
	"tableflip.dev/citas/pkg/runner/edit"
	"tableflip.dev/citas/pkg/store"
)

func addEdit(topLevel *cobra.Command) {
	co := &options.ClientOptions{}
	io := &options.IDOptions{}
	name := ""

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change an appointment",
		Example: `
citas edit 8f14e45f --at 11:30
citas edit 8f14e45f --name "María José" --on 2024-03-12
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires an appointment id")
			}
			io.ID = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := edit.Edit{
				ID:         io.ID,
				ClientName: name,
				Date:       co.Date,
				Time:       co.Time,
				Service:    &app.Service{Persistence: p},
			}
			return s.Do(context.Background())
		},
	}

	options.AddClientArgs(cmd, co)
	cmd.Flags().StringVar(&name, "name", "", "New client name.")

	topLevel.AddCommand(cmd)
}
