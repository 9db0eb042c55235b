package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/citas/pkg/app"
	"tableflip.dev/citas/pkg/commands/options"
	"tableflip.dev/citas/pkg/runner/add"
	"tableflip.dev/citas/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	co := &options.ClientOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "add <client name>",
		Short: "Book an appointment",
		Example: `
citas add "María González" --on 2024-03-10 --at 10:00
citas add Ana --at 16:30
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a client name")
			}
			co.ClientName = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := add.Add{
				ClientName: co.ClientName,
				Date:       co.Date,
				Time:       co.Time,
				Service:    &app.Service{Persistence: p},
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddClientArgs(cmd, co)

	topLevel.AddCommand(cmd)
}
