package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/citas/pkg/app"
	"tableflip.dev/citas/pkg/commands/options"
	"tableflip.dev/citas/pkg/runner/remove"
	"tableflip.dev/citas/pkg/store"
)

func addRemove(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm", "delete"},
		Short:   "Delete an appointment permanently",
		Example: `
citas remove 8f14e45f
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
			s := remove.Remove{
				ID:      io.ID,
				Service: &app.Service{Persistence: p},
			}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
