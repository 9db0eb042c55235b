package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/citas/pkg/app"
	"tableflip.dev/citas/pkg/appointment"
	"tableflip.dev/citas/pkg/commands/options"
	"tableflip.dev/citas/pkg/runner/status"
	"tableflip.dev/citas/pkg/store"
)

// addStatus wires one subcommand per status transition. Every transition is
// allowed, so done, cancel and reopen only differ in the tag they set.
func addStatus(topLevel *cobra.Command) {
	addSetStatus(topLevel, "done", appointment.Completed,
		"Mark an appointment completed", []string{"complete", "completed"})
	addSetStatus(topLevel, "cancel", appointment.Cancelled,
		"Mark an appointment cancelled", []string{"cancelled"})
	addSetStatus(topLevel, "reopen", appointment.Scheduled,
		"Put an appointment back to scheduled", []string{"reschedule"})
}

func addSetStatus(topLevel *cobra.Command, use string, s appointment.Status, short string, aliases []string) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     use + " <id>",
		Aliases: aliases,
		Short:   short,
		Example: "\ncitas " + use + " 8f14e45f\n",
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
			r := status.SetStatus{
				ID:      io.ID,
				Status:  s,
				Service: &app.Service{Persistence: p},
			}
			return r.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
