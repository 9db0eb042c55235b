// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// ClientOptions captures the draft fields collected on add and edit.
type ClientOptions struct {
	ClientName string
	Date       string
	Time       string
}

// AddClientArgs wires draft-field flags on the provided command.
func AddClientArgs(cmd *cobra.Command, o *ClientOptions) {
	cmd.Flags().StringVarP(&o.Date, "on", "o", "",
		"Date of the appointment, YYYY-MM-DD. Defaults to today.")
	cmd.Flags().StringVarP(&o.Time, "at", "t", "",
		"Time of the appointment, HH:MM.")
}
