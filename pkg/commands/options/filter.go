package options

import (
	"github.com/spf13/cobra"
)

// FilterOptions captures the transient selectors of the list view: search
// text, a date scope, and a status filter.
type FilterOptions struct {
	Search string
	Date   string
	Status string
	Today  bool
}

// AddFilterArgs wires filtering flags on the provided command.
func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVarP(&o.Search, "search", "s", "",
		"Keep only clients whose name contains this text.")
	cmd.Flags().StringVar(&o.Date, "date", "",
		"Keep only appointments on this date, YYYY-MM-DD.")
	cmd.Flags().StringVar(&o.Status, "status", "",
		"Keep only appointments with this status.")
	cmd.Flags().BoolVar(&o.Today, "today", false,
		"Keep only today's appointments.")
}
