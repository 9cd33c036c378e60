package main

import (
	"github.com/spf13/cobra"
)

var upcomingCmd = &cobra.Command{
	Use:   "upcoming",
	Short: "Show upcoming events (rolls over overdue repeating events first)",
	RunE:  runUpcoming,
}

var upcomingLimit int

func init() {
	upcomingCmd.Flags().IntVarP(&upcomingLimit, "limit", "l", 10, "Maximum events to show")
}

func runUpcoming(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, cleanup, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	events := a.store.UpcomingEvents(ctx, upcomingLimit)
	for i := range events {
		a.printEvent(&events[i])
	}
	return nil
}
