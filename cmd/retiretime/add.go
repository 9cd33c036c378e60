package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/retiretime/retiretime/internal/models"
)

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add an event",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdd,
}

var (
	addDate     string
	addType     string
	addCategory string
	addNotes    string
	addReminder bool
	addOffset   string
	addRepeat   string
	addInterval int
)

func init() {
	addCmd.Flags().StringVarP(&addDate, "date", "d", "", "Event date (YYYY-MM-DD)")
	addCmd.Flags().StringVarP(&addType, "type", "t", string(models.EventTypeCustom), "Event type (birthday|anniversary|countdown|countup|custom)")
	addCmd.Flags().StringVarP(&addCategory, "category", "c", "", "Category label")
	addCmd.Flags().StringVarP(&addNotes, "notes", "n", "", "Free-text notes")
	addCmd.Flags().BoolVar(&addReminder, "reminder", false, "Enable a reminder")
	addCmd.Flags().StringVar(&addOffset, "offset", string(models.OffsetAtTime), "Reminder offset (at_time|1h_before|1d_before|1w_before)")
	addCmd.Flags().StringVarP(&addRepeat, "repeat", "r", string(models.RepeatNone), "Repeat (none|daily|weekly|monthly|yearly)")
	addCmd.Flags().IntVar(&addInterval, "interval", 1, "Repeat interval")
	addCmd.MarkFlagRequired("date")
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, cleanup, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	date, err := a.parseDate(addDate)
	if err != nil {
		return err
	}

	e := models.NewEvent(args[0], date, models.EventType(addType))
	if addCategory != "" {
		e.Category = addCategory
	}
	if addNotes != "" {
		e.Notes = &addNotes
	}
	if addReminder {
		e.ReminderEnabled = true
		e.ReminderOffset = models.ReminderOffset(addOffset)
	}
	if repeat := models.RepeatType(addRepeat); repeat != models.RepeatNone {
		e.RepeatType = repeat
		e.RepeatSettings = &models.RepeatSettings{Interval: addInterval}
	}

	if err := a.store.AddEvent(ctx, e); err != nil {
		return err
	}
	fmt.Printf("added %s\n", e.ID)
	return nil
}
