package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/retiretime/retiretime/internal/models"
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update fields of an event",
	Args:  cobra.ExactArgs(1),
	RunE:  runUpdate,
}

var (
	updName     string
	updDate     string
	updCategory string
	updNotes    string
	updReminder bool
)

func init() {
	updateCmd.Flags().StringVar(&updName, "name", "", "New name")
	updateCmd.Flags().StringVarP(&updDate, "date", "d", "", "New date (YYYY-MM-DD)")
	updateCmd.Flags().StringVarP(&updCategory, "category", "c", "", "New category")
	updateCmd.Flags().StringVarP(&updNotes, "notes", "n", "", "New notes")
	updateCmd.Flags().BoolVar(&updReminder, "reminder", false, "Enable or disable the reminder")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, cleanup, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	e := a.store.GetEvent(args[0])
	if e == nil {
		return fmt.Errorf("event %s not found", args[0])
	}

	if cmd.Flags().Changed("name") {
		e.Name = updName
	}
	if cmd.Flags().Changed("date") {
		date, err := a.parseDate(updDate)
		if err != nil {
			return err
		}
		e.Date = date
		// A reminder derived from the old date no longer applies.
		if e.ReminderEnabled {
			e.ReminderDate = nil
		}
	}
	if cmd.Flags().Changed("category") {
		e.Category = updCategory
	}
	if cmd.Flags().Changed("notes") {
		e.Notes = &updNotes
	}
	if cmd.Flags().Changed("reminder") {
		e.ReminderEnabled = updReminder
		if !updReminder {
			e.ReminderDate = nil
		} else if e.ReminderOffset == "" {
			e.ReminderOffset = models.OffsetAtTime
		}
	}

	if err := a.store.UpdateEvent(ctx, e); err != nil {
		return err
	}
	fmt.Printf("updated %s\n", e.ID)
	return nil
}
