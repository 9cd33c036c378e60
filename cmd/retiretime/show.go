package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one event with its children",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	a, cleanup, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	e := a.store.GetEvent(args[0])
	if e == nil {
		return fmt.Errorf("event %s not found", args[0])
	}

	now := a.store.Now()
	fmt.Printf("%s\n", e.Name)
	fmt.Printf("  id:       %s\n", e.ID)
	fmt.Printf("  type:     %s\n", e.Type)
	fmt.Printf("  category: %s\n", e.Category)
	fmt.Printf("  date:     %s (%s)\n", e.FormattedDate(a.loc), e.FormattedDays(now, a.loc))
	if e.Notes != nil {
		fmt.Printf("  notes:    %s\n", *e.Notes)
	}
	if e.ReminderEnabled && e.ReminderDate != nil {
		fmt.Printf("  reminder: %s\n", e.ReminderDate.In(a.loc).Format("Jan 2, 2006 15:04"))
	}
	if e.IsRepeating() {
		fmt.Printf("  repeats:  %s\n", e.RepeatType)
	}

	children := a.store.ChildEvents(e.ID)
	if len(children) > 0 {
		fmt.Println("  children:")
		for i := range children {
			c := &children[i]
			fmt.Printf("    %-36s %-20s %s\n", c.ID, c.Name, c.FormattedDays(now, a.loc))
		}
	}
	return nil
}
