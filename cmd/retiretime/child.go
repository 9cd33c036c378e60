package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var childCmd = &cobra.Command{
	Use:   "child",
	Short: "Manage milestone sub-entries of an event",
}

var childAddCmd = &cobra.Command{
	Use:   "add <parent-id> <name>",
	Short: "Add a child under a parent event",
	Args:  cobra.ExactArgs(2),
	RunE:  runChildAdd,
}

var childListCmd = &cobra.Command{
	Use:   "list <parent-id>",
	Short: "List the children of an event",
	Args:  cobra.ExactArgs(1),
	RunE:  runChildList,
}

var childDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a child event",
	Args:  cobra.ExactArgs(1),
	RunE:  runChildDelete,
}

var (
	childDate  string
	childNotes string
)

func init() {
	childAddCmd.Flags().StringVarP(&childDate, "date", "d", "", "Child date (YYYY-MM-DD)")
	childAddCmd.Flags().StringVarP(&childNotes, "notes", "n", "", "Free-text notes")
	childAddCmd.MarkFlagRequired("date")

	childCmd.AddCommand(childAddCmd)
	childCmd.AddCommand(childListCmd)
	childCmd.AddCommand(childDeleteCmd)
}

func runChildAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, cleanup, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	date, err := a.parseDate(childDate)
	if err != nil {
		return err
	}
	var notes *string
	if childNotes != "" {
		notes = &childNotes
	}

	child, err := a.store.CreateChildEvent(ctx, args[0], args[1], date, notes)
	if err != nil {
		return err
	}
	fmt.Printf("added child %s\n", child.ID)
	return nil
}

func runChildList(cmd *cobra.Command, args []string) error {
	a, cleanup, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	for _, c := range a.store.ChildEvents(args[0]) {
		a.printEvent(&c)
	}
	return nil
}

func runChildDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, cleanup, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	a.store.DeleteChildEvent(ctx, args[0])
	fmt.Printf("deleted %s\n", args[0])
	return nil
}
