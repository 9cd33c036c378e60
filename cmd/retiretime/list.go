package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/retiretime/retiretime/internal/cache"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List events, soonest first",
	RunE:  runList,
}

var (
	listCategory   string
	listFilter     string
	listCategories bool
)

func init() {
	listCmd.Flags().StringVarP(&listCategory, "category", "c", cache.All, "Category to list")
	listCmd.Flags().StringVarP(&listFilter, "filter", "f", cache.All, "Additional category filter")
	listCmd.Flags().BoolVar(&listCategories, "categories", false, "List categories with events instead")
}

func runList(cmd *cobra.Command, args []string) error {
	a, cleanup, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	if listCategories {
		for _, c := range a.store.CategoriesWithEvents(listFilter) {
			fmt.Println(c)
		}
		return nil
	}

	events := a.store.EventsInCategory(listCategory, listFilter)
	for i := range events {
		a.printEvent(&events[i])
	}
	return nil
}
