package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/retiretime/retiretime/internal/repository"
	"github.com/retiretime/retiretime/internal/widget"
)

var widgetCmd = &cobra.Command{
	Use:   "widget",
	Short: "Render a widget snapshot from shared storage",
	Long:  `Reads the persisted collection the way the widget process does: no store, no cache, sample data when storage is missing or unreadable.`,
	RunE:  runWidget,
}

var widgetSize string

func init() {
	widgetCmd.Flags().StringVarP(&widgetSize, "size", "s", string(widget.SizeMedium), "Size class (small|medium|large)")
}

func runWidget(cmd *cobra.Command, args []string) error {
	loc, err := cfg.Calendar.Location()
	if err != nil {
		return err
	}
	repo, err := repository.NewSQLiteStore(cfg.Storage.Path, log)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer repo.Close()

	rows := map[widget.SizeClass]int{
		widget.SizeSmall:  cfg.Widget.SmallRows,
		widget.SizeMedium: cfg.Widget.MediumRows,
		widget.SizeLarge:  cfg.Widget.LargeRows,
	}
	bridge := widget.NewBridge(repo, log, nil, loc, rows)

	for _, entry := range bridge.Snapshot(cmd.Context(), widget.SizeClass(widgetSize)) {
		fmt.Printf("%-20s %s\n", entry.Name, entry.Label)
	}
	return nil
}
