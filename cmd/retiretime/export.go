package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/retiretime/retiretime/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all events as an iCalendar file",
	RunE:  runExport,
}

var exportOut string

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file (default stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	a, cleanup, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	w := os.Stdout
	if exportOut != "" {
		f, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", exportOut, err)
		}
		defer f.Close()
		w = f
	}

	return export.Write(w, a.store.Events(), a.loc)
}
