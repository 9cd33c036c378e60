package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/retiretime/retiretime/internal/config"
	"github.com/retiretime/retiretime/internal/logger"
)

var (
	cfg *config.Config
	log logger.Logger
)

var rootCmd = &cobra.Command{
	Use:           "retiretime",
	Short:         "RetireTime countdown and reminder tracker",
	Long:          `Track named date-events (birthdays, anniversaries, countdowns) with day counts, repeat rollover, reminders and widget snapshots.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// A .env file is optional; real environment wins either way.
		_ = godotenv.Load()

		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		cfg = c

		log = logger.NewSlogLogger(logger.Config{
			Level:  logger.ParseLevel(cfg.Log.Level),
			Format: cfg.Log.Format,
		})
		logger.SetDefault(log)
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Add subcommands
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(upcomingCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(childCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(widgetCmd)
	rootCmd.AddCommand(agentCmd)
}
