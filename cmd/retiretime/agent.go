package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/retiretime/retiretime/internal/logger"
	"github.com/retiretime/retiretime/internal/notify"
)

var agentCmd = &cobra.Command{
	Use:   "agent",
	Short: "Run the reminder agent until interrupted",
	Long:  `Loads the collection, schedules every enabled reminder and delivers them as they come due. Also sweeps overdue repeating events on start.`,
	RunE:  runAgent,
}

func runAgent(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, cleanup, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	// Overdue repeating events roll forward before their reminders are
	// scheduled, so nothing fires for a date that already rolled past.
	a.store.Sweep(ctx)
	for _, e := range a.store.Events() {
		a.sched.Schedule(e)
	}

	runner, err := notify.NewRunner(a.sched, notify.LogDelivery{Log: log}, cfg.Reminders.CheckSchedule, log)
	if err != nil {
		return err
	}
	runner.Start()
	defer runner.Stop()

	log.Info("reminder agent running",
		logger.Int("pending", len(a.sched.Pending())),
		logger.String("schedule", cfg.Reminders.CheckSchedule))

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Info("reminder agent stopping")
	return nil
}
