package main

import (
	"context"
	"fmt"
	"time"

	"github.com/retiretime/retiretime/internal/models"
	"github.com/retiretime/retiretime/internal/notify"
	"github.com/retiretime/retiretime/internal/repository"
	"github.com/retiretime/retiretime/internal/store"
)

// app bundles the wired-up services a command needs.
type app struct {
	repo  *repository.SQLiteStore
	sched *notify.LocalScheduler
	store *store.Store
	loc   *time.Location
}

// openApp constructs the store over the shared sqlite file. The returned
// cleanup must run before the process exits.
func openApp(ctx context.Context) (*app, func(), error) {
	loc, err := cfg.Calendar.Location()
	if err != nil {
		return nil, nil, err
	}

	repo, err := repository.NewSQLiteStore(cfg.Storage.Path, log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open storage: %w", err)
	}

	sched := notify.NewLocalScheduler(log, nil, loc)
	st := store.New(ctx, repo, store.Options{
		Scheduler: sched,
		Refresher: repo,
		Logger:    log,
		Location:  loc,
	})

	a := &app{repo: repo, sched: sched, store: st, loc: loc}
	return a, func() { repo.Close() }, nil
}

// parseDate parses a YYYY-MM-DD argument in the app's calendar location.
func (a *app) parseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, a.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return t, nil
}

// printEvent writes one listing line for an event.
func (a *app) printEvent(e *models.Event) {
	now := a.store.Now()
	marker := " "
	if e.IsRepeating() {
		marker = "R"
	}
	fmt.Printf("%-36s %s %-12s %-20s %-14s %s\n",
		e.ID, marker, e.Type, e.Name, e.Category, e.FormattedDays(now, a.loc))
}
