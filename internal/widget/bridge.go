// Package widget implements the read-only data bridge the widget process
// renders from. It shares nothing with the event store but the persisted
// blob; a torn or missing read degrades to the sample dataset.
package widget

import (
	"context"
	"sort"
	"time"

	"github.com/retiretime/retiretime/internal/logger"
	"github.com/retiretime/retiretime/internal/models"
	"github.com/retiretime/retiretime/internal/repository"
)

// SizeClass selects how many rows a widget surface can show.
type SizeClass string

const (
	SizeSmall  SizeClass = "small"
	SizeMedium SizeClass = "medium"
	SizeLarge  SizeClass = "large"
)

// DefaultRows maps size classes to their row budget.
var DefaultRows = map[SizeClass]int{
	SizeSmall:  1,
	SizeMedium: 3,
	SizeLarge:  6,
}

// Refresher carries the fire-and-forget signal asking widget surfaces to
// re-render. The sqlite store implements it by bumping a signal key.
type Refresher interface {
	RequestRefresh()
}

// NopRefresher discards refresh requests. Used in tests and one-shot runs.
type NopRefresher struct{}

func (NopRefresher) RequestRefresh() {}

// Entry is one widget row: the event plus its precomputed display strings,
// so rendering needs no access to the model's calendar logic.
type Entry struct {
	ID    string
	Name  string
	Days  int
	Label string
	Date  string
}

// Bridge reads the shared blob and prepares widget snapshots.
type Bridge struct {
	repo  repository.Store
	log   logger.Logger
	clock func() time.Time
	loc   *time.Location
	rows  map[SizeClass]int
}

// NewBridge creates a bridge over the shared store. clock, loc and rows may
// be nil for defaults.
func NewBridge(repo repository.Store, log logger.Logger, clock func() time.Time, loc *time.Location, rows map[SizeClass]int) *Bridge {
	if clock == nil {
		clock = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	if rows == nil {
		rows = DefaultRows
	}
	return &Bridge{repo: repo, log: log, clock: clock, loc: loc, rows: rows}
}

// Snapshot loads, decodes and orders the collection for one widget surface.
// Ordering is ascending by absolute day distance: nearest in time, in either
// direction, first. Child events are excluded; they are detail rows under a
// parent, not widget material.
func (b *Bridge) Snapshot(ctx context.Context, size SizeClass) []Entry {
	now := b.clock()
	events := b.load(ctx, now)

	top := make([]models.Event, 0, len(events))
	for _, e := range events {
		if !e.IsChild() {
			top = append(top, e)
		}
	}

	sort.SliceStable(top, func(i, j int) bool {
		di := abs(top[i].DaysRemaining(now, b.loc))
		dj := abs(top[j].DaysRemaining(now, b.loc))
		if di != dj {
			return di < dj
		}
		return top[i].Name < top[j].Name
	})

	limit := b.rows[size]
	if limit <= 0 {
		limit = DefaultRows[SizeMedium]
	}
	if len(top) > limit {
		top = top[:limit]
	}

	entries := make([]Entry, 0, len(top))
	for i := range top {
		e := &top[i]
		entries = append(entries, Entry{
			ID:    e.ID,
			Name:  e.Name,
			Days:  e.DaysRemaining(now, b.loc),
			Label: e.FormattedDays(now, b.loc),
			Date:  e.FormattedDate(b.loc),
		})
	}
	return entries
}

// load reads the shared blob, falling back to the sample dataset when the
// blob is missing or fails to decode. Never fatal: a write in progress on
// the app side just means this refresh shows samples or stale data.
func (b *Bridge) load(ctx context.Context, now time.Time) []models.Event {
	data, err := b.repo.Load(ctx)
	if err != nil || len(data) == 0 {
		if err != nil {
			b.log.Warn("widget failed to read shared storage", logger.Err(err))
		}
		return models.SampleEvents(now)
	}
	events, err := models.DecodeEvents(data)
	if err != nil {
		b.log.Warn("widget failed to decode shared storage", logger.Err(err))
		return models.SampleEvents(now)
	}
	// A blob that decodes to an empty collection is a deliberate state, not
	// an unreadable one; render it empty rather than showing samples.
	return events
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
