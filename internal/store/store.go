// Package store holds the authoritative event collection for the app process
// and orchestrates persistence, cache maintenance, reminder scheduling,
// widget refresh and repeat rollover as one coordinated operation per
// mutating call.
package store

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/retiretime/retiretime/internal/cache"
	"github.com/retiretime/retiretime/internal/logger"
	"github.com/retiretime/retiretime/internal/models"
	"github.com/retiretime/retiretime/internal/notify"
	"github.com/retiretime/retiretime/internal/repository"
	"github.com/retiretime/retiretime/internal/widget"
)

// Store is the single writer of the live collection. It is confined to one
// logical execution context; concurrent mutation is not supported.
type Store struct {
	repo      repository.Store
	sched     notify.Scheduler
	refresher widget.Refresher
	bus       *Bus
	log       logger.Logger
	validate  *validator.Validate
	clock     func() time.Time
	loc       *time.Location

	// Flat collection plus id index: parent/child is a back-reference, not
	// nested ownership, keeping id lookup O(1).
	events []models.Event
	byID   map[string]int
	cache  *cache.ListCache
}

// Options carries the store's collaborators. Zero values get safe defaults
// so tests can inject only what they observe.
type Options struct {
	Scheduler notify.Scheduler
	Refresher widget.Refresher
	Logger    logger.Logger
	Clock     func() time.Time
	Location  *time.Location
}

type nopScheduler struct{}

func (nopScheduler) Schedule(models.Event) {}
func (nopScheduler) Cancel(string)         {}

// New loads the collection from repo and builds a ready store. An empty or
// undecodable blob falls back to the fixed sample dataset; load problems are
// never fatal.
func New(ctx context.Context, repo repository.Store, opts Options) *Store {
	if opts.Logger == nil {
		opts.Logger = logger.Default()
	}
	if opts.Scheduler == nil {
		opts.Scheduler = nopScheduler{}
	}
	if opts.Refresher == nil {
		opts.Refresher = widget.NopRefresher{}
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}

	s := &Store{
		repo:      repo,
		sched:     opts.Scheduler,
		refresher: opts.Refresher,
		bus:       NewBus(opts.Logger),
		log:       opts.Logger,
		validate:  validator.New(),
		clock:     opts.Clock,
		loc:       opts.Location,
		byID:      make(map[string]int),
	}
	s.cache = cache.New(s.sortEvents)
	s.loadInitial(ctx)
	return s
}

func (s *Store) loadInitial(ctx context.Context) {
	data, err := s.repo.Load(ctx)
	if err != nil {
		s.log.Warn("failed to load events, using samples", logger.Err(err))
	}
	if err == nil && len(data) > 0 {
		events, decErr := models.DecodeEvents(data)
		if decErr == nil {
			s.setEvents(events)
			return
		}
		s.log.Warn("failed to decode events, using samples", logger.Err(decErr))
	}
	s.setEvents(models.SampleEvents(s.clock()))
}

func (s *Store) setEvents(events []models.Event) {
	s.events = events
	s.byID = make(map[string]int, len(events))
	for i := range events {
		s.byID[events[i].ID] = i
	}
}

// Bus exposes the store's change-notification bus for observers.
func (s *Store) Bus() *Bus {
	return s.bus
}

// Now returns the store's current instant; injectable for tests.
func (s *Store) Now() time.Time {
	return s.clock()
}

// Location returns the calendar location day counts are computed in.
func (s *Store) Location() *time.Location {
	return s.loc
}

// AddEvent appends the event to the collection, persists, maintains the
// cache incrementally, signals the widget, schedules its reminder and emits
// an added notification. The returned error only ever reports invalid input.
func (s *Store) AddEvent(ctx context.Context, e *models.Event) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if _, exists := s.byID[e.ID]; exists {
		return fmt.Errorf("event %s already exists", e.ID)
	}
	if err := s.normalizeAndValidate(e); err != nil {
		return err
	}

	now := s.clock()
	e.CreatedAt = now
	e.UpdatedAt = now

	s.events = append(s.events, *e)
	s.byID[e.ID] = len(s.events) - 1

	s.persist(ctx)
	s.cache.Apply(nil, e)
	s.refresher.RequestRefresh()
	s.sched.Schedule(*e)
	s.bus.Publish(EventAdded, e.ID)
	return nil
}

// UpdateEvent replaces the stored event with the same id. A missing id is a
// silent no-op, matching the permissive behavior callers rely on. An overdue
// repeating event rolls over one interval as part of the update.
func (s *Store) UpdateEvent(ctx context.Context, e *models.Event) error {
	idx, ok := s.byID[e.ID]
	if !ok {
		s.log.Debug("update of unknown event ignored", logger.String("event_id", e.ID))
		return nil
	}
	if err := s.normalizeAndValidate(e); err != nil {
		return err
	}

	old := s.events[idx]
	if old.ReminderEnabled {
		s.sched.Cancel(old.ID)
	}

	e.CreatedAt = old.CreatedAt
	e.UpdatedAt = s.clock()
	s.events[idx] = *e

	s.persist(ctx)
	s.cache.Apply(&old, e)
	s.refresher.RequestRefresh()
	s.sched.Schedule(*e)

	if e.IsRepeating() && e.DaysRemaining(s.clock(), s.loc) < 0 {
		s.rollover(ctx, e.ID)
	}

	s.bus.Publish(EventUpdated, e.ID)
	if !models.ImageFieldsEqual(&old, e) {
		s.publishImageChanged(e)
	}
	return nil
}

// DeleteEvent removes the event and, when it is a parent, its children.
// Orphaned child records would be unreachable once the parent id is gone, so
// deletion cascades. Missing ids are a silent no-op.
func (s *Store) DeleteEvent(ctx context.Context, id string) {
	idx, ok := s.byID[id]
	if !ok {
		s.log.Debug("delete of unknown event ignored", logger.String("event_id", id))
		return
	}

	doomed := map[string]bool{id: true}
	if !s.events[idx].IsChild() {
		for i := range s.events {
			if p := s.events[i].ParentID; p != nil && *p == id {
				doomed[s.events[i].ID] = true
			}
		}
	}

	deleted := make([]string, 0, len(doomed))
	kept := s.events[:0]
	for i := range s.events {
		if doomed[s.events[i].ID] {
			s.sched.Cancel(s.events[i].ID)
			deleted = append(deleted, s.events[i].ID)
			continue
		}
		kept = append(kept, s.events[i])
	}
	s.setEvents(kept)

	s.persist(ctx)
	s.cache.InvalidateAll()
	s.refresher.RequestRefresh()
	s.bus.Publish(EventDeleted, deleted...)
	s.bus.Publish(CacheCleared)
}

// DeleteChildEvent removes a child event. No-op when the id does not name a
// child.
func (s *Store) DeleteChildEvent(ctx context.Context, id string) {
	idx, ok := s.byID[id]
	if !ok || !s.events[idx].IsChild() {
		s.log.Debug("child delete ignored", logger.String("event_id", id))
		return
	}
	s.DeleteEvent(ctx, id)
}

// CreateChildEvent adds a sub-entry under parentID, inheriting the parent's
// type and category.
func (s *Store) CreateChildEvent(ctx context.Context, parentID, name string, date time.Time, notes *string) (*models.Event, error) {
	idx, ok := s.byID[parentID]
	if !ok {
		return nil, fmt.Errorf("parent event %s not found", parentID)
	}
	parent := s.events[idx]
	if parent.IsChild() {
		return nil, fmt.Errorf("event %s is a child; children cannot nest", parentID)
	}

	child := models.NewChildEvent(&parent, name, date, notes)
	if err := s.AddEvent(ctx, child); err != nil {
		return nil, err
	}
	return child, nil
}

// GetEvent returns a copy of the event with the given id, or nil.
func (s *Store) GetEvent(id string) *models.Event {
	idx, ok := s.byID[id]
	if !ok {
		return nil
	}
	e := s.events[idx]
	return &e
}

// Events returns a snapshot copy of the whole collection.
func (s *Store) Events() []models.Event {
	return slices.Clone(s.events)
}

// persist writes the whole collection. A failed write is logged only: the
// in-memory state stays ahead of durable state and no rollback happens.
func (s *Store) persist(ctx context.Context) {
	data, err := models.EncodeEvents(s.events)
	if err != nil {
		s.log.Error("failed to encode events", logger.Err(err))
		return
	}
	if err := s.repo.Save(ctx, data); err != nil {
		s.log.Error("failed to persist events", logger.Err(err))
	}
}

// publishImageChanged emits the image-changed notification for the event,
// its parent and all of its children, so every view compositing the shared
// photo re-renders.
func (s *Store) publishImageChanged(e *models.Event) {
	ids := []string{e.ID}
	if e.ParentID != nil {
		if _, ok := s.byID[*e.ParentID]; ok {
			ids = append(ids, *e.ParentID)
		}
	}
	for i := range s.events {
		if p := s.events[i].ParentID; p != nil && *p == e.ID {
			ids = append(ids, s.events[i].ID)
		}
	}
	s.bus.Publish(ImageChanged, ids...)
}

// normalizeAndValidate collapses defaults and enforces the mutation-boundary
// rules: valid enum members, interval ≥ 1, repeat settings only on repeating
// events, and a reminder date whenever a reminder is enabled (derived from
// the offset when unset).
func (s *Store) normalizeAndValidate(e *models.Event) error {
	if strings.TrimSpace(e.Category) == "" {
		e.Category = models.DefaultCategory
	}
	if e.Type == "" {
		e.Type = models.EventTypeCustom
	}
	if e.RepeatType == "" {
		e.RepeatType = models.RepeatNone
	}
	if !e.IsRepeating() && e.RepeatSettings != nil {
		s.log.Debug("dropping repeat settings on non-repeating event",
			logger.String("event_id", e.ID))
		e.RepeatSettings = nil
	}
	if e.RepeatSettings != nil && e.RepeatSettings.Interval == 0 {
		e.RepeatSettings.Interval = 1
	}
	if e.ReminderEnabled && e.ReminderDate == nil {
		reminder := e.Date.Add(e.ReminderOffset.Duration())
		e.ReminderDate = &reminder
	}

	if err := s.validate.Struct(e); err != nil {
		return fmt.Errorf("invalid event: %w", err)
	}
	return nil
}

// sortEvents orders by plain ascending day count: past events first (most
// overdue leading), then today, then future dates. Name and id break ties so
// listings are deterministic.
func (s *Store) sortEvents(events []models.Event) {
	now := s.clock()
	slices.SortStableFunc(events, func(a, b models.Event) int {
		da, db := a.DaysRemaining(now, s.loc), b.DaysRemaining(now, s.loc)
		if da != db {
			return da - db
		}
		if a.Name != b.Name {
			return strings.Compare(a.Name, b.Name)
		}
		return strings.Compare(a.ID, b.ID)
	})
}
