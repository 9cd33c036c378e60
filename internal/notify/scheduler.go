// Package notify implements the local notification scheduling collaborator:
// a pending-reminder registry keyed by event id, and a cron-driven runner
// that fires reminders once their time arrives.
package notify

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/retiretime/retiretime/internal/logger"
	"github.com/retiretime/retiretime/internal/models"
)

// Scheduler is the contract the event store mutates reminders through.
type Scheduler interface {
	// Schedule registers a pending notification for the event, replacing any
	// existing one with the same id. No-op when reminders are disabled, the
	// reminder date is unset, or it is already in the past.
	Schedule(e models.Event)
	// Cancel removes a pending notification by event id. Silent no-op when
	// none is pending.
	Cancel(eventID string)
}

// Notification is one pending reminder.
type Notification struct {
	EventID string
	Title   string
	Body    string
	Sound   string
	Vibrate bool
	FireAt  time.Time
}

// LocalScheduler keeps pending reminders in memory. Safe for concurrent use:
// the runner fires from a cron goroutine while the store schedules from the
// app context.
type LocalScheduler struct {
	mu      sync.Mutex
	pending map[string]Notification

	log   logger.Logger
	clock func() time.Time
	loc   *time.Location
}

// NewLocalScheduler creates an empty scheduler. clock and loc may be nil, in
// which case time.Now and time.Local are used.
func NewLocalScheduler(log logger.Logger, clock func() time.Time, loc *time.Location) *LocalScheduler {
	if clock == nil {
		clock = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	return &LocalScheduler{
		pending: make(map[string]Notification),
		log:     log,
		clock:   clock,
		loc:     loc,
	}
}

func (s *LocalScheduler) Schedule(e models.Event) {
	if !e.ReminderEnabled || e.ReminderDate == nil {
		return
	}
	now := s.clock()
	// A reminder dated exactly now still fires; only a past date is dropped.
	if e.ReminderDate.Before(now) {
		s.log.Debug("skipping reminder in the past",
			logger.String("event_id", e.ID),
			logger.Time("reminder_date", *e.ReminderDate))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// Replace semantics: at most one pending notification per event id.
	delete(s.pending, e.ID)
	s.pending[e.ID] = Notification{
		EventID: e.ID,
		Title:   e.Name,
		Body:    reminderBody(&e, now, s.loc),
		Sound:   e.NotificationSound,
		Vibrate: e.VibrationEnabled,
		FireAt:  *e.ReminderDate,
	}
}

func (s *LocalScheduler) Cancel(eventID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, eventID)
}

// Pending returns the pending notifications ordered by fire time.
func (s *LocalScheduler) Pending() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Notification, 0, len(s.pending))
	for _, n := range s.pending {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FireAt.Before(out[j].FireAt) })
	return out
}

// due removes and returns every notification whose fire time has passed.
func (s *LocalScheduler) due(now time.Time) []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Notification
	for id, n := range s.pending {
		if !n.FireAt.After(now) {
			out = append(out, n)
			delete(s.pending, id)
		}
	}
	return out
}

// reminderBody derives the notification text from the event's display
// orientation and day count at the time of scheduling.
func reminderBody(e *models.Event, now time.Time, loc *time.Location) string {
	if e.DaysRemaining(now, loc) == 0 {
		return fmt.Sprintf("%s is today", e.Name)
	}
	return fmt.Sprintf("%s: %s", e.Name, e.FormattedDays(now, loc))
}
