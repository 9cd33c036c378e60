package store

import (
	"context"

	"github.com/retiretime/retiretime/internal/logger"
)

// Sweep advances every overdue repeating event by exactly one interval and
// persists once if anything moved. An event overdue by several intervals
// catches up across successive sweeps; UpcomingEvents runs one sweep per
// call, so staleness is bounded by query cadence. Running the sweep twice
// without time passing advances nothing on the second pass once events are
// no longer overdue.
func (s *Store) Sweep(ctx context.Context) {
	now := s.clock()
	var rolled []string

	for i := range s.events {
		e := &s.events[i]
		if !e.IsRepeating() || e.DaysRemaining(now, s.loc) >= 0 {
			continue
		}
		advanced, err := e.AdvanceOccurrence(s.loc)
		if err != nil {
			s.log.Warn("failed to advance occurrence",
				logger.String("event_id", e.ID), logger.Err(err))
			continue
		}
		advanced.UpdatedAt = now
		s.events[i] = advanced
		rolled = append(rolled, advanced.ID)

		if advanced.ReminderEnabled {
			s.sched.Cancel(advanced.ID)
			s.sched.Schedule(advanced)
		}
	}

	if len(rolled) == 0 {
		return
	}

	s.persist(ctx)
	s.cache.InvalidateAll()
	s.refresher.RequestRefresh()
	s.bus.Publish(EventUpdated, rolled...)
	s.bus.Publish(CacheCleared)
}

// rollover advances a single event; used by UpdateEvent when the freshly
// updated event is already overdue.
func (s *Store) rollover(ctx context.Context, id string) {
	idx, ok := s.byID[id]
	if !ok {
		return
	}
	e := s.events[idx]
	advanced, err := e.AdvanceOccurrence(s.loc)
	if err != nil {
		s.log.Warn("failed to advance occurrence",
			logger.String("event_id", id), logger.Err(err))
		return
	}
	advanced.UpdatedAt = s.clock()
	s.events[idx] = advanced

	if advanced.ReminderEnabled {
		s.sched.Cancel(advanced.ID)
		s.sched.Schedule(advanced)
	}

	s.persist(ctx)
	s.cache.InvalidateAll()
	s.refresher.RequestRefresh()
	s.bus.Publish(CacheCleared)
}
