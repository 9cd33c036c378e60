package store

import (
	"context"
	"slices"
	"sort"

	"github.com/retiretime/retiretime/internal/cache"
	"github.com/retiretime/retiretime/internal/models"
)

// FilteredEvents returns the top-level events in category (cache.All for
// all), sorted ascending by days remaining. Child events are always
// excluded.
func (s *Store) FilteredEvents(category string) []models.Event {
	return s.cachedList(cache.Key{Category: category, Filter: cache.All})
}

// EventsInCategory returns the top-level events matching both the category
// and the filter category, sorted ascending by days remaining.
func (s *Store) EventsInCategory(category, filter string) []models.Event {
	return s.cachedList(cache.Key{Category: category, Filter: filter})
}

// CategoriesWithEvents returns the distinct categories that currently have
// at least one top-level event matching filter, alphabetically.
func (s *Store) CategoriesWithEvents(filter string) []string {
	events := s.cachedList(cache.Key{Category: cache.All, Filter: filter})
	seen := make(map[string]bool)
	var out []string
	for i := range events {
		if !seen[events[i].Category] {
			seen[events[i].Category] = true
			out = append(out, events[i].Category)
		}
	}
	sort.Strings(out)
	return out
}

// UpcomingEvents runs one rollover sweep, then returns up to limit top-level
// events whose date is today or later, soonest first.
func (s *Store) UpcomingEvents(ctx context.Context, limit int) []models.Event {
	s.Sweep(ctx)

	now := s.clock()
	var out []models.Event
	for i := range s.events {
		e := s.events[i]
		if e.IsChild() || e.DaysRemaining(now, s.loc) < 0 {
			continue
		}
		out = append(out, e)
	}
	s.sortEvents(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// ChildEvents returns the direct children of the given parent, sorted
// ascending by days remaining. A dangling or unknown parent id yields an
// empty slice.
func (s *Store) ChildEvents(parentID string) []models.Event {
	var out []models.Event
	for i := range s.events {
		if p := s.events[i].ParentID; p != nil && *p == parentID {
			out = append(out, s.events[i])
		}
	}
	s.sortEvents(out)
	return out
}

// cachedList serves a listing from the cache, computing and memoizing it on
// a miss. Callers always receive their own copy.
func (s *Store) cachedList(key cache.Key) []models.Event {
	if list, ok := s.cache.Get(key); ok {
		return slices.Clone(list)
	}
	list := s.computeList(key)
	s.cache.Put(key, list)
	return slices.Clone(list)
}

// computeList is the from-scratch recomputation the cache memoizes: all
// non-child events matching key, sorted.
func (s *Store) computeList(key cache.Key) []models.Event {
	var out []models.Event
	for i := range s.events {
		e := s.events[i]
		if e.IsChild() || !key.Matches(&e) {
			continue
		}
		out = append(out, e)
	}
	s.sortEvents(out)
	return out
}
