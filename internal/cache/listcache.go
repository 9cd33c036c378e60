// Package cache memoizes filtered, sorted event listings so large collections
// are not re-filtered on every read. The store keeps it coherent with the
// authoritative collection: incremental maintenance for plain single-event
// mutations, full invalidation for anything structural.
package cache

import (
	"github.com/retiretime/retiretime/internal/models"
)

// All is the sentinel matching every category in either key slot.
const All = "All"

// Key addresses one memoized listing: a category listing, or a composite
// (category, filter) pair.
type Key struct {
	Category string
	Filter   string
}

// Matches reports whether a non-child event belongs to the listing addressed
// by the key.
func (k Key) Matches(e *models.Event) bool {
	if k.Category != All && k.Category != e.Category {
		return false
	}
	if k.Filter != All && k.Filter != e.Category {
		return false
	}
	return true
}

// ListCache maps keys to sorted top-level event lists. It is not safe for
// concurrent use; the store is the single writer and runs on one execution
// context.
type ListCache struct {
	entries map[Key][]models.Event
	sort    func([]models.Event)
}

// New creates an empty cache. sort is applied to an entry after every
// incremental change so entries stay ordered ascending by days remaining.
func New(sort func([]models.Event)) *ListCache {
	return &ListCache{
		entries: make(map[Key][]models.Event),
		sort:    sort,
	}
}

// Get returns the memoized listing for key, or ok=false on a miss.
func (c *ListCache) Get(key Key) ([]models.Event, bool) {
	list, ok := c.entries[key]
	return list, ok
}

// Put stores a freshly computed listing under key.
func (c *ListCache) Put(key Key, list []models.Event) {
	c.entries[key] = list
}

// Apply performs one incremental maintenance step for a mutation described by
// an optional removed event and an optional inserted event (insert: removed
// nil; delete: inserted nil; update: both set). Child involvement or a
// category change falls back to full invalidation. Only entries that already
// exist are touched; keys never queried are left unpopulated.
func (c *ListCache) Apply(removed, inserted *models.Event) {
	if removed != nil && removed.IsChild() || inserted != nil && inserted.IsChild() {
		c.InvalidateAll()
		return
	}
	if removed != nil && inserted != nil && removed.Category != inserted.Category {
		c.InvalidateAll()
		return
	}

	for key, list := range c.entries {
		changed := false
		if removed != nil {
			for i := range list {
				if list[i].ID == removed.ID {
					list = append(list[:i], list[i+1:]...)
					changed = true
					break
				}
			}
		}
		if inserted != nil && key.Matches(inserted) {
			list = append(list, *inserted)
			changed = true
		}
		if changed {
			c.sort(list)
			c.entries[key] = list
		}
	}
}

// InvalidateAll drops every entry. Used for deletes, rollovers and any other
// structural change with no incremental path.
func (c *ListCache) InvalidateAll() {
	c.entries = make(map[Key][]models.Event)
}

// Len returns the number of populated entries.
func (c *ListCache) Len() int {
	return len(c.entries)
}
