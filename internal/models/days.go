package models

import (
	"fmt"
	"time"
)

// dayAnchor truncates t to its calendar date in loc and rebuilds that date at
// midnight UTC. Subtracting two anchors then counts whole calendar days
// exactly, unaffected by daylight-saving shifts or any time-of-day component
// leaking into the stored timestamp.
func dayAnchor(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysRemaining returns the whole-day difference between the event date and
// asOf. Positive means the date is in the future, negative in the past, zero
// today.
func (e *Event) DaysRemaining(asOf time.Time, loc *time.Location) int {
	return int(dayAnchor(e.Date, loc).Sub(dayAnchor(asOf, loc)) / (24 * time.Hour))
}

// IsCountdown reports the display orientation: countdown events always count
// down, custom events count down only while their date is still ahead.
func (e *Event) IsCountdown(asOf time.Time, loc *time.Location) bool {
	if e.Type == EventTypeCountdown {
		return true
	}
	return e.Type == EventTypeCustom && e.DaysRemaining(asOf, loc) > 0
}

// FormattedDays renders the day count as one of "Today", "N days remaining"
// or "N days elapsed".
func (e *Event) FormattedDays(asOf time.Time, loc *time.Location) string {
	days := e.DaysRemaining(asOf, loc)
	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "1 day remaining"
	case days > 1:
		return fmt.Sprintf("%d days remaining", days)
	case days == -1:
		return "1 day elapsed"
	default:
		return fmt.Sprintf("%d days elapsed", -days)
	}
}

// FormattedDate renders the event date for display.
func (e *Event) FormattedDate(loc *time.Location) string {
	return e.Date.In(loc).Format("Jan 2, 2006")
}
