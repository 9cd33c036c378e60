package models

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

// rruleWeekdays maps 0=Sunday..6=Saturday to rrule weekday constants.
var rruleWeekdays = []rrule.Weekday{
	rrule.SU, rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA,
}

// AdvanceOccurrence returns a copy of the event with its date moved to the
// first occurrence strictly after the current date, and LastOccurrence set to
// the date being replaced. The recurrence stays anchored at the original
// occurrence (LastOccurrence if set, otherwise the current date) so interval
// math does not drift across repeated rollovers. A reminder date, if present,
// keeps its original offset from the event date. The receiver is not
// modified.
func (e Event) AdvanceOccurrence(loc *time.Location) (Event, error) {
	if !e.IsRepeating() {
		return e, fmt.Errorf("event %s does not repeat", e.ID)
	}

	anchor := e.Date
	if e.LastOccurrence != nil {
		anchor = *e.LastOccurrence
	}

	rule, err := e.recurrenceRule(anchor.In(loc))
	if err != nil {
		return e, fmt.Errorf("building recurrence rule for event %s: %w", e.ID, err)
	}

	next := rule.After(e.Date.In(loc), false)
	if next.IsZero() {
		return e, fmt.Errorf("no next occurrence for event %s", e.ID)
	}

	replaced := e.Date
	advanced := e
	advanced.Date = next
	advanced.LastOccurrence = &replaced
	if e.ReminderDate != nil {
		reminder := next.Add(e.ReminderDate.Sub(e.Date))
		advanced.ReminderDate = &reminder
	}
	return advanced, nil
}

// recurrenceRule translates the repeat type and settings into an RRULE
// anchored at base.
func (e *Event) recurrenceRule(base time.Time) (*rrule.RRule, error) {
	opt := rrule.ROption{Dtstart: base, Interval: 1}

	switch e.RepeatType {
	case RepeatDaily:
		opt.Freq = rrule.DAILY
	case RepeatWeekly:
		opt.Freq = rrule.WEEKLY
	case RepeatMonthly:
		opt.Freq = rrule.MONTHLY
	case RepeatYearly:
		opt.Freq = rrule.YEARLY
	default:
		return nil, fmt.Errorf("unsupported repeat type %q", e.RepeatType)
	}

	if s := e.RepeatSettings; s != nil {
		if s.Interval > 0 {
			opt.Interval = s.Interval
		}
		if s.Weekday != nil && e.RepeatType == RepeatWeekly {
			opt.Byweekday = []rrule.Weekday{rruleWeekdays[*s.Weekday%7]}
		}
		if s.DayOfMonth != nil && (e.RepeatType == RepeatMonthly || e.RepeatType == RepeatYearly) {
			opt.Bymonthday = []int{*s.DayOfMonth}
		}
		if s.Month != nil && e.RepeatType == RepeatYearly {
			opt.Bymonth = []int{*s.Month}
		}
	}

	return rrule.NewRRule(opt)
}
