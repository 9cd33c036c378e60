// Package export renders the event collection as an iCalendar document so
// the user's events can be carried into a regular calendar app.
package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/retiretime/retiretime/internal/models"
)

// Calendar builds a VCALENDAR with one all-day VEVENT per top-level event.
// Repeating events carry a matching RRULE. Child events are skipped; they
// are app-internal detail rows.
func Calendar(events []models.Event, loc *time.Location) *ics.Calendar {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//RetireTime//Event Export//EN")

	for i := range events {
		e := &events[i]
		if e.IsChild() {
			continue
		}
		ve := cal.AddEvent(e.ID)
		ve.SetCreatedTime(e.CreatedAt)
		ve.SetDtStampTime(e.UpdatedAt)
		ve.SetSummary(e.Name)
		day := e.Date.In(loc)
		ve.SetAllDayStartAt(day)
		ve.SetAllDayEndAt(day.AddDate(0, 0, 1))
		if e.Notes != nil {
			ve.SetDescription(*e.Notes)
		}
		ve.SetProperty(ics.ComponentPropertyCategories, e.Category)
		if e.IsRepeating() {
			ve.AddRrule(ruleString(e))
		}
	}
	return cal
}

// Write serializes the collection to w.
func Write(w io.Writer, events []models.Event, loc *time.Location) error {
	if err := Calendar(events, loc).SerializeTo(w); err != nil {
		return fmt.Errorf("failed to serialize calendar: %w", err)
	}
	return nil
}

// icsWeekdays maps 0=Sunday..6=Saturday to RRULE BYDAY codes.
var icsWeekdays = []string{"SU", "MO", "TU", "WE", "TH", "FR", "SA"}

// ruleString translates the event's repeat configuration to RRULE text.
func ruleString(e *models.Event) string {
	var freq string
	switch e.RepeatType {
	case models.RepeatDaily:
		freq = "DAILY"
	case models.RepeatWeekly:
		freq = "WEEKLY"
	case models.RepeatMonthly:
		freq = "MONTHLY"
	case models.RepeatYearly:
		freq = "YEARLY"
	default:
		return ""
	}

	parts := []string{"FREQ=" + freq}
	if s := e.RepeatSettings; s != nil {
		if s.Interval > 1 {
			parts = append(parts, fmt.Sprintf("INTERVAL=%d", s.Interval))
		}
		if s.Weekday != nil && e.RepeatType == models.RepeatWeekly {
			parts = append(parts, "BYDAY="+icsWeekdays[*s.Weekday%7])
		}
		if s.DayOfMonth != nil && (e.RepeatType == models.RepeatMonthly || e.RepeatType == models.RepeatYearly) {
			parts = append(parts, fmt.Sprintf("BYMONTHDAY=%d", *s.DayOfMonth))
		}
		if s.Month != nil && e.RepeatType == models.RepeatYearly {
			parts = append(parts, fmt.Sprintf("BYMONTH=%d", *s.Month))
		}
	}
	return strings.Join(parts, ";")
}
