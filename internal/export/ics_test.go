package export

import (
	"strings"
	"testing"
	"time"

	"github.com/retiretime/retiretime/internal/models"
)

func TestCalendarSerialization(t *testing.T) {
	now := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	notes := "book the venue"
	parent := "p1"
	month, day := 6, 20

	events := []models.Event{
		{
			ID: "p1", Name: "Retirement Day", Date: now.AddDate(5, 0, 0),
			Type: models.EventTypeCountdown, Notes: &notes,
			Category: "Milestones", RepeatType: models.RepeatNone,
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "r1", Name: "Summer Party", Date: now.AddDate(0, 3, 10),
			Type: models.EventTypeCustom, Category: "Holidays",
			RepeatType: models.RepeatYearly,
			RepeatSettings: &models.RepeatSettings{
				Interval: 1, Month: &month, DayOfMonth: &day,
			},
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "c1", Name: "Child", Date: now.AddDate(1, 0, 0),
			Type: models.EventTypeCountdown, Category: "Milestones",
			RepeatType: models.RepeatNone, ParentID: &parent,
			CreatedAt: now, UpdatedAt: now,
		},
	}

	var sb strings.Builder
	if err := Write(&sb, events, time.UTC); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	out := sb.String()

	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"SUMMARY:Retirement Day",
		"DESCRIPTION:book the venue",
		"CATEGORIES:Milestones",
		"SUMMARY:Summer Party",
		"RRULE:FREQ=YEARLY;BYMONTHDAY=20;BYMONTH=6",
		"END:VCALENDAR",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("serialized calendar missing %q", want)
		}
	}

	// Child events stay app-internal.
	if strings.Contains(out, "SUMMARY:Child") {
		t.Error("child event leaked into the export")
	}
}

func TestRuleString(t *testing.T) {
	weekday := 1
	tests := []struct {
		name  string
		event models.Event
		want  string
	}{
		{
			"daily",
			models.Event{RepeatType: models.RepeatDaily},
			"FREQ=DAILY",
		},
		{
			"weekly with day and interval",
			models.Event{
				RepeatType:     models.RepeatWeekly,
				RepeatSettings: &models.RepeatSettings{Interval: 2, Weekday: &weekday},
			},
			"FREQ=WEEKLY;INTERVAL=2;BYDAY=MO",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ruleString(&tt.event); got != tt.want {
				t.Errorf("ruleString() = %q, want %q", got, tt.want)
			}
		})
	}
}
