package models

import (
	"testing"
	"time"
)

var testNow = time.Date(2026, time.March, 10, 15, 30, 0, 0, time.UTC)

func TestDaysRemaining(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want int
	}{
		{"today", testNow, 0},
		{"today midnight", time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC), 0},
		{"today late evening", time.Date(2026, time.March, 10, 23, 59, 0, 0, time.UTC), 0},
		{"tomorrow", testNow.AddDate(0, 0, 1), 1},
		{"yesterday", testNow.AddDate(0, 0, -1), -1},
		{"ten days out", testNow.AddDate(0, 0, 10), 10},
		{"a year back", testNow.AddDate(-1, 0, 0), -365},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Event{Date: tt.date}
			if got := e.DaysRemaining(testNow, time.UTC); got != tt.want {
				t.Errorf("DaysRemaining() = %d, want %d", got, tt.want)
			}
		})
	}
}

// The count must move by exactly one for each day the target moves, in both
// directions.
func TestDaysRemainingMonotonic(t *testing.T) {
	for offset := -30; offset <= 30; offset++ {
		e := Event{Date: testNow.AddDate(0, 0, offset)}
		if got := e.DaysRemaining(testNow, time.UTC); got != offset {
			t.Fatalf("offset %d: DaysRemaining() = %d", offset, got)
		}
	}
}

// A time-of-day component leaking into the stored timestamp must not shift
// the day count when the calendar location differs from the timestamp's.
func TestDaysRemainingIgnoresTimeOfDay(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatal(err)
	}
	// 02:00 UTC on March 11 is still March 10 in New York.
	e := Event{Date: time.Date(2026, time.March, 11, 2, 0, 0, 0, time.UTC)}
	if got := e.DaysRemaining(testNow, loc); got != 0 {
		t.Errorf("DaysRemaining() = %d, want 0", got)
	}
}

func TestIsCountdown(t *testing.T) {
	future := testNow.AddDate(0, 0, 5)
	past := testNow.AddDate(0, 0, -5)

	tests := []struct {
		name  string
		event Event
		want  bool
	}{
		{"countdown future", Event{Type: EventTypeCountdown, Date: future}, true},
		{"countdown past", Event{Type: EventTypeCountdown, Date: past}, true},
		{"custom future", Event{Type: EventTypeCustom, Date: future}, true},
		{"custom past", Event{Type: EventTypeCustom, Date: past}, false},
		{"custom today", Event{Type: EventTypeCustom, Date: testNow}, false},
		{"countup future", Event{Type: EventTypeCountup, Date: future}, false},
		{"birthday future", Event{Type: EventTypeBirthday, Date: future}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.event.IsCountdown(testNow, time.UTC); got != tt.want {
				t.Errorf("IsCountdown() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormattedDays(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{"today", testNow, "Today"},
		{"one ahead", testNow.AddDate(0, 0, 1), "1 day remaining"},
		{"many ahead", testNow.AddDate(0, 0, 14), "14 days remaining"},
		{"one behind", testNow.AddDate(0, 0, -1), "1 day elapsed"},
		{"many behind", testNow.AddDate(0, 0, -90), "90 days elapsed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Event{Date: tt.date}
			if got := e.FormattedDays(testNow, time.UTC); got != tt.want {
				t.Errorf("FormattedDays() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewChildEventInherits(t *testing.T) {
	parent := NewEvent("Retirement", testNow.AddDate(5, 0, 0), EventTypeCountdown)
	parent.Category = "Milestones"

	child := NewChildEvent(parent, "Last mortgage payment", testNow.AddDate(2, 0, 0), nil)

	if child.Type != parent.Type {
		t.Errorf("child type = %s, want %s", child.Type, parent.Type)
	}
	if child.Category != parent.Category {
		t.Errorf("child category = %s, want %s", child.Category, parent.Category)
	}
	if child.ParentID == nil || *child.ParentID != parent.ID {
		t.Error("child does not reference parent")
	}
	if child.ID == parent.ID || child.ID == "" {
		t.Error("child did not get its own id")
	}
}
