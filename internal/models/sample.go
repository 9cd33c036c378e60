package models

import "time"

// SampleEvents is the fixed fallback dataset used when persisted storage is
// empty or fails to decode. Both the store and the widget bridge fall back to
// the same set so first-run screens stay consistent.
func SampleEvents(now time.Time) []Event {
	year := now.Year()
	newYear := time.Date(year+1, time.January, 1, 0, 0, 0, 0, now.Location())

	return []Event{
		{
			ID:         "sample-retirement",
			Name:       "Retirement Day",
			Date:       now.AddDate(5, 0, 0),
			Type:       EventTypeCountdown,
			Category:   "Milestones",
			RepeatType: RepeatNone,
			CreatedAt:  now,
			UpdatedAt:  now,
		},
		{
			ID:       "sample-birthday",
			Name:     "My Birthday",
			Date:     now.AddDate(0, 3, 0),
			Type:     EventTypeBirthday,
			Category: DefaultCategory,
			RepeatType: RepeatYearly,
			RepeatSettings: &RepeatSettings{
				Interval: 1,
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:         "sample-new-year",
			Name:       "New Year",
			Date:       newYear,
			Type:       EventTypeCountdown,
			Category:   "Holidays",
			RepeatType: RepeatYearly,
			RepeatSettings: &RepeatSettings{
				Interval: 1,
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}
