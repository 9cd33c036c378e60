package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCategory is the label applied when an event has no category set.
const DefaultCategory = "Uncategorized"

// EventType classifies how an event is displayed and counted.
type EventType string

const (
	EventTypeBirthday    EventType = "birthday"
	EventTypeAnniversary EventType = "anniversary"
	EventTypeCountdown   EventType = "countdown"
	EventTypeCountup     EventType = "countup"
	EventTypeCustom      EventType = "custom"
)

// RepeatType controls whether and how an event rolls over once its date passes.
type RepeatType string

const (
	RepeatNone    RepeatType = "none"
	RepeatDaily   RepeatType = "daily"
	RepeatWeekly  RepeatType = "weekly"
	RepeatMonthly RepeatType = "monthly"
	RepeatYearly  RepeatType = "yearly"
)

// ReminderOffset maps to a signed delta applied to the event date to derive a
// default reminder instant.
type ReminderOffset string

const (
	OffsetAtTime     ReminderOffset = "at_time"
	OffsetHourBefore ReminderOffset = "1h_before"
	OffsetDayBefore  ReminderOffset = "1d_before"
	OffsetWeekBefore ReminderOffset = "1w_before"
)

// Duration returns the signed delta for the offset relative to the event date.
func (o ReminderOffset) Duration() time.Duration {
	switch o {
	case OffsetHourBefore:
		return -time.Hour
	case OffsetDayBefore:
		return -24 * time.Hour
	case OffsetWeekBefore:
		return -7 * 24 * time.Hour
	default:
		return 0
	}
}

// RepeatSettings carries the structured detail for a repeating event. Only
// meaningful when the owning event's RepeatType is not RepeatNone.
type RepeatSettings struct {
	// Weekday is 0=Sunday..6=Saturday, used by weekly repeats.
	Weekday *int `json:"weekday,omitempty" validate:"omitempty,min=0,max=6"`
	// DayOfMonth is used by monthly and yearly repeats.
	DayOfMonth *int `json:"day_of_month,omitempty" validate:"omitempty,min=1,max=31"`
	// Month is 1=January..12=December, used by yearly repeats.
	Month    *int `json:"month,omitempty" validate:"omitempty,min=1,max=12"`
	Interval int  `json:"interval" validate:"min=1"`
}

// Event is a named, dated record the user tracks a day-count against.
// Optional fields are pointers so the persisted form can omit them and both
// consuming processes tolerate their absence.
type Event struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Date     time.Time `json:"date"`
	Type     EventType `json:"type" validate:"oneof=birthday anniversary countdown countup custom"`
	Notes    *string   `json:"notes,omitempty"`
	Category string    `json:"category"`

	ReminderEnabled   bool           `json:"reminder_enabled"`
	ReminderDate      *time.Time     `json:"reminder_date,omitempty"`
	ReminderOffset    ReminderOffset `json:"reminder_offset,omitempty"`
	NotificationSound string         `json:"notification_sound,omitempty"`
	VibrationEnabled  bool           `json:"vibration_enabled"`

	RepeatType     RepeatType      `json:"repeat_type" validate:"oneof=none daily weekly monthly yearly"`
	RepeatSettings *RepeatSettings `json:"repeat_settings,omitempty"`
	// LastOccurrence records the date basis used by the most recent rollover
	// so interval math stays correct across repeated rollovers.
	LastOccurrence *time.Time `json:"last_occurrence,omitempty"`

	// ParentID links a child event to its parent. One level only.
	ParentID *string `json:"parent_id,omitempty"`

	// Image and frame fields are opaque to the core; they are consumed by the
	// external compositing collaborator and by image-cache key derivation.
	ImageName           *string `json:"image_name,omitempty"`
	FrameStyleName      *string `json:"frame_style_name,omitempty"`
	FrameBackgroundName *string `json:"frame_background_name,omitempty"`
	ImageScale          float64 `json:"image_scale,omitempty"`
	ImageOffsetX        float64 `json:"image_offset_x,omitempty"`
	ImageOffsetY        float64 `json:"image_offset_y,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewEvent creates an event with a fresh id and defaulted type/category.
func NewEvent(name string, date time.Time, eventType EventType) *Event {
	if eventType == "" {
		eventType = EventTypeCustom
	}
	return &Event{
		ID:         uuid.NewString(),
		Name:       name,
		Date:       date,
		Type:       eventType,
		Category:   DefaultCategory,
		RepeatType: RepeatNone,
	}
}

// NewChildEvent creates a sub-entry under parent, inheriting its type and
// category.
func NewChildEvent(parent *Event, name string, date time.Time, notes *string) *Event {
	parentID := parent.ID
	return &Event{
		ID:         uuid.NewString(),
		Name:       name,
		Date:       date,
		Type:       parent.Type,
		Notes:      notes,
		Category:   parent.Category,
		RepeatType: RepeatNone,
		ParentID:   &parentID,
	}
}

// IsChild reports whether the event is a sub-entry of another event.
func (e *Event) IsChild() bool {
	return e.ParentID != nil
}

// IsRepeating reports whether the event rolls over after its date passes.
func (e *Event) IsRepeating() bool {
	return e.RepeatType != RepeatNone && e.RepeatType != ""
}

// ImageFieldsEqual reports whether the image and frame configuration of two
// events is identical. Used to decide whether an image-changed notification
// must be emitted on update.
func ImageFieldsEqual(a, b *Event) bool {
	return strPtrEqual(a.ImageName, b.ImageName) &&
		strPtrEqual(a.FrameStyleName, b.FrameStyleName) &&
		strPtrEqual(a.FrameBackgroundName, b.FrameBackgroundName) &&
		a.ImageScale == b.ImageScale &&
		a.ImageOffsetX == b.ImageOffsetX &&
		a.ImageOffsetY == b.ImageOffsetY
}

func strPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
