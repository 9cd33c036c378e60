package store

import (
	"fmt"

	"github.com/retiretime/retiretime/internal/logger"
)

// Notification names the in-process change broadcasts the store emits.
type Notification string

const (
	EventAdded   Notification = "event.added"
	EventUpdated Notification = "event.updated"
	EventDeleted Notification = "event.deleted"
	CacheCleared Notification = "cache.cleared"
	ImageChanged Notification = "event.image_changed"
)

// Payload identifies the event(s) a notification concerns. Empty for
// broadcasts with no specific subject (cache cleared).
type Payload struct {
	EventIDs []string
}

// Observer receives one notification. Delivery order across observers is
// unspecified.
type Observer func(n Notification, p Payload)

// Bus broadcasts named notifications to any number of observers. A panicking
// observer is isolated: it neither stops other observers nor corrupts the
// store.
type Bus struct {
	observers map[Notification][]Observer
	log       logger.Logger
}

func NewBus(log logger.Logger) *Bus {
	return &Bus{
		observers: make(map[Notification][]Observer),
		log:       log,
	}
}

// Subscribe registers fn for notifications named n.
func (b *Bus) Subscribe(n Notification, fn Observer) {
	b.observers[n] = append(b.observers[n], fn)
}

// Publish delivers the notification to every observer subscribed to n.
func (b *Bus) Publish(n Notification, eventIDs ...string) {
	p := Payload{EventIDs: eventIDs}
	for _, fn := range b.observers[n] {
		b.deliver(n, p, fn)
	}
}

func (b *Bus) deliver(n Notification, p Payload, fn Observer) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Error("observer panicked",
				logger.String("notification", string(n)),
				logger.Err(fmt.Errorf("%v", r)))
		}
	}()
	fn(n, p)
}
