package store

import (
	"testing"

	"github.com/retiretime/retiretime/internal/logger"
)

func TestBusDeliversToAllObservers(t *testing.T) {
	b := NewBus(logger.Default())

	var first, second []string
	b.Subscribe(EventAdded, func(n Notification, p Payload) {
		first = append(first, p.EventIDs...)
	})
	b.Subscribe(EventAdded, func(n Notification, p Payload) {
		second = append(second, p.EventIDs...)
	})

	b.Publish(EventAdded, "e1", "e2")

	if len(first) != 2 || len(second) != 2 {
		t.Errorf("deliveries = %v / %v, want both observers to see e1,e2", first, second)
	}
}

func TestBusIsolatesPanickingObserver(t *testing.T) {
	b := NewBus(logger.Default())

	delivered := false
	b.Subscribe(EventDeleted, func(n Notification, p Payload) {
		panic("observer bug")
	})
	b.Subscribe(EventDeleted, func(n Notification, p Payload) {
		delivered = true
	})

	b.Publish(EventDeleted, "e1")

	if !delivered {
		t.Error("panicking observer blocked delivery to the next one")
	}
}

func TestBusIgnoresUnsubscribedNotifications(t *testing.T) {
	b := NewBus(logger.Default())
	b.Publish(CacheCleared) // no observers; must not panic
}
