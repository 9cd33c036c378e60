package widget

import (
	"context"
	"testing"
	"time"

	"github.com/retiretime/retiretime/internal/logger"
	"github.com/retiretime/retiretime/internal/models"
	"github.com/retiretime/retiretime/internal/repository"
)

var testNow = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

func testClock() time.Time { return testNow }

func seedRepo(t *testing.T, events []models.Event) *repository.MemoryStore {
	t.Helper()
	repo := repository.NewMemoryStore()
	data, err := models.EncodeEvents(events)
	if err != nil {
		t.Fatal(err)
	}
	repo.Data = data
	return repo
}

func widgetEvent(id string, daysOut int) models.Event {
	return models.Event{
		ID:       id,
		Name:     id,
		Date:     testNow.AddDate(0, 0, daysOut),
		Type:     models.EventTypeCountdown,
		Category: models.DefaultCategory,
	}
}

// The widget orders by absolute day distance: nearest in time, in either
// direction, first. Deliberately different from the store's ascending sort.
func TestSnapshotAbsOrdering(t *testing.T) {
	parent := "far"
	child := widgetEvent("child", 0)
	child.ParentID = &parent

	repo := seedRepo(t, []models.Event{
		widgetEvent("far", 5),
		widgetEvent("past", -3),
		widgetEvent("near", 1),
		child,
	})
	b := NewBridge(repo, logger.Default(), testClock, time.UTC, nil)

	entries := b.Snapshot(context.Background(), SizeLarge)

	got := make([]string, len(entries))
	for i, e := range entries {
		got[i] = e.ID
	}
	want := []string{"near", "past", "far"}
	if len(got) != len(want) {
		t.Fatalf("Snapshot() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Snapshot() = %v, want %v", got, want)
		}
	}
}

func TestSnapshotSizeClassLimits(t *testing.T) {
	repo := seedRepo(t, []models.Event{
		widgetEvent("a", 1), widgetEvent("b", 2), widgetEvent("c", 3),
		widgetEvent("d", 4), widgetEvent("e", 5), widgetEvent("f", 6),
		widgetEvent("g", 7),
	})
	b := NewBridge(repo, logger.Default(), testClock, time.UTC, nil)

	tests := []struct {
		size SizeClass
		want int
	}{
		{SizeSmall, 1},
		{SizeMedium, 3},
		{SizeLarge, 6},
	}
	for _, tt := range tests {
		if got := len(b.Snapshot(context.Background(), tt.size)); got != tt.want {
			t.Errorf("Snapshot(%s) returned %d entries, want %d", tt.size, got, tt.want)
		}
	}
}

func TestSnapshotFallsBackOnGarbage(t *testing.T) {
	repo := repository.NewMemoryStore()
	repo.Data = []byte("definitely not a collection")
	b := NewBridge(repo, logger.Default(), testClock, time.UTC, nil)

	entries := b.Snapshot(context.Background(), SizeLarge)
	if len(entries) == 0 {
		t.Fatal("expected sample dataset on decode failure")
	}
}

func TestSnapshotFallsBackOnEmptyStorage(t *testing.T) {
	repo := repository.NewMemoryStore()
	b := NewBridge(repo, logger.Default(), testClock, time.UTC, nil)

	entries := b.Snapshot(context.Background(), SizeMedium)
	if len(entries) == 0 {
		t.Fatal("expected sample dataset on empty storage")
	}
}

func TestSnapshotEmptyCollectionStaysEmpty(t *testing.T) {
	// An intact blob holding zero events is a deliberately emptied
	// collection; samples are only for missing or unreadable storage.
	repo := seedRepo(t, []models.Event{})
	b := NewBridge(repo, logger.Default(), testClock, time.UTC, nil)

	if entries := b.Snapshot(context.Background(), SizeMedium); len(entries) != 0 {
		t.Fatalf("Snapshot() = %d entries, want 0", len(entries))
	}
}

func TestSnapshotFallsBackOnLoadError(t *testing.T) {
	repo := repository.NewMemoryStore()
	repo.LoadErr = context.DeadlineExceeded
	b := NewBridge(repo, logger.Default(), testClock, time.UTC, nil)

	entries := b.Snapshot(context.Background(), SizeMedium)
	if len(entries) == 0 {
		t.Fatal("expected sample dataset on load error")
	}
}
