// Package repository provides the shared-storage collaborator: a key-value
// blob store holding the serialized event collection, written by the app
// process and read by the widget process.
package repository

import "context"

// Store is the persistence contract the event store and the widget bridge
// share. Load returns (nil, nil) when no collection has been saved yet.
// Save replaces the whole blob atomically; there are no partial writes.
type Store interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}
