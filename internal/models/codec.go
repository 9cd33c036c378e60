package models

import (
	"encoding/json"
	"fmt"
)

// EncodeEvents serializes the full collection as an ordered, field-name-keyed
// JSON array. The whole collection is always written wholesale; there are no
// delta writes.
func EncodeEvents(events []Event) ([]byte, error) {
	data, err := json.Marshal(events)
	if err != nil {
		return nil, fmt.Errorf("failed to encode events: %w", err)
	}
	return data, nil
}

// DecodeEvents deserializes a collection previously written by EncodeEvents.
// Unknown fields are ignored and missing optional fields stay at their zero
// value, so the format remains superset-compatible between the app and the
// widget process.
func DecodeEvents(data []byte) ([]Event, error) {
	var events []Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("failed to decode events: %w", err)
	}
	return events, nil
}
