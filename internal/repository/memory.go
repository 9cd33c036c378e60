package repository

import "context"

// MemoryStore is an in-memory Store used by tests and ephemeral runs. Error
// fields, when set, are returned by the corresponding call so failure paths
// can be exercised.
type MemoryStore struct {
	Data    []byte
	LoadErr error
	SaveErr error

	LoadCalls int
	SaveCalls int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load(ctx context.Context) ([]byte, error) {
	m.LoadCalls++
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Data, nil
}

func (m *MemoryStore) Save(ctx context.Context, data []byte) error {
	m.SaveCalls++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Data = append([]byte(nil), data...)
	return nil
}
