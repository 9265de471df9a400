package localstore

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryKV guarda los blobs en un map. Para tests y STORE=memory.
type MemoryKV struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{blobs: make(map[string][]byte)}
}

func (m *MemoryKV) Save(ctx context.Context, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[key] = b
	return nil
}

func (m *MemoryKV) Load(ctx context.Context, key string, dst any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.blobs[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(b, dst); err != nil {
		// blob corrupto: se descarta y se reporta ausente
		delete(m.blobs, key)
		return false, nil
	}
	return true, nil
}

func (m *MemoryKV) Remove(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.blobs, key)
	return nil
}

// Seed mete un blob crudo sin pasar por el codec. Solo para tests.
func (m *MemoryKV) Seed(key string, raw []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[key] = raw
}
