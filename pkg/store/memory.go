package store

import (
	"context"
	"sync"
)

type memoryKV struct {
	mu       sync.Mutex
	values   map[string][]byte
	watchers map[string][]chan Event
}

// NewMemory returns a process-local KV. Watch only observes writes made
// through the same instance.
func NewMemory() KV {
	return &memoryKV{
		values:   make(map[string][]byte),
		watchers: make(map[string][]chan Event),
	}
}

func (m *memoryKV) Read(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), val...), nil
}

func (m *memoryKV) Write(key string, val []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = append([]byte(nil), val...)
	m.notifyLocked(key)
	return nil
}

func (m *memoryKV) Erase(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	m.notifyLocked(key)
	return nil
}

func (m *memoryKV) notifyLocked(key string) {
	for _, ch := range m.watchers[key] {
		select {
		case ch <- Event{Key: key}:
		default:
		}
	}
}

func (m *memoryKV) Watch(ctx context.Context, key string) (<-chan Event, error) {
	ch := make(chan Event, 16)
	m.mu.Lock()
	m.watchers[key] = append(m.watchers[key], ch)
	m.mu.Unlock()

	go func() {
		<-ctx.Done()
		m.mu.Lock()
		defer m.mu.Unlock()
		list := m.watchers[key]
		for i, c := range list {
			if c == ch {
				m.watchers[key] = append(list[:i], list[i+1:]...)
				break
			}
		}
		close(ch)
	}()
	return ch, nil
}

func (m *memoryKV) Close() error {
	return nil
}
