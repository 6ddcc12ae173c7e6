package store

import (
	"context"
	"sort"
	"sync"
)

// NewMemory returns a Persistence that lives only as long as the process.
// Watch reports writes made through the same instance.
func NewMemory() Persistence {
	return &memory{values: make(map[string][]byte)}
}

// Disabled returns a Persistence that has nothing stored and refuses every
// write, the equivalent of a browser with storage turned off.
func Disabled() Persistence {
	return disabled{}
}

type memory struct {
	mu       sync.Mutex
	values   map[string][]byte
	watchers []chan Event
}

func (m *memory) Read(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (m *memory) Write(key string, val []byte) error {
	cp := make([]byte, len(val))
	copy(cp, val)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = cp
	m.notify(key)
	return nil
}

func (m *memory) Erase(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	m.notify(key)
	return nil
}

func (m *memory) Keys(_ context.Context) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (m *memory) Watch(ctx context.Context) (<-chan Event, error) {
	ch := make(chan Event, 64)
	m.mu.Lock()
	m.watchers = append(m.watchers, ch)
	m.mu.Unlock()

	go func() {
		<-ctx.Done()
		m.mu.Lock()
		defer m.mu.Unlock()
		for i, w := range m.watchers {
			if w == ch {
				m.watchers = append(m.watchers[:i], m.watchers[i+1:]...)
				break
			}
		}
		close(ch)
	}()
	return ch, nil
}

// notify must be called with m.mu held.
func (m *memory) notify(key string) {
	for _, w := range m.watchers {
		select {
		case w <- Event{Key: key}:
		default:
		}
	}
}

type disabled struct{}

func (disabled) Read(string) ([]byte, error) { return nil, ErrNotFound }
func (disabled) Write(string, []byte) error { return ErrDisabled }
func (disabled) Erase(string) error { return ErrDisabled }
func (disabled) Keys(context.Context) []string { return nil }

func (disabled) Watch(ctx context.Context) (<-chan Event, error) {
	ch := make(chan Event)
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch, nil
}
