package audit

import (
	"context"
	"sync"
)

// MemorySink — хранилище событий в памяти процесса. Система по контракту
// ничего не персистит, так что память процесса и есть «база» audit trail;
// в тестах sink заодно служит дублером.
type MemorySink struct {
	mu     sync.Mutex
	events []Event
}

func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

func (m *MemorySink) WriteBatch(_ context.Context, events []Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, events...)
	return nil
}

// Events отдает копию накопленного, чтобы читатель не гонялся с воркером.
func (m *MemorySink) Events() []Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Event, len(m.events))
	copy(out, m.events)
	return out
}

func (m *MemorySink) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.events)
}
