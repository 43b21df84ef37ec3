package admincache

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/templui/folio/internal/model"
)

// Memory keeps each session's rows in process. Entries expire ttl after
// their last Replace, like the Redis keys; a ttl of zero keeps them until
// Drop.
type Memory struct {
	mu       sync.RWMutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]entry
}

type entry struct {
	items   []model.Item
	expires time.Time
}

func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]entry),
	}
}

func (m *Memory) expired(e entry, now time.Time) bool {
	return !e.expires.IsZero() && !now.Before(e.expires)
}

func (m *Memory) Replace(_ context.Context, sessionID string, items []model.Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	// sweep sessions that were never dropped
	for id, e := range m.sessions {
		if m.expired(e, now) {
			delete(m.sessions, id)
		}
	}

	e := entry{items: slices.Clone(items)}
	if m.ttl > 0 {
		e.expires = now.Add(m.ttl)
	}
	m.sessions[sessionID] = e
	return nil
}

func (m *Memory) Items(_ context.Context, sessionID string) ([]model.Item, bool, error) {
	m.mu.RLock()
	e, ok := m.sessions[sessionID]
	m.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}

	if m.expired(e, m.now()) {
		m.mu.Lock()
		// a concurrent Replace may have renewed it
		if cur, ok := m.sessions[sessionID]; ok && m.expired(cur, m.now()) {
			delete(m.sessions, sessionID)
		}
		m.mu.Unlock()
		return nil, false, nil
	}
	return slices.Clone(e.items), true, nil
}

func (m *Memory) Drop(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, sessionID)
	return nil
}

