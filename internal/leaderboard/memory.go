package leaderboard

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Memory keeps the top scores for the lifetime of the process. Used
// when no database is configured.
type Memory struct {
	mu      sync.Mutex
	entries []Entry
	keep    int
}

func NewMemory() *Memory {
	return &Memory{keep: DefaultLimit}
}

func (m *Memory) SaveScore(_ context.Context, e Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.PlayedAt.IsZero() {
		e.PlayedAt = time.Now().UTC()
	}
	m.entries = append(m.entries, e)
	rankEntries(m.entries)
	if len(m.entries) > m.keep {
		m.entries = m.entries[:m.keep]
	}
	return nil
}

func (m *Memory) Top(_ context.Context, limit int) ([]Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	limit = clampLimit(limit)
	if limit > len(m.entries) {
		limit = len(m.entries)
	}
	out := make([]Entry, limit)
	copy(out, m.entries[:limit])
	return out, nil
}

func (m *Memory) Close() error { return nil }
