// internal/store/memory.go
//
// In-memory session store.
//
// Characteristics:
//   - Stores *shell.App sessions keyed by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts.
//   - Idle sessions are evicted by Sweep / RunSweeper.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ShlokD/guess-food/internal/shell"
)

var ErrNotFound = errors.New("session not found")

// Store defines the persistence interface for player sessions.
type Store interface {
	// Save persists or replaces a session.
	Save(ctx context.Context, a *shell.App) error

	// Get retrieves a session by ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*shell.App, error)

	// Sweep drops sessions idle since before cutoff and returns how many.
	Sweep(ctx context.Context, cutoff time.Time) int
}

type memory struct {
	mu       sync.RWMutex
	sessions map[string]*shell.App
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]*shell.App)}
}

func (m *memory) Save(ctx context.Context, a *shell.App) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[a.ID()] = a
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*shell.App, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if a, ok := m.sessions[id]; ok {
		return a, nil
	}
	return nil, ErrNotFound
}

func (m *memory) Sweep(ctx context.Context, cutoff time.Time) int {
	m.mu.Lock()
	var stale []*shell.App
	for id, a := range m.sessions {
		if a.LastSeen().Before(cutoff) {
			stale = append(stale, a)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, a := range stale {
		a.Close()
	}
	return len(stale)
}

// RunSweeper evicts sessions idle longer than ttl every interval until ctx ends.
func RunSweeper(ctx context.Context, s Store, ttl, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			if n := s.Sweep(ctx, now.Add(-ttl)); n > 0 {
				log.Debug().Int("evicted", n).Msg("swept idle sessions")
			}
		}
	}
}
