package session

import (
	"context"
	"sync"
)

// MemoryStore keeps transcripts in process memory. Each session's slice
// is trimmed to a retention cap so an abandoned session cannot grow
// unbounded.
type MemoryStore struct {
	mu      sync.RWMutex
	turns   map[string][]Turn
	maxKeep int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		turns:   make(map[string][]Turn),
		maxKeep: 4 * DefaultWindow,
	}
}

func (s *MemoryStore) Append(_ context.Context, sessionID string, turns ...Turn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	hist := append(s.turns[sessionID], turns...)
	if len(hist) > s.maxKeep {
		hist = hist[len(hist)-s.maxKeep:]
	}
	s.turns[sessionID] = hist
	return nil
}

func (s *MemoryStore) History(_ context.Context, sessionID string, window int) ([]Turn, error) {
	if window <= 0 {
		window = DefaultWindow
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	hist := s.turns[sessionID]
	if len(hist) > window {
		hist = hist[len(hist)-window:]
	}
	out := make([]Turn, len(hist))
	copy(out, hist)
	return out, nil
}

var _ Store = (*MemoryStore)(nil)
