package store

import (
	"sort"
	"sync"
	"time"

	"nfl-prediction-service/internal/domain"
)

// MemoryStore keeps a thread-safe snapshot of the live slate in memory. The
// poller replaces the snapshot wholesale; readers see a consistent copy.
type MemoryStore struct {
	mu        sync.RWMutex
	games     map[string]domain.Game
	updatedAt time.Time
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		games: make(map[string]domain.Game),
	}
}

// ListGames returns a copy of the current slate ordered by kickoff.
func (s *MemoryStore) ListGames() []domain.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Game, 0, len(s.games))
	for _, g := range s.games {
		result = append(result, g)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Scheduled.Equal(result[j].Scheduled) {
			return result[i].ID < result[j].ID
		}
		return result[i].Scheduled.Before(result[j].Scheduled)
	})
	return result
}

// GetGame retrieves a game by ID.
func (s *MemoryStore) GetGame(id string) (domain.Game, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[id]
	return g, ok
}

// SetGames replaces the snapshot and stamps the update time.
func (s *MemoryStore) SetGames(games []domain.Game) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.games = make(map[string]domain.Game, len(games))
	for _, g := range games {
		s.games[g.ID] = g
	}
	s.updatedAt = time.Now()
}

// UpdatedAt reports when the snapshot was last replaced.
func (s *MemoryStore) UpdatedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.updatedAt
}
