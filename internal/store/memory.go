package store

import (
	"sync"
	"time"

	"github.com/dontclickthat/server/internal/models"
)

// GameStore manages active game storage. It is the sole owner of Game
// instances; every other component reaches games by id lookup.
type GameStore struct {
	games  map[string]*models.Game
	expiry map[string]*time.Timer
	mu     sync.RWMutex
}

// NewGameStore creates a new game store
func NewGameStore() *GameStore {
	return &GameStore{
		games:  make(map[string]*models.Game),
		expiry: make(map[string]*time.Timer),
	}
}

// Create stores a game under its id
func (s *GameStore) Create(g *models.Game) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[g.ID] = g
}

// Get retrieves a game by id
func (s *GameStore) Get(id string) (*models.Game, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, exists := s.games[id]
	return g, exists
}

// Remove deletes a game and cancels any pending expiry timer.
func (s *GameStore) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.expiry[id]; ok {
		t.Stop()
		delete(s.expiry, id)
	}
	delete(s.games, id)
}

// RemoveAfter schedules deletion of a finished game after the grace
// period, replacing any expiry already pending for the same id.
func (s *GameStore) RemoveAfter(id string, grace time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.expiry[id]; ok {
		t.Stop()
	}
	s.expiry[id] = time.AfterFunc(grace, func() {
		s.Remove(id)
	})
}

// Count returns the number of stored games
func (s *GameStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.games)
}

// FindByConnection returns the first game a connection participates
// in. A player is assumed to be in at most one active game.
func (s *GameStore) FindByConnection(connID string) (*models.Game, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, g := range s.games {
		if g.HasConnection(connID) {
			return g, true
		}
	}
	return nil, false
}
