package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dontclickthat/server/internal/models"
)

func testGame(id, connA, connB string) *models.Game {
	return &models.Game{
		ID: id,
		Players: [2]models.Player{
			{ConnectionID: connA, Identity: connA + "-id"},
			{ConnectionID: connB, Identity: connB + "-id"},
		},
		Status: models.StatusPlaying,
	}
}

func TestStoreCreateGetRemove(t *testing.T) {
	s := NewGameStore()
	g := testGame("g1", "c1", "c2")

	s.Create(g)
	got, ok := s.Get("g1")
	require.True(t, ok)
	assert.Same(t, g, got)
	assert.Equal(t, 1, s.Count())

	s.Remove("g1")
	_, ok = s.Get("g1")
	assert.False(t, ok)
	assert.Zero(t, s.Count())
}

func TestStoreFindByConnection(t *testing.T) {
	s := NewGameStore()
	s.Create(testGame("g1", "c1", "c2"))
	s.Create(testGame("g2", "c3", "c4"))

	g, ok := s.FindByConnection("c4")
	require.True(t, ok)
	assert.Equal(t, "g2", g.ID)

	_, ok = s.FindByConnection("nobody")
	assert.False(t, ok)
}

func TestStoreRemoveAfterEvicts(t *testing.T) {
	s := NewGameStore()
	s.Create(testGame("g1", "c1", "c2"))

	s.RemoveAfter("g1", 20*time.Millisecond)

	assert.Eventually(t, func() bool {
		_, ok := s.Get("g1")
		return !ok
	}, time.Second, 5*time.Millisecond)
}

func TestStoreRemoveCancelsPendingExpiry(t *testing.T) {
	s := NewGameStore()
	s.Create(testGame("g1", "c1", "c2"))
	s.RemoveAfter("g1", 30*time.Millisecond)

	// Removing and recreating under the same id must not be clobbered
	// by the earlier expiry timer.
	s.Remove("g1")
	s.Create(testGame("g1", "c1", "c2"))

	time.Sleep(80 * time.Millisecond)
	_, ok := s.Get("g1")
	assert.True(t, ok)
}
