package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dontclickthat/server/internal/game"
	"github.com/dontclickthat/server/internal/matchmaking"
)

func TestLoadDefaults(t *testing.T) {
	for _, name := range []string{"PORT", "MATCHMAKING_POLICY", "GRID_WIDTH", "GRID_HEIGHT", "MINE_COUNT", "DEBUG"} {
		t.Setenv(name, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, matchmaking.PolicyBotImmediate, cfg.Policy)
	assert.Equal(t, game.DefaultGridWidth, cfg.GridWidth)
	assert.Equal(t, game.DefaultGridHeight, cfg.GridHeight)
	assert.Equal(t, game.DefaultMineCount, cfg.MineCount)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("MATCHMAKING_POLICY", "peer-queued")
	t.Setenv("GRID_WIDTH", "8")
	t.Setenv("GRID_HEIGHT", "6")
	t.Setenv("MINE_COUNT", "10")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, matchmaking.PolicyPeerQueued, cfg.Policy)
	assert.Equal(t, 8, cfg.GridWidth)
	assert.Equal(t, 6, cfg.GridHeight)
	assert.Equal(t, 10, cfg.MineCount)
}

func TestLoadRejectsUnknownPolicy(t *testing.T) {
	t.Setenv("MATCHMAKING_POLICY", "elo-ladder")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsImpossibleBoard(t *testing.T) {
	t.Setenv("GRID_WIDTH", "3")
	t.Setenv("GRID_HEIGHT", "3")
	t.Setenv("MINE_COUNT", "9")

	_, err := Load()
	assert.ErrorIs(t, err, game.ErrInvalidConfiguration)
}

func TestLoadRejectsMalformedNumbers(t *testing.T) {
	t.Setenv("GRID_WIDTH", "wide")
	_, err := Load()
	assert.Error(t, err)
}
