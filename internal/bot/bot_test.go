package bot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dontclickthat/server/internal/models"
)

func makeGrid(width, height int) models.Grid {
	grid := make(models.Grid, height)
	for y := range grid {
		grid[y] = make([]models.Cell, width)
	}
	return grid
}

func revealBorder(grid models.Grid) {
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			if x == 0 || x == grid.Width()-1 || y == 0 || y == grid.Height()-1 {
				grid[y][x].Revealed = true
			}
		}
	}
}

func TestChooseMovePrefersCorners(t *testing.T) {
	grid := makeGrid(4, 4)

	x, y, ok := ChooseMove(grid)

	require.True(t, ok)
	assert.True(t, (x == 0 || x == 3) && (y == 0 || y == 3), "expected a corner, got (%d,%d)", x, y)
}

func TestChooseMoveFallsBackToEdges(t *testing.T) {
	grid := makeGrid(4, 4)
	for _, c := range [][2]int{{0, 0}, {3, 0}, {0, 3}, {3, 3}} {
		grid[c[1]][c[0]].Revealed = true
	}

	x, y, ok := ChooseMove(grid)

	require.True(t, ok)
	onEdge := x == 0 || x == 3 || y == 0 || y == 3
	onCorner := (x == 0 || x == 3) && (y == 0 || y == 3)
	assert.True(t, onEdge && !onCorner, "expected a non-corner edge, got (%d,%d)", x, y)
}

func TestChooseMoveFallsBackToInterior(t *testing.T) {
	grid := makeGrid(4, 4)
	revealBorder(grid)

	x, y, ok := ChooseMove(grid)

	require.True(t, ok)
	assert.True(t, x >= 1 && x <= 2 && y >= 1 && y <= 2, "expected an interior cell, got (%d,%d)", x, y)
}

func TestChooseMoveExhaustedBoard(t *testing.T) {
	grid := makeGrid(2, 2)
	for y := range grid {
		for x := range grid[y] {
			grid[y][x].Revealed = true
		}
	}

	_, _, ok := ChooseMove(grid)
	assert.False(t, ok)
}

func setThinkDelays(t *testing.T, min, jitter time.Duration) {
	t.Helper()
	origMin, origJitter := thinkDelayMin, thinkDelayJitter
	thinkDelayMin, thinkDelayJitter = min, jitter
	t.Cleanup(func() {
		thinkDelayMin, thinkDelayJitter = origMin, origJitter
	})
}

func TestScheduleMoveDispatches(t *testing.T) {
	setThinkDelays(t, time.Millisecond, time.Millisecond)

	fired := make(chan Action, 4)
	c := NewController(func(a Action) { fired <- a })

	c.ScheduleMove("g1")

	select {
	case a := <-fired:
		assert.Equal(t, ActionMove, a.Kind)
		assert.Equal(t, "g1", a.GameID)
	case <-time.After(time.Second):
		t.Fatal("scheduled move never fired")
	}
}

func TestCancelDropsPendingMove(t *testing.T) {
	setThinkDelays(t, 50*time.Millisecond, time.Millisecond)

	fired := make(chan Action, 4)
	c := NewController(func(a Action) { fired <- a })

	c.ScheduleMove("g1")
	c.Cancel("g1")

	select {
	case <-fired:
		t.Fatal("cancelled move still fired")
	case <-time.After(150 * time.Millisecond):
	}
}

func TestScheduleMoveReplacesPending(t *testing.T) {
	setThinkDelays(t, 30*time.Millisecond, time.Millisecond)

	fired := make(chan Action, 4)
	c := NewController(func(a Action) { fired <- a })

	// At most one pending move per game: the second schedule replaces
	// the first timer instead of stacking a duplicate.
	c.ScheduleMove("g1")
	c.ScheduleMove("g1")

	time.Sleep(200 * time.Millisecond)
	assert.Len(t, fired, 1)
}
