package game

import (
	"errors"
	"fmt"

	"github.com/dontclickthat/server/internal/models"
)

// ErrInvalidConfiguration is returned when grid parameters cannot
// produce a valid board.
var ErrInvalidConfiguration = errors.New("invalid grid configuration")

// lcg is the fixed linear-congruential sequence used for board
// generation. It is self-contained so that a seed reproduces the same
// layout on any platform, which is what makes replay verification
// possible.
type lcg struct {
	state int64
}

func newLCG(seed int64) *lcg {
	return &lcg{state: seed}
}

// next returns a pseudo-random float in [0, 1).
func (r *lcg) next() float64 {
	r.state = (r.state*9301 + 49297) % 233280
	if r.state < 0 {
		r.state += 233280
	}
	return float64(r.state) / 233280
}

// Generate produces a minefield with exactly mineCount mines placed by
// rejection sampling from the seeded sequence, then computes adjacent
// mine counts for every safe cell. Same inputs always yield an
// identical grid.
func Generate(width, height, mineCount int, seed int64) (models.Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d board", ErrInvalidConfiguration, width, height)
	}
	if mineCount < 0 || mineCount >= width*height {
		return nil, fmt.Errorf("%w: %d mines on a %dx%d board", ErrInvalidConfiguration, mineCount, width, height)
	}

	rng := newLCG(seed)

	grid := make(models.Grid, height)
	for y := range grid {
		grid[y] = make([]models.Cell, width)
	}

	placed := 0
	for placed < mineCount {
		x := int(rng.next() * float64(width))
		y := int(rng.next() * float64(height))
		if !grid[y][x].IsMine {
			grid[y][x].IsMine = true
			placed++
		}
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if grid[y][x].IsMine {
				continue
			}
			count := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					ny, nx := y+dy, x+dx
					if ny >= 0 && ny < height && nx >= 0 && nx < width && grid[ny][nx].IsMine {
						count++
					}
				}
			}
			grid[y][x].AdjacentMines = count
		}
	}

	return grid, nil
}
