package models

// Cell is a single board position. Mine placement is immutable after
// generation; Revealed transitions false to true exactly once.
type Cell struct {
	IsMine        bool `json:"isMine"`
	Revealed      bool `json:"revealed"`
	AdjacentMines int  `json:"adjacentMines"`
}

// Grid is a rectangular minefield indexed [y][x].
type Grid [][]Cell

// Height returns the number of rows.
func (g Grid) Height() int {
	return len(g)
}

// Width returns the number of columns.
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// InBounds reports whether (x, y) is a valid cell coordinate.
func (g Grid) InBounds(x, y int) bool {
	return y >= 0 && y < g.Height() && x >= 0 && x < g.Width()
}

// MineCount returns the number of mined cells.
func (g Grid) MineCount() int {
	count := 0
	for _, row := range g {
		for _, cell := range row {
			if cell.IsMine {
				count++
			}
		}
	}
	return count
}

// SafeCellCount returns the number of cells that are not mines.
func (g Grid) SafeCellCount() int {
	return g.Width()*g.Height() - g.MineCount()
}
