package game

// Cell addresses one square of the occupancy grid.
type Cell struct {
	X int
	Y int
}

// Grid is a 2D walkability grid where true = blocked. It is built once per
// arena layout and read-only afterwards; rebuilds replace it wholesale.
type Grid struct {
	cols     int
	rows     int
	cellSize int
	blocked  []bool
}

// NewGrid rasterizes the wall rectangles into a walkability grid. Cells
// overlapped by any wall are blocked first; a second pass then blocks every
// cell within bufferRadius (Chebyshev) of a blocked cell so that path corners
// keep clearance from wall edges.
func NewGrid(arenaW, arenaH int, walls []rect, cellSize, bufferRadius int) *Grid {
	cols := arenaW / cellSize
	rows := arenaH / cellSize
	g := &Grid{
		cols:     cols,
		rows:     rows,
		cellSize: cellSize,
		blocked:  make([]bool, cols*rows),
	}

	marked := make([]bool, cols*rows)
	for _, w := range walls {
		cMinX := max(0, w.x/cellSize)
		cMinY := max(0, w.y/cellSize)
		cMaxX := min(cols-1, (w.x+w.w-1)/cellSize)
		cMaxY := min(rows-1, (w.y+w.h-1)/cellSize)
		for cy := cMinY; cy <= cMaxY; cy++ {
			for cx := cMinX; cx <= cMaxX; cx++ {
				marked[cy*cols+cx] = true
			}
		}
	}

	copy(g.blocked, marked)
	if bufferRadius > 0 {
		for cy := 0; cy < rows; cy++ {
			for cx := 0; cx < cols; cx++ {
				if !marked[cy*cols+cx] {
					continue
				}
				for dy := -bufferRadius; dy <= bufferRadius; dy++ {
					for dx := -bufferRadius; dx <= bufferRadius; dx++ {
						nx, ny := cx+dx, cy+dy
						if nx >= 0 && ny >= 0 && nx < cols && ny < rows {
							g.blocked[ny*cols+nx] = true
						}
					}
				}
			}
		}
	}
	return g
}

// IsWalkable reports whether c is inside the grid and unblocked.
// Out-of-bounds cells are never walkable.
func (g *Grid) IsWalkable(c Cell) bool {
	if c.X < 0 || c.Y < 0 || c.X >= g.cols || c.Y >= g.rows {
		return false
	}
	return !g.blocked[c.Y*g.cols+c.X]
}

// CellAt converts world pixel coordinates to the containing grid cell.
func (g *Grid) CellAt(wx, wy float64) Cell {
	return Cell{X: int(wx) / g.cellSize, Y: int(wy) / g.cellSize}
}

// CenterOf converts a grid cell to the world coordinates of its center.
func (g *Grid) CenterOf(c Cell) (float64, float64) {
	half := float64(g.cellSize) / 2
	return float64(c.X*g.cellSize) + half, float64(c.Y*g.cellSize) + half
}

// Cols and Rows expose the grid dimensions for overlays and tests.
func (g *Grid) Cols() int { return g.cols }
func (g *Grid) Rows() int { return g.rows }
