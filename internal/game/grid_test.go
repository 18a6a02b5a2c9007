package game

import "testing"

func TestGrid_UnblockedByDefault(t *testing.T) {
	g := NewGrid(600, 600, nil, 20, 0)
	if !g.IsWalkable(Cell{0, 0}) {
		t.Fatal("empty grid should have no blocked cells")
	}
	if !g.IsWalkable(Cell{g.cols - 1, g.rows - 1}) {
		t.Fatal("corner cell should not be blocked")
	}
}

func TestGrid_WallBlocksCells(t *testing.T) {
	// Wall at pixel (100,100) size 20x200. cellSize=20, so cells (5,5)-(5,14).
	walls := []rect{{x: 100, y: 100, w: 20, h: 200}}
	g := NewGrid(600, 600, walls, 20, 0)
	if g.IsWalkable(Cell{5, 5}) {
		t.Fatal("cell inside wall should be blocked")
	}
	if g.IsWalkable(Cell{5, 14}) {
		t.Fatal("cell at far end of wall should be blocked")
	}
	if !g.IsWalkable(Cell{4, 5}) {
		t.Fatal("cell beside wall should stay walkable with no buffer")
	}
}

func TestGrid_OOB_NotWalkable(t *testing.T) {
	g := NewGrid(600, 600, nil, 20, 0)
	for _, c := range []Cell{{-1, 0}, {0, -1}, {g.cols, 0}, {0, g.rows}} {
		if g.IsWalkable(c) {
			t.Fatalf("out-of-bounds cell %v should not be walkable", c)
		}
	}
}

// Inflation invariant: with buffer b, exactly the cells within Chebyshev
// distance b of an originally marked cell are blocked: neighbors inside the
// radius are blocked, cells beyond it are not.
func TestGrid_InflationInvariant(t *testing.T) {
	layouts := [][]rect{
		{{x: 100, y: 100, w: 20, h: 200}},
		{{x: 200, y: 0, w: 40, h: 300}, {x: 0, y: 400, w: 300, h: 20}},
		DefaultLayout(DefaultConfig()),
	}
	const buffer = 2
	for li, walls := range layouts {
		base := NewGrid(600, 600, walls, 20, 0)
		inflated := NewGrid(600, 600, walls, 20, buffer)

		for cy := 0; cy < base.rows; cy++ {
			for cx := 0; cx < base.cols; cx++ {
				c := Cell{cx, cy}
				nearMarked := false
				for dy := -buffer; dy <= buffer && !nearMarked; dy++ {
					for dx := -buffer; dx <= buffer; dx++ {
						n := Cell{cx + dx, cy + dy}
						if n.X >= 0 && n.Y >= 0 && n.X < base.cols && n.Y < base.rows &&
							!base.IsWalkable(n) {
							nearMarked = true
							break
						}
					}
				}
				if nearMarked && inflated.IsWalkable(c) {
					t.Fatalf("layout %d: cell %v within buffer of a wall cell but walkable", li, c)
				}
				if !nearMarked && !inflated.IsWalkable(c) {
					t.Fatalf("layout %d: cell %v beyond buffer of every wall cell but blocked", li, c)
				}
			}
		}
	}
}

func TestGrid_Deterministic(t *testing.T) {
	walls := DefaultLayout(DefaultConfig())
	g1 := NewGrid(600, 600, walls, 20, 1)
	g2 := NewGrid(600, 600, walls, 20, 1)
	for i := range g1.blocked {
		if g1.blocked[i] != g2.blocked[i] {
			t.Fatalf("identical wall input produced differing grids at index %d", i)
		}
	}
}

func TestGrid_Conversions(t *testing.T) {
	g := NewGrid(600, 600, nil, 20, 0)
	c := g.CellAt(45, 130)
	if c != (Cell{2, 6}) {
		t.Fatalf("expected cell (2,6) got %v", c)
	}
	wx, wy := g.CenterOf(Cell{2, 6})
	if wx != 50 || wy != 130 {
		t.Fatalf("expected center (50,130) got (%.0f,%.0f)", wx, wy)
	}
}
