package game

import "testing"

func openPlanner(strategy Strategy, walls []rect) *Planner {
	g := NewGrid(600, 600, walls, 20, 0)
	return NewPlanner(g, strategy, false, 5)
}

func TestPlanner_StraightLineHopCount(t *testing.T) {
	for _, strat := range []Strategy{StrategyBFS, StrategyAStar} {
		p := openPlanner(strat, nil)
		path := p.FindPath(Cell{1, 1}, Cell{8, 1})
		if len(path) != 7 {
			t.Fatalf("%s: expected 7 hops on open grid, got %d", strat, len(path))
		}
		if path[len(path)-1] != (Cell{8, 1}) {
			t.Fatalf("%s: path must end at the goal, got %v", strat, path[len(path)-1])
		}
		if path[0] == (Cell{1, 1}) {
			t.Fatalf("%s: path must exclude the start cell", strat)
		}
	}
}

// On a 4-connected uniform-cost grid BFS is provably optimal; the heuristic
// strategy must match its hop count on every tested layout.
func TestPlanner_AStarMatchesBFSLength(t *testing.T) {
	layouts := [][]rect{
		nil,
		{{x: 200, y: 0, w: 40, h: 400}},
		DefaultLayout(DefaultConfig()),
	}
	endpoints := [][2]Cell{
		{{2, 2}, {25, 25}},
		{{2, 25}, {25, 2}},
		{{4, 4}, {25, 14}},
	}
	for li, walls := range layouts {
		bfs := openPlanner(StrategyBFS, walls)
		astar := openPlanner(StrategyAStar, walls)
		for _, ep := range endpoints {
			pb := bfs.FindPath(ep[0], ep[1])
			pa := astar.FindPath(ep[0], ep[1])
			if len(pa) != len(pb) {
				t.Fatalf("layout %d %v→%v: astar %d hops vs bfs %d",
					li, ep[0], ep[1], len(pa), len(pb))
			}
		}
	}
}

func TestPlanner_Idempotent(t *testing.T) {
	for _, strat := range []Strategy{StrategyBFS, StrategyAStar} {
		p := openPlanner(strat, DefaultLayout(DefaultConfig()))
		p1 := p.FindPath(Cell{4, 4}, Cell{25, 25})
		p2 := p.FindPath(Cell{4, 4}, Cell{25, 25})
		if len(p1) != len(p2) {
			t.Fatalf("%s: repeated identical queries differ in length", strat)
		}
		for i := range p1 {
			if p1[i] != p2[i] {
				t.Fatalf("%s: repeated identical queries differ at hop %d", strat, i)
			}
		}
	}
}

func TestPlanner_BlockedGoalSubstituted(t *testing.T) {
	walls := []rect{{x: 200, y: 200, w: 20, h: 20}} // blocks cell (10,10)
	p := openPlanner(StrategyBFS, walls)
	path := p.FindPath(Cell{2, 2}, Cell{10, 10})
	if len(path) == 0 {
		t.Fatal("expected a path to the nearest walkable substitute")
	}
	end := path[len(path)-1]
	if end == (Cell{10, 10}) {
		t.Fatal("path must not end inside the blocked goal cell")
	}
	if max(abs(end.X-10), abs(end.Y-10)) > 5 {
		t.Fatalf("substitute %v outside the ring bound", end)
	}
}

func TestPlanner_UnreachableReturnsEmpty(t *testing.T) {
	// The whole right half is solid; the goal sits deeper inside it than the
	// ring bound can reach.
	walls := []rect{{x: 300, y: 0, w: 300, h: 600}}
	p := openPlanner(StrategyBFS, walls)
	if path := p.FindPath(Cell{2, 2}, Cell{25, 15}); path != nil {
		t.Fatalf("expected empty path, got %d hops", len(path))
	}
}

func TestPlanner_StartEqualsGoal(t *testing.T) {
	p := openPlanner(StrategyBFS, nil)
	if path := p.FindPath(Cell{5, 5}, Cell{5, 5}); len(path) != 0 {
		t.Fatalf("expected empty path for coincident endpoints, got %v", path)
	}
}

// With 8-connected movement a diagonal step is only legal when both
// orthogonal neighbors are walkable, so paths never squeeze through
// touching wall corners.
func TestPlanner_NoCornerCutting(t *testing.T) {
	// Cells (10,10) and (11,11) blocked, leaving a diagonal "gap".
	walls := []rect{
		{x: 200, y: 200, w: 20, h: 20},
		{x: 220, y: 220, w: 20, h: 20},
	}
	g := NewGrid(600, 600, walls, 20, 0)
	for _, strat := range []Strategy{StrategyBFS, StrategyAStar} {
		p := NewPlanner(g, strat, true, 5)
		path := p.FindPath(Cell{5, 14}, Cell{14, 5})
		if len(path) == 0 {
			t.Fatalf("%s: expected a path around the corner", strat)
		}
		prev := Cell{5, 14}
		for _, c := range path {
			dx, dy := c.X-prev.X, c.Y-prev.Y
			if dx != 0 && dy != 0 {
				a := Cell{prev.X + dx, prev.Y}
				b := Cell{prev.X, prev.Y + dy}
				if !g.IsWalkable(a) && !g.IsWalkable(b) {
					t.Fatalf("%s: diagonal step %v→%v cuts a blocked corner", strat, prev, c)
				}
			}
			prev = c
		}
	}
}
