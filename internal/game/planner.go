package game

import (
	"container/heap"
	"math"
)

// Strategy selects the global search algorithm.
type Strategy int

const (
	StrategyBFS   Strategy = iota // uniform-cost breadth-first, shortest hop count
	StrategyAStar                 // heuristic best-first
)

func (s Strategy) String() string {
	switch s {
	case StrategyBFS:
		return "bfs"
	case StrategyAStar:
		return "astar"
	default:
		return "unknown"
	}
}

// Planner runs graph search over an occupancy grid. The returned waypoint
// sequence excludes the start cell and includes the goal cell (or its
// nearest-walkable substitute). An empty result means no route exists.
type Planner struct {
	grid           *Grid
	strategy       Strategy
	eightConnected bool
	ringBound      int // nearest-walkable search radius for blocked endpoints
}

// NewPlanner builds a planner over g.
func NewPlanner(g *Grid, strategy Strategy, eightConnected bool, ringBound int) *Planner {
	return &Planner{
		grid:           g,
		strategy:       strategy,
		eightConnected: eightConnected,
		ringBound:      ringBound,
	}
}

// Orthogonal neighbors first so 4- and 8-connected share a prefix. Order is
// fixed: it decides FIFO tie-breaking and must stay stable for reproducibility.
var orthoDirs = [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
var diagDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

// FindPath returns the waypoint cells from start (exclusive) to goal
// (inclusive). If either endpoint is blocked it is replaced by the nearest
// walkable cell within the ring bound; failing that, the path is empty.
func (p *Planner) FindPath(start, goal Cell) []Cell {
	var ok bool
	if !p.grid.IsWalkable(start) {
		start, ok = p.nearestWalkable(start)
		if !ok {
			return nil
		}
	}
	if !p.grid.IsWalkable(goal) {
		goal, ok = p.nearestWalkable(goal)
		if !ok {
			return nil
		}
	}
	if start == goal {
		return nil
	}

	switch p.strategy {
	case StrategyAStar:
		return p.findAStar(start, goal)
	default:
		return p.findBFS(start, goal)
	}
}

// nearestWalkable scans expanding Chebyshev rings around c for a walkable
// cell, up to the configured bound.
func (p *Planner) nearestWalkable(c Cell) (Cell, bool) {
	for r := 1; r <= p.ringBound; r++ {
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				if max(abs(dx), abs(dy)) != r {
					continue // interior already scanned on a smaller ring
				}
				n := Cell{X: c.X + dx, Y: c.Y + dy}
				if p.grid.IsWalkable(n) {
					return n, true
				}
			}
		}
	}
	return Cell{}, false
}

// diagonalAllowed rejects diagonal steps that would cut past a wall corner:
// both orthogonal neighbors of the step must be walkable.
func (p *Planner) diagonalAllowed(from Cell, dx, dy int) bool {
	return p.grid.IsWalkable(Cell{X: from.X + dx, Y: from.Y}) &&
		p.grid.IsWalkable(Cell{X: from.X, Y: from.Y + dy})
}

func (p *Planner) neighbors(c Cell, out []Cell) []Cell {
	out = out[:0]
	for _, d := range orthoDirs {
		n := Cell{X: c.X + d[0], Y: c.Y + d[1]}
		if p.grid.IsWalkable(n) {
			out = append(out, n)
		}
	}
	if p.eightConnected {
		for _, d := range diagDirs {
			n := Cell{X: c.X + d[0], Y: c.Y + d[1]}
			if p.grid.IsWalkable(n) && p.diagonalAllowed(c, d[0], d[1]) {
				out = append(out, n)
			}
		}
	}
	return out
}

func (p *Planner) findBFS(start, goal Cell) []Cell {
	cols := p.grid.cols
	key := func(c Cell) int { return c.Y*cols + c.X }

	cameFrom := make([]int, cols*p.grid.rows)
	for i := range cameFrom {
		cameFrom[i] = -1
	}
	cameFrom[key(start)] = key(start)

	queue := make([]Cell, 0, 64)
	queue = append(queue, start)
	scratch := make([]Cell, 0, 8)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == goal {
			break
		}
		for _, n := range p.neighbors(cur, scratch) {
			k := key(n)
			if cameFrom[k] == -1 {
				cameFrom[k] = key(cur)
				queue = append(queue, n)
			}
		}
	}

	return p.rebuild(cameFrom, start, goal)
}

// aNode is an A* open-list entry.
type aNode struct {
	cell  Cell
	g     float64
	f     float64
	seq   int // insertion order; breaks equal-f ties FIFO for reproducibility
	index int // heap index
}

type aOpen []*aNode

func (o aOpen) Len() int { return len(o) }
func (o aOpen) Less(i, j int) bool {
	if o[i].f != o[j].f {
		return o[i].f < o[j].f
	}
	return o[i].seq < o[j].seq
}
func (o aOpen) Swap(i, j int) { o[i], o[j] = o[j], o[i]; o[i].index = i; o[j].index = j }
func (o *aOpen) Push(x any)   { n := x.(*aNode); n.index = len(*o); *o = append(*o, n) }
func (o *aOpen) Pop() any {
	old := *o
	n := old[len(old)-1]
	old[len(old)-1] = nil
	*o = old[:len(old)-1]
	return n
}

// heuristic estimates remaining cost. Manhattan distance is admissible for
// 4-connected unit-cost moves (every step changes exactly one coordinate by
// one, so at least dx+dy steps remain). The octile form dx+dy+(√2−2)·min(dx,dy)
// is admissible for 8-connected grids with step costs 1 and √2: it is the
// exact cost of the obstacle-free route using min(dx,dy) diagonal steps.
func (p *Planner) heuristic(a, b Cell) float64 {
	dx := math.Abs(float64(a.X - b.X))
	dy := math.Abs(float64(a.Y - b.Y))
	if p.eightConnected {
		return dx + dy + (math.Sqrt2-2)*math.Min(dx, dy)
	}
	return dx + dy
}

func (p *Planner) findAStar(start, goal Cell) []Cell {
	cols := p.grid.cols
	key := func(c Cell) int { return c.Y*cols + c.X }

	cameFrom := make([]int, cols*p.grid.rows)
	gScore := make([]float64, cols*p.grid.rows)
	for i := range cameFrom {
		cameFrom[i] = -1
		gScore[i] = math.Inf(1)
	}

	seq := 0
	startNode := &aNode{cell: start, g: 0, f: p.heuristic(start, goal)}
	open := &aOpen{startNode}
	heap.Init(open)
	cameFrom[key(start)] = key(start)
	gScore[key(start)] = 0

	closed := make([]bool, cols*p.grid.rows)
	scratch := make([]Cell, 0, 8)

	for open.Len() > 0 {
		cur := heap.Pop(open).(*aNode)
		ck := key(cur.cell)
		if cur.cell == goal {
			return p.rebuild(cameFrom, start, goal)
		}
		if closed[ck] {
			continue
		}
		closed[ck] = true

		for _, n := range p.neighbors(cur.cell, scratch) {
			nk := key(n)
			if closed[nk] {
				continue
			}
			step := 1.0
			if n.X != cur.cell.X && n.Y != cur.cell.Y {
				step = math.Sqrt2
			}
			tentative := gScore[ck] + step
			if tentative < gScore[nk] {
				gScore[nk] = tentative
				cameFrom[nk] = ck
				seq++
				heap.Push(open, &aNode{
					cell: n,
					g:    tentative,
					f:    tentative + p.heuristic(n, goal),
					seq:  seq,
				})
			}
		}
	}
	return nil
}

// rebuild walks the cameFrom chain from goal back to start. Returns nil when
// the goal was never reached. The start cell is dropped from the result.
func (p *Planner) rebuild(cameFrom []int, start, goal Cell) []Cell {
	cols := p.grid.cols
	key := func(c Cell) int { return c.Y*cols + c.X }
	gk := key(goal)
	if cameFrom[gk] == -1 {
		return nil
	}

	var path []Cell
	for k := gk; k != key(start); k = cameFrom[k] {
		path = append(path, Cell{X: k % cols, Y: k / cols})
	}
	// Reverse into start→goal order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
