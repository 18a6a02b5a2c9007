package game

import "fmt"

// World owns the whole arena simulation: walls, the shared occupancy grid,
// both tanks and every in-flight bullet. It is single-threaded and
// tick-driven; Step runs to completion and never blocks. Decision cores plug
// in from outside: callers build a BotInput with Input and feed the chosen
// actions back into Step.
type World struct {
	cfg     Config
	walls   []rect
	grid    *Grid
	tanks   [2]*Tank
	bullets []*Bullet
	log     *DecisionLog
	tick    int

	over   bool
	winner string
}

// DefaultLayout returns the stock maze: border walls plus the interior
// obstacles of the original arena.
func DefaultLayout(cfg Config) []rect {
	walls := BorderWalls(cfg)
	walls = append(walls,
		rect{x: 100, y: 100, w: 20, h: 200},
		rect{x: 100, y: 300, w: 200, h: 20},
		rect{x: 400, y: 100, w: 20, h: 250},
		rect{x: 300, y: 450, w: 150, h: 20},
		rect{x: 150, y: 450, w: 20, h: 100},
	)
	return walls
}

// BorderWalls returns just the four arena edge walls.
func BorderWalls(cfg Config) []rect {
	w, h := cfg.ArenaWidth, cfg.ArenaHeight
	return []rect{
		{x: 0, y: 0, w: w, h: 10},
		{x: 0, y: h - 10, w: w, h: 10},
		{x: 0, y: 0, w: 10, h: h},
		{x: w - 10, y: 0, w: 10, h: h},
	}
}

// NewWorld builds an arena with the given wall layout and two tanks. Tank 1
// spawns at the top-left start position, tank 2 at (or near) the given spawn
// point: if the requested cell is blocked the nearest walkable cell within
// the ring bound is used instead, keeping placement deterministic.
func NewWorld(cfg Config, walls []rect, spawn2X, spawn2Y float64, log *DecisionLog) *World {
	w := &World{
		cfg:   cfg,
		walls: walls,
		grid:  NewGrid(cfg.ArenaWidth, cfg.ArenaHeight, walls, cfg.CellSize, cfg.BufferRadius),
		log:   log,
	}
	sx, sy := w.resolveSpawn(spawn2X, spawn2Y)
	w.tanks[0] = NewTank(1, "p1", 80, 80, 0)
	w.tanks[1] = NewTank(2, "bot", sx, sy, 180)
	return w
}

// resolveSpawn returns a walkable spawn position for the requested point,
// falling back to the nearest walkable cell center.
func (w *World) resolveSpawn(x, y float64) (float64, float64) {
	c := w.grid.CellAt(x, y)
	if w.grid.IsWalkable(c) && !hullCollides(x, y, float64(w.cfg.TankSize)/2, w.walls, &w.cfg) {
		return x, y
	}
	p := NewPlanner(w.grid, StrategyBFS, false, w.cfg.NearestWalkableRadius)
	if n, ok := p.nearestWalkable(c); ok {
		return w.grid.CenterOf(n)
	}
	// Contract violation by the caller; keep the requested point rather
	// than abort the episode.
	return x, y
}

// Step advances the simulation one tick with the given actions for tank 1
// and tank 2. It is a no-op once the round is over.
func (w *World) Step(a1, a2 Action) {
	if w.over {
		return
	}
	w.tick++

	acts := [2]Action{a1, a2}
	for i, t := range w.tanks {
		if t.Apply(acts[i], w.walls, &w.cfg) {
			w.spawnBullet(t)
		}
		t.UpdateVelocity()
	}

	live := w.bullets[:0]
	for _, bl := range w.bullets {
		bl.Update(w.walls, &w.cfg)
		if !bl.Dead() {
			live = append(live, bl)
		}
	}
	w.bullets = live

	w.resolveHits()
}

// spawnBullet emits a round from the tank's muzzle unless the tank already
// has its maximum number of bullets in flight.
func (w *World) spawnBullet(t *Tank) {
	liveCount := 0
	for _, bl := range w.bullets {
		if bl.owner == t.id {
			liveCount++
		}
	}
	if liveCount >= w.cfg.MaxLiveBullets {
		return
	}
	dx, dy := headingVector(t.heading)
	muzzle := float64(w.cfg.TankSize) / 1.5
	w.bullets = append(w.bullets, NewBullet(t.x+dx*muzzle, t.y+dy*muzzle, t.heading, t.id, &w.cfg))
	t.cooldown = w.cfg.FireCooldown
	w.log.AddVerbose(w.tick, t.label, "combat", "shot", "bullet spawned", 0)
}

func (w *World) resolveHits() {
	for _, bl := range w.bullets {
		for _, t := range w.tanks {
			if !bl.HitsTank(t, &w.cfg) {
				continue
			}
			bl.dead = true
			t.alive = false
			w.over = true
			w.winner = w.opponentOf(t).label
			w.log.Add(w.tick, t.label, "round", "hit",
				fmt.Sprintf("killed by bullet from tank %d", bl.owner), float64(bl.owner))
		}
	}
}

func (w *World) opponentOf(t *Tank) *Tank {
	if w.tanks[0] == t {
		return w.tanks[1]
	}
	return w.tanks[0]
}

// Input assembles the read-only decision snapshot for the tank at index i
// (0 or 1). The other tank is the target.
func (w *World) Input(i int) BotInput {
	other := 1 - i
	bullets := make([]BulletSnapshot, 0, len(w.bullets))
	for _, bl := range w.bullets {
		bullets = append(bullets, bl.Snapshot())
	}
	return BotInput{
		Tick:    w.tick,
		Self:    w.tanks[i].Snapshot(),
		Target:  w.tanks[other].Snapshot(),
		Walls:   w.walls,
		Bullets: bullets,
	}
}

// Reset starts a new round: the grid is rebuilt, tanks respawn, bullets are
// cleared. Wall geometry is kept; callers wanting a new layout construct a
// new World.
func (w *World) Reset() {
	w.grid = NewGrid(w.cfg.ArenaWidth, w.cfg.ArenaHeight, w.walls, w.cfg.CellSize, w.cfg.BufferRadius)
	sx, sy := w.resolveSpawn(500, 500)
	w.tanks = [2]*Tank{
		NewTank(1, "p1", 80, 80, 0),
		NewTank(2, "bot", sx, sy, 180),
	}
	w.bullets = nil
	w.tick = 0
	w.over = false
	w.winner = ""
	w.log.Add(0, "--", "round", "reset", "new round", 0)
}

// Accessors for rendering, harnesses and tests.

func (w *World) Tick() int            { return w.tick }
func (w *World) Over() (bool, string) { return w.over, w.winner }
func (w *World) Grid() *Grid          { return w.grid }
func (w *World) Walls() []rect        { return w.walls }
func (w *World) Tank(i int) *Tank     { return w.tanks[i] }
func (w *World) Bullets() []*Bullet   { return w.bullets }
func (w *World) Config() *Config      { return &w.cfg }
func (w *World) Log() *DecisionLog    { return w.log }
