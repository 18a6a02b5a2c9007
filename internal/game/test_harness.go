package game

// TestSim is a headless simulation harness used by tests and the headless
// reporter. It mirrors the game loop but has no Ebiten dependency and wires
// a DecisionLog through everything for structured assertions.
type TestSim struct {
	World *World
	Bot   *Bot // decision core driving tank index 1
	Log   *DecisionLog

	playerBot    *Bot // optional decision core driving tank index 0
	playerScript func(tick int) Action

	cfg   Config
	walls []rect
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra simOptionKind = iota // config, walls, verbosity: applied first
	simOptActor                      // tank placement, bullets, scripts: applied after the world exists
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim)
}

// WithConfig replaces the whole config.
func WithConfig(cfg Config) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) { ts.cfg = cfg }}
}

// WithArenaSize overrides the arena dimensions; border walls follow.
func WithArenaSize(w, h int) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.cfg.ArenaWidth = w
		ts.cfg.ArenaHeight = h
	}}
}

// WithBufferRadius sets the grid inflation radius.
func WithBufferRadius(r int) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) { ts.cfg.BufferRadius = r }}
}

// WithStrategy selects the global planner algorithm.
func WithStrategy(s Strategy) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) { ts.cfg.Strategy = s }}
}

// WithWall adds an interior wall on top of the border.
func WithWall(x, y, w, h int) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.walls = append(ts.walls, rect{x: x, y: y, w: w, h: h})
	}}
}

// WithDefaultLayout uses the stock maze instead of a bare bordered arena.
func WithDefaultLayout() SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.walls = DefaultLayout(ts.cfg)[4:] // border is added unconditionally
	}}
}

// WithVerbose enables per-tick verbose logging.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) { ts.Log = NewDecisionLog(v) }}
}

// WithBotAt places the bot tank (index 1).
func WithBotAt(x, y, heading float64) SimOption {
	return SimOption{simOptActor, func(ts *TestSim) { ts.placeTank(1, x, y, heading) }}
}

// WithTargetAt places the target tank (index 0).
func WithTargetAt(x, y, heading float64) SimOption {
	return SimOption{simOptActor, func(ts *TestSim) { ts.placeTank(0, x, y, heading) }}
}

// WithBullet injects an in-flight bullet owned by the given tank id. The
// safe-frame grace is already elapsed.
func WithBullet(x, y, vx, vy float64, owner int) SimOption {
	return SimOption{simOptActor, func(ts *TestSim) {
		ts.World.bullets = append(ts.World.bullets, &Bullet{
			x: x, y: y, vx: vx, vy: vy, owner: owner,
		})
	}}
}

// WithTargetScript drives the target tank from a tick-indexed function.
func WithTargetScript(fn func(tick int) Action) SimOption {
	return SimOption{simOptActor, func(ts *TestSim) { ts.playerScript = fn }}
}

// WithTargetBot drives the target tank with its own decision core, for
// bot-vs-bot runs.
func WithTargetBot() SimOption {
	return SimOption{simOptActor, func(ts *TestSim) {
		ts.playerBot = NewBot(&ts.World.cfg, ts.World.grid, ts.Log, "p1")
	}}
}

// NewTestSim constructs a harness from the options in two ordered passes:
// infrastructure first (config, walls), then actors once the world exists.
func NewTestSim(opts ...SimOption) *TestSim {
	ts := &TestSim{cfg: DefaultConfig()}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(ts)
		}
	}
	if ts.Log == nil {
		ts.Log = NewDecisionLog(false)
	}

	walls := append(BorderWalls(ts.cfg), ts.walls...)
	ts.World = NewWorld(ts.cfg, walls, 500, 500, ts.Log)
	ts.Bot = NewBot(&ts.World.cfg, ts.World.grid, ts.Log, "bot")

	for _, o := range opts {
		if o.kind == simOptActor {
			o.fn(ts)
		}
	}
	return ts
}

func (ts *TestSim) placeTank(i int, x, y, heading float64) {
	t := ts.World.tanks[i]
	t.x, t.y = x, y
	t.lastX, t.lastY = x, y
	t.heading = normalizeDeg(heading)
}

// PlayerBot returns the optional decision core driving tank 0.
func (ts *TestSim) PlayerBot() *Bot { return ts.playerBot }

// StepOnce runs exactly one tick and returns the bot's chosen action.
func (ts *TestSim) StepOnce() Action {
	a1 := ActionHold
	if ts.playerBot != nil {
		a1 = ts.playerBot.Decide(ts.World.Input(0))
	} else if ts.playerScript != nil {
		a1 = ts.playerScript(ts.World.tick)
	}
	a2 := ts.Bot.Decide(ts.World.Input(1))
	ts.World.Step(a1, a2)
	return a2
}

// RunTicks advances the simulation up to n ticks, stopping early when the
// round ends.
func (ts *TestSim) RunTicks(n int) {
	for i := 0; i < n; i++ {
		ts.StepOnce()
		if over, _ := ts.World.Over(); over {
			return
		}
	}
}
