package game

import "fmt"

// Pose is a continuous position plus a heading in degrees, wrapped to
// (-180, 180].
type Pose struct {
	X       float64
	Y       float64
	Heading float64
}

// TankSnapshot is the read-only per-tick view of one tank that the decision
// core consumes. Velocity is a finite-difference estimate, not an integrated
// quantity.
type TankSnapshot struct {
	ID            int
	X, Y          float64
	Heading       float64
	VX, VY        float64
	CooldownReady bool
}

// BulletSnapshot is the read-only per-tick view of one in-flight bullet.
type BulletSnapshot struct {
	X, Y       float64
	VX, VY     float64
	Owner      int
	Bounces    int
	SafeFrames int
}

// BotInput is the full world snapshot handed to Decide each tick. The core
// never mutates it.
type BotInput struct {
	Tick    int
	Self    TankSnapshot
	Target  TankSnapshot
	Walls   []rect
	Bullets []BulletSnapshot
}

// State is the arbiter's behaviour state. Exactly one holds per tick.
type State int

const (
	StateChasing State = iota
	StateEngaging
	StateDodging
	StateRecovering
)

func (s State) String() string {
	switch s {
	case StateChasing:
		return "chasing"
	case StateEngaging:
		return "engaging"
	case StateDodging:
		return "dodging"
	case StateRecovering:
		return "recovering"
	default:
		return "unknown"
	}
}

// Bot is one tank's decision core plus its persistent memory across ticks:
// the path cache, look-ahead point, stuck counters and recovery override.
// A Bot is owned by exactly one tank and shares nothing with other bots;
// the occupancy grid it reads is shared but immutable between rebuilds.
type Bot struct {
	cfg     *Config
	grid    *Grid
	planner *Planner
	log     *DecisionLog
	label   string

	state         State
	path          [][2]float64
	lookX, lookY  float64
	hasLook       bool
	lastPrimitive int

	stuck         stuckDetector
	recovering    bool
	escape        float64
	recoveryAct   Action
	recoveryTicks int
}

// NewBot builds a decision core over the shared occupancy grid.
func NewBot(cfg *Config, grid *Grid, log *DecisionLog, label string) *Bot {
	return &Bot{
		cfg:           cfg,
		grid:          grid,
		planner:       NewPlanner(grid, cfg.Strategy, cfg.EightConnected, cfg.NearestWalkableRadius),
		log:           log,
		label:         label,
		state:         StateChasing,
		lastPrimitive: -1,
	}
}

// Reset clears the bot's per-episode memory. Call on respawn, passing the
// freshly rebuilt grid.
func (b *Bot) Reset(grid *Grid) {
	b.grid = grid
	b.planner = NewPlanner(grid, b.cfg.Strategy, b.cfg.EightConnected, b.cfg.NearestWalkableRadius)
	b.state = StateChasing
	b.path = nil
	b.hasLook = false
	b.lastPrimitive = -1
	b.stuck = stuckDetector{}
	b.recovering = false
	b.recoveryTicks = 0
}

// State reports the arbiter state chosen on the last Decide call.
func (b *Bot) State() State { return b.state }

// Path returns the cached global path waypoints, for overlays and tests.
func (b *Bot) Path() [][2]float64 { return b.path }

// LookAhead returns the current steering point, if one exists.
func (b *Bot) LookAhead() (float64, float64, bool) { return b.lookX, b.lookY, b.hasLook }

// LastPrimitive returns the catalog index chosen by the last local-planner
// invocation, or -1. Used for determinism checks.
func (b *Bot) LastPrimitive() int { return b.lastPrimitive }

// Decide runs the priority-arbitrated state machine for one tick and returns
// exactly one action. Priority, highest first: active recovery timer, newly
// detected stuck condition, incoming threat, engageable target, chase.
// Every failure inside degrades to hold or direct-bearing steering; nothing
// here panics or errors.
func (b *Bot) Decide(in BotInput) Action {
	cfg := b.cfg
	self := Pose{X: in.Self.X, Y: in.Self.Y, Heading: in.Self.Heading}

	// Active recovery override: count down and repeat its fixed action.
	if b.recoveryTicks > 0 {
		b.recoveryTicks--
		b.setState(in.Tick, StateRecovering)
		return b.recoveryAct
	}
	if b.recovering {
		return b.nextRecoveryLeg(in.Tick, self)
	}

	// Stuck detection on the sampling cadence.
	if in.Tick > 0 && in.Tick%cfg.StuckCheckEvery == 0 &&
		b.stuck.check(self.X, self.Y, cfg) {
		b.escape = escapeHeading(self.X, self.Y, in.Walls, cfg)
		b.recovering = true
		b.log.Add(in.Tick, b.label, "recovery", "stuck",
			fmt.Sprintf("escape=%.0f°", b.escape), b.escape)
		return b.nextRecoveryLeg(in.Tick, self)
	}

	// Incoming bullet: dodge perpendicular to it.
	if th := assessThreats(self, in.Self.ID, in.Bullets, in.Walls, cfg); th != nil {
		b.setState(in.Tick, StateDodging)
		gx, gy := evasionPoint(self, th, in.Walls, b.grid, cfg)
		b.log.AddVerbose(in.Tick, b.label, "threat", "dodge",
			fmt.Sprintf("tti=%.1f miss=%.1f", th.TimeToImpact, th.MissDist), th.TimeToImpact)
		act, idx := selectAction(self, gx, gy, nil, in.Walls, hostileBullets(in), cfg)
		b.lastPrimitive = idx
		return act
	}

	// Engageable target: aim and shoot.
	if act, ok := planCombat(self, in.Target, in.Walls, in.Self.CooldownReady, cfg); ok {
		b.setState(in.Tick, StateEngaging)
		b.path = nil // fighting invalidates the chase path
		b.hasLook = false
		if act == ActionFire {
			b.log.Add(in.Tick, b.label, "combat", "fire", "simulated hit", 0)
		}
		return act
	}

	// Default: chase along the global path.
	b.setState(in.Tick, StateChasing)
	if in.Tick%cfg.PathUpdateEvery == 0 || len(b.path) == 0 {
		b.recomputePath(in.Tick, self, in.Target)
	}

	var gx, gy float64
	b.path, gx, gy, b.hasLook = advancePath(b.path, self.X, self.Y, cfg.ArrivalDist, cfg.LookAheadDist)
	if !b.hasLook {
		// Unreachable or depleted path: steer at the raw target instead.
		gx, gy = in.Target.X, in.Target.Y
	}
	b.lookX, b.lookY = gx, gy

	act, idx := selectAction(self, gx, gy, b.path, in.Walls, hostileBullets(in), cfg)
	b.lastPrimitive = idx
	return act
}

// nextRecoveryLeg plans the next timed override toward the escape heading
// and arms its countdown. The final forward leg ends the recovery episode
// once its timer expires.
func (b *Bot) nextRecoveryLeg(tick int, self Pose) Action {
	act, ticks, done := recoveryLeg(self.Heading, b.escape, b.cfg)
	b.recoveryAct = act
	b.recoveryTicks = ticks - 1 // this call consumes the first tick
	if done {
		b.recovering = false
	}
	b.setState(tick, StateRecovering)
	b.log.AddVerbose(tick, b.label, "recovery", "leg",
		fmt.Sprintf("%s for %d ticks", act, ticks), float64(ticks))
	return act
}

func (b *Bot) recomputePath(tick int, self Pose, target TankSnapshot) {
	cells := b.planner.FindPath(b.grid.CellAt(self.X, self.Y), b.grid.CellAt(target.X, target.Y))
	b.path = b.path[:0]
	for _, c := range cells {
		wx, wy := b.grid.CenterOf(c)
		b.path = append(b.path, [2]float64{wx, wy})
	}
	b.log.AddVerbose(tick, b.label, "path", "recompute",
		fmt.Sprintf("%d waypoints", len(b.path)), float64(len(b.path)))
}

func (b *Bot) setState(tick int, s State) {
	if s == b.state {
		return
	}
	b.log.Add(tick, b.label, "state", "change",
		fmt.Sprintf("%s → %s", b.state, s), 0)
	b.state = s
}

// hostileBullets filters the snapshot down to bullets that can hurt us.
func hostileBullets(in BotInput) []BulletSnapshot {
	out := make([]BulletSnapshot, 0, len(in.Bullets))
	for _, b := range in.Bullets {
		if b.Owner != in.Self.ID {
			out = append(out, b)
		}
	}
	return out
}
