package game

// Tank is one combatant. Movement is integrated per tick from the discrete
// action; a move that would put the hull into a wall is rolled back, which
// is what the stuck detector ultimately keys off.
type Tank struct {
	id      int
	label   string
	x, y    float64
	heading float64 // degrees, (-180, 180]

	// Finite-difference velocity estimate, refreshed once per tick.
	vx, vy       float64
	lastX, lastY float64

	cooldown int
	alive    bool
}

// NewTank places a tank at (x,y) facing heading degrees.
func NewTank(id int, label string, x, y, heading float64) *Tank {
	return &Tank{
		id:      id,
		label:   label,
		x:       x,
		y:       y,
		heading: normalizeDeg(heading),
		lastX:   x,
		lastY:   y,
		alive:   true,
	}
}

// Apply executes one action: rotation, movement with collision rollback,
// and cooldown bookkeeping. It reports whether the tank wants to fire this
// tick (cooldown permitting); the World decides whether a bullet actually
// spawns, since the live-bullet cap lives there.
func (t *Tank) Apply(act Action, walls []rect, cfg *Config) bool {
	if !t.alive {
		return false
	}

	switch act {
	case ActionRotateCCW:
		t.heading = normalizeDeg(t.heading + cfg.TurnRate)
	case ActionRotateCW:
		t.heading = normalizeDeg(t.heading - cfg.TurnRate)
	case ActionAdvance, ActionReverse:
		dx, dy := headingVector(t.heading)
		if act == ActionReverse {
			dx, dy = -dx, -dy
		}
		nx := t.x + dx*cfg.TankSpeed
		ny := t.y + dy*cfg.TankSpeed
		if !hullCollides(nx, ny, float64(cfg.TankSize)/2, walls, cfg) {
			t.x = nx
			t.y = ny
		}
	}

	if t.cooldown > 0 {
		t.cooldown--
	}
	return act == ActionFire && t.cooldown == 0
}

// UpdateVelocity refreshes the finite-difference velocity estimate. Called
// once per tick after movement resolves.
func (t *Tank) UpdateVelocity() {
	t.vx = t.x - t.lastX
	t.vy = t.y - t.lastY
	t.lastX = t.x
	t.lastY = t.y
}

// Snapshot returns the read-only view the decision core consumes.
func (t *Tank) Snapshot() TankSnapshot {
	return TankSnapshot{
		ID:            t.id,
		X:             t.x,
		Y:             t.y,
		Heading:       t.heading,
		VX:            t.vx,
		VY:            t.vy,
		CooldownReady: t.cooldown == 0,
	}
}

// Pos returns the hull center.
func (t *Tank) Pos() (float64, float64) { return t.x, t.y }

// Heading returns the barrel direction in degrees.
func (t *Tank) Heading() float64 { return t.heading }

// Alive reports whether the tank is still in the round.
func (t *Tank) Alive() bool { return t.alive }

// Label returns the display/log label.
func (t *Tank) Label() string { return t.label }

// ID returns the tank identity used on bullets.
func (t *Tank) ID() int { return t.id }
