package game

import "math"

// Bullet is one in-flight round. Movement is stepped per axis so a wall hit
// reverses exactly the velocity component perpendicular to the struck face
// and leaves the parallel component untouched.
type Bullet struct {
	x, y       float64
	vx, vy     float64
	owner      int
	bounces    int
	safeFrames int // grace period: cannot hit its owner while positive
	dead       bool
}

// NewBullet spawns a round at (x,y) travelling along heading degrees.
func NewBullet(x, y, heading float64, owner int, cfg *Config) *Bullet {
	dx, dy := headingVector(heading)
	return &Bullet{
		x:          x,
		y:          y,
		vx:         dx * cfg.BulletSpeed,
		vy:         dy * cfg.BulletSpeed,
		owner:      owner,
		safeFrames: cfg.SafeFrames,
	}
}

// Update advances the bullet one tick, bouncing off walls per axis. The
// bullet dies when it leaves the arena or exceeds its bounce budget.
func (bl *Bullet) Update(walls []rect, cfg *Config) {
	if bl.dead {
		return
	}
	if bl.safeFrames > 0 {
		bl.safeFrames--
	}
	half := float64(cfg.BulletSize) / 2

	bl.x += bl.vx
	if bl.hitsAnyWall(walls, half) {
		bl.vx = -bl.vx
		bl.bounces++
		bl.x += bl.vx
	}

	bl.y += bl.vy
	if bl.hitsAnyWall(walls, half) {
		bl.vy = -bl.vy
		bl.bounces++
		bl.y += bl.vy
	}

	if bl.x < 0 || bl.x > float64(cfg.ArenaWidth) ||
		bl.y < 0 || bl.y > float64(cfg.ArenaHeight) ||
		bl.bounces > cfg.MaxBounces {
		bl.dead = true
	}
}

func (bl *Bullet) hitsAnyWall(walls []rect, half float64) bool {
	for _, w := range walls {
		if aabbOverlapsRect(bl.x-half, bl.y-half, bl.x+half, bl.y+half, w) {
			return true
		}
	}
	return false
}

// HitsTank tests the bullet against a tank hull, honoring the safe-frame
// grace period for the owner.
func (bl *Bullet) HitsTank(t *Tank, cfg *Config) bool {
	if bl.dead || !t.alive {
		return false
	}
	if t.id == bl.owner && bl.safeFrames > 0 {
		return false
	}
	bh := float64(cfg.BulletSize) / 2
	th := float64(cfg.TankSize) / 2
	return aabbOverlapsRect(bl.x-bh, bl.y-bh, bl.x+bh, bl.y+bh,
		rect{x: int(t.x - th), y: int(t.y - th), w: cfg.TankSize, h: cfg.TankSize})
}

// Snapshot returns the read-only view the decision core consumes.
func (bl *Bullet) Snapshot() BulletSnapshot {
	return BulletSnapshot{
		X:          bl.x,
		Y:          bl.y,
		VX:         bl.vx,
		VY:         bl.vy,
		Owner:      bl.owner,
		Bounces:    bl.bounces,
		SafeFrames: bl.safeFrames,
	}
}

// Velocity returns the current velocity vector.
func (bl *Bullet) Velocity() (float64, float64) { return bl.vx, bl.vy }

// Speed returns the scalar speed.
func (bl *Bullet) Speed() float64 { return math.Hypot(bl.vx, bl.vy) }

// Dead reports whether the bullet should be removed.
func (bl *Bullet) Dead() bool { return bl.dead }
