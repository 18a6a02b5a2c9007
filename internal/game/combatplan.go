package game

import "math"

// planCombat decides the engagement action against a visible target. It
// returns ok=false when the target is out of the engagement envelope or a
// wall blocks the firing line, deferring to the chase behaviour.
func planCombat(self Pose, target TankSnapshot, walls []rect, cooldownReady bool, cfg *Config) (Action, bool) {
	d := dist(self.X, self.Y, target.X, target.Y)
	if d > cfg.VisionRange {
		return ActionHold, false
	}

	leadX, leadY := leadPoint(self, target, d, cfg)
	if !HasLineOfSight(self.X, self.Y, leadX, leadY, walls) {
		return ActionHold, false
	}

	if cooldownReady && simulateShot(self, target, walls, cfg) {
		return ActionFire, true
	}

	diff := normalizeDeg(headingToDeg(self.X, self.Y, leadX, leadY) - self.Heading)
	if math.Abs(diff) <= cfg.AimTolerance {
		return ActionHold, true // on target, waiting for the shot to line up
	}
	if diff > 0 {
		return ActionRotateCCW, true
	}
	return ActionRotateCW, true
}

// leadPoint projects the target forward by the bullet's flight time so the
// shot meets it, clamped into the arena.
func leadPoint(self Pose, target TankSnapshot, d float64, cfg *Config) (float64, float64) {
	if d <= 0 {
		return target.X, target.Y
	}
	flight := d / cfg.BulletSpeed
	x := target.X + target.VX*flight
	y := target.Y + target.VY*flight
	ts := float64(cfg.TankSize)
	x = math.Max(ts, math.Min(float64(cfg.ArenaWidth)-ts, x))
	y = math.Max(ts, math.Min(float64(cfg.ArenaHeight)-ts, y))
	return x, y
}

// simulateShot steps a virtual bullet from the muzzle along the current
// heading, reflecting off walls (mirroring the velocity component
// perpendicular to the struck face, chosen by overlap depth) up to the
// bounce budget. It reports whether the shot reaches the target's hit-box
// without first striking the shooter's own hull; the self check only starts
// once the bullet has travelled past the safe-exit distance. An exhausted
// step budget counts as a miss.
func simulateShot(self Pose, target TankSnapshot, walls []rect, cfg *Config) bool {
	dx, dy := headingVector(self.Heading)
	muzzle := float64(cfg.TankSize) / 1.5
	x := self.X + dx*muzzle
	y := self.Y + dy*muzzle
	vx := dx * cfg.BulletSpeed
	vy := dy * cfg.BulletSpeed

	bHalf := float64(cfg.BulletSize) / 2
	tHalf := float64(cfg.TankSize) / 2
	travelled := muzzle
	bounces := 0

	for step := 0; step < cfg.ShotMaxSteps; step++ {
		x += vx
		y += vy
		travelled += cfg.BulletSpeed

		if x < 0 || y < 0 || x > float64(cfg.ArenaWidth) || y > float64(cfg.ArenaHeight) {
			return false
		}

		for _, w := range walls {
			if !aabbOverlapsRect(x-bHalf, y-bHalf, x+bHalf, y+bHalf, w) {
				continue
			}
			// Penetration depth per axis decides which face was struck:
			// the shallower axis is the one the bullet entered through.
			depthX := math.Min(x+bHalf-float64(w.x), float64(w.x+w.w)-(x-bHalf))
			depthY := math.Min(y+bHalf-float64(w.y), float64(w.y+w.h)-(y-bHalf))
			if depthX < depthY {
				vx = -vx
				x += vx
			} else {
				vy = -vy
				y += vy
			}
			bounces++
			if bounces > cfg.MaxBounces {
				return false
			}
			break
		}

		if aabbOverlapsRect(x-bHalf, y-bHalf, x+bHalf, y+bHalf,
			rect{x: int(target.X - tHalf), y: int(target.Y - tHalf), w: cfg.TankSize, h: cfg.TankSize}) {
			return true
		}
		if travelled > cfg.SafeExitDist &&
			aabbOverlapsRect(x-bHalf, y-bHalf, x+bHalf, y+bHalf,
				rect{x: int(self.X - tHalf), y: int(self.Y - tHalf), w: cfg.TankSize, h: cfg.TankSize}) {
			return false // the ricochet would come back on us
		}
	}
	return false
}
