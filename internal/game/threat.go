package game

import "math"

// Threat is a transient record for the single most imminent hostile bullet.
// Recomputed every tick, never persisted.
type Threat struct {
	Bullet       BulletSnapshot
	TimeToImpact float64 // ticks until the projected closest approach
	MissDist     float64 // perpendicular miss distance, pixels
}

// assessThreats scans the hostile bullets and returns the most imminent one,
// or nil when nothing qualifies. A bullet is a threat only when it is inside
// the detection radius, actually closing on the tank, unoccluded by walls,
// and projected to pass within half a hull width plus the safety margin.
func assessThreats(self Pose, selfID int, bullets []BulletSnapshot, walls []rect, cfg *Config) *Threat {
	half := float64(cfg.TankSize) / 2
	var best *Threat
	for _, b := range bullets {
		if b.Owner == selfID {
			continue
		}
		toX := self.X - b.X
		toY := self.Y - b.Y
		if math.Hypot(toX, toY) > cfg.ThreatRadius {
			continue
		}
		speed := math.Hypot(b.VX, b.VY)
		if speed < 1e-9 {
			continue // stationary: no closing velocity, no threat
		}
		closing := toX*b.VX + toY*b.VY
		if closing <= 0 {
			continue // moving away or tangent
		}
		if !HasLineOfSight(b.X, b.Y, self.X, self.Y, walls) {
			continue // a wall will take the hit
		}
		miss := math.Abs(toX*b.VY-toY*b.VX) / speed
		if miss > half+cfg.ThreatMargin {
			continue
		}
		tti := closing / (speed * speed)
		if best == nil || tti < best.TimeToImpact {
			best = &Threat{Bullet: b, TimeToImpact: tti, MissDist: miss}
		}
	}
	return best
}

// evasionPoint picks a dodge goal perpendicular to the threat's velocity,
// on whichever side keeps the tank farther from walls and inside walkable
// space. Ties resolve to the counter-clockwise side for determinism.
func evasionPoint(self Pose, th *Threat, walls []rect, grid *Grid, cfg *Config) (float64, float64) {
	speed := math.Hypot(th.Bullet.VX, th.Bullet.VY)
	if speed < 1e-9 {
		return self.X, self.Y
	}
	px := -th.Bullet.VY / speed
	py := th.Bullet.VX / speed

	score := func(sx, sy float64) float64 {
		worst := math.Inf(1)
		n := cfg.ClearanceProbes
		for i := 1; i <= n; i++ {
			t := cfg.DodgeDist * float64(i) / float64(n)
			x := self.X + sx*t
			y := self.Y + sy*t
			if !grid.IsWalkable(grid.CellAt(x, y)) {
				return -1 // probe inside a wall or out of bounds
			}
			if d := nearestWallDist(x, y, walls); d < worst {
				worst = d
			}
		}
		return worst
	}

	if score(-px, -py) > score(px, py) {
		px, py = -px, -py
	}
	return self.X + px*cfg.DodgeDist, self.Y + py*cfg.DodgeDist
}
