package game

import "math"

// trajResult is the outcome of forward-simulating one motion primitive.
type trajResult struct {
	end      Pose
	collided bool
	minClear float64      // smallest wall clearance sampled along the way
	samples  [][2]float64 // position after each simulated tick
}

// simulatePrimitive rolls the pose forward through the primitive's steps.
// Moves use the constant per-tick linear speed, rotations the constant
// angular rate, holds freeze the pose. A step that would put the hull into a
// wall or outside the arena is rejected (the pose freezes in place) but the
// simulation keeps running with the trajectory flagged as collided.
func simulatePrimitive(pose Pose, prim MotionPrimitive, walls []rect, cfg *Config) trajResult {
	res := trajResult{end: pose, minClear: math.Inf(1)}
	half := float64(cfg.TankSize) / 2

	for _, step := range prim.Steps {
		for t := 0; t < step.Ticks; t++ {
			switch step.Act {
			case ActionRotateCCW:
				res.end.Heading = normalizeDeg(res.end.Heading + cfg.TurnRate)
			case ActionRotateCW:
				res.end.Heading = normalizeDeg(res.end.Heading - cfg.TurnRate)
			case ActionAdvance, ActionReverse:
				dx, dy := headingVector(res.end.Heading)
				if step.Act == ActionReverse {
					dx, dy = -dx, -dy
				}
				nx := res.end.X + dx*cfg.TankSpeed
				ny := res.end.Y + dy*cfg.TankSpeed
				if hullCollides(nx, ny, half, walls, cfg) {
					res.collided = true
				} else {
					res.end.X = nx
					res.end.Y = ny
				}
			}

			res.samples = append(res.samples, [2]float64{res.end.X, res.end.Y})
			if c := nearestWallDist(res.end.X, res.end.Y, walls); c < res.minClear {
				res.minClear = c
			}
		}
	}
	return res
}

// hullCollides tests the tank's AABB at (x,y) against the walls and the
// arena bounds.
func hullCollides(x, y, half float64, walls []rect, cfg *Config) bool {
	if x-half < 0 || y-half < 0 ||
		x+half > float64(cfg.ArenaWidth) || y+half > float64(cfg.ArenaHeight) {
		return true
	}
	for _, w := range walls {
		if aabbOverlapsRect(x-half, y-half, x+half, y+half, w) {
			return true
		}
	}
	return false
}

func nearestWallDist(x, y float64, walls []rect) float64 {
	best := math.Inf(1)
	for _, w := range walls {
		if d := pointRectDist(x, y, w); d < best {
			best = d
		}
	}
	return best
}

// scoreTrajectory computes the weighted cost of a simulated trajectory
// against the steering objectives. Lower is better.
func scoreTrajectory(res trajResult, goalX, goalY float64, path [][2]float64, bullets []BulletSnapshot, cfg *Config) float64 {
	w := cfg.Weights
	score := 0.0
	if res.collided {
		score += w.Collision
	}

	// Heading error toward the goal at the trajectory endpoint.
	want := headingToDeg(res.end.X, res.end.Y, goalX, goalY)
	score += math.Abs(normalizeDeg(want-res.end.Heading)) * w.Heading

	// Adherence to the near portion of the global path, when one exists.
	if len(path) > 0 {
		n := min(cfg.PathAdhereN, len(path))
		best := math.Inf(1)
		for i := 0; i < n; i++ {
			if d := dist(res.end.X, res.end.Y, path[i][0], path[i][1]); d < best {
				best = d
			}
		}
		score += best * w.PathAdhere
	}

	// Clearance penalty only below the threshold.
	if res.minClear < cfg.ClearanceMin {
		score += (cfg.ClearanceMin - res.minClear) * w.Clearance
	}

	// Bullet proximity risk: extrapolate each hostile bullet linearly and
	// charge the worst deficit along the trajectory, but only while the
	// bullet is actually closing on the sampled position.
	for _, b := range bullets {
		speed := math.Hypot(b.VX, b.VY)
		if speed < 1e-9 {
			continue // degenerate: stationary bullet carries no closing risk
		}
		worst := 0.0
		for t, s := range res.samples {
			ft := float64(t + 1)
			bx := b.X + b.VX*ft
			by := b.Y + b.VY*ft
			if (s[0]-bx)*b.VX+(s[1]-by)*b.VY <= 0 {
				continue
			}
			if d := dist(s[0], s[1], bx, by); d < cfg.RiskRadius {
				if deficit := cfg.RiskRadius - d; deficit > worst {
					worst = deficit
				}
			}
		}
		score += worst * w.Risk
	}

	// Residual distance to the goal.
	score += dist(res.end.X, res.end.Y, goalX, goalY) * w.GoalDist
	return score
}

// selectAction evaluates every primitive in the catalog from the current
// pose and returns the first action of the lowest-cost sequence along with
// the winning catalog index. Strict less-than keeps the choice deterministic:
// equal scores resolve to the earliest catalog entry.
func selectAction(pose Pose, goalX, goalY float64, path [][2]float64, walls []rect, bullets []BulletSnapshot, cfg *Config) (Action, int) {
	bestScore := math.Inf(1)
	bestIdx := -1
	for i, prim := range cfg.Catalog {
		res := simulatePrimitive(pose, prim, walls, cfg)
		s := scoreTrajectory(res, goalX, goalY, path, bullets, cfg)
		if s < bestScore {
			bestScore = s
			bestIdx = i
		}
	}
	if bestIdx < 0 {
		return ActionHold, -1
	}
	prim := cfg.Catalog[bestIdx]
	if len(prim.Steps) == 0 {
		return ActionHold, bestIdx
	}
	return prim.Steps[0].Act, bestIdx
}
