package game

import "math"

// stuckDetector samples displacement on a fixed cadence and trips after a
// run of near-zero samples.
type stuckDetector struct {
	lastX, lastY float64
	haveSample   bool
	lowMoves     int
}

func (sd *stuckDetector) reset(x, y float64) {
	sd.lastX, sd.lastY = x, y
	sd.haveSample = true
	sd.lowMoves = 0
}

// check records a displacement sample and reports whether the tank should be
// considered stuck. Callers invoke it only on the sampling cadence.
func (sd *stuckDetector) check(x, y float64, cfg *Config) bool {
	if !sd.haveSample {
		sd.reset(x, y)
		return false
	}
	moved := dist(sd.lastX, sd.lastY, x, y)
	sd.lastX, sd.lastY = x, y
	if moved >= cfg.StuckMinMove {
		sd.lowMoves = 0
		return false
	}
	sd.lowMoves++
	if sd.lowMoves >= cfg.StuckTrigger {
		sd.lowMoves = 0
		return true
	}
	return false
}

// escapeHeading scans wall occupancy at fixed angular increments around the
// tank and returns the heading pointing away from the densest sector. With
// walls on every side the scan still yields a definite answer: ties resolve
// to the first sector, so the result is always a valid heading.
func escapeHeading(x, y float64, walls []rect, cfg *Config) float64 {
	type sample struct {
		deg     float64
		blocked bool
	}
	var samples []sample
	for deg := 0.0; deg < 360; deg += cfg.RecoveryScanStep {
		dx, dy := headingVector(deg)
		sx := x + dx*cfg.RecoveryScanDist
		sy := y + dy*cfg.RecoveryScanDist
		blocked := sx < 0 || sy < 0 || sx > float64(cfg.ArenaWidth) || sy > float64(cfg.ArenaHeight)
		if !blocked {
			for _, w := range walls {
				if pointInRect(sx, sy, w) {
					blocked = true
					break
				}
			}
		}
		samples = append(samples, sample{deg: deg, blocked: blocked})
	}

	// Slide a sector window over the samples and find the densest one.
	perSector := int(cfg.RecoverySector / cfg.RecoveryScanStep)
	if perSector < 1 {
		perSector = 1
	}
	bestStart := 0
	bestCount := -1
	for i := range samples {
		count := 0
		for j := 0; j < perSector; j++ {
			if samples[(i+j)%len(samples)].blocked {
				count++
			}
		}
		if count > bestCount {
			bestCount = count
			bestStart = i
		}
	}

	center := samples[bestStart].deg + cfg.RecoverySector/2
	return normalizeDeg(center + 180)
}

// recoveryLeg converts the signed error toward the escape heading into a
// timed override. Large errors rotate on short timers so the correction is
// re-evaluated quickly; once aligned the tank drives forward for the long
// clearing burst. done is true when this leg is the final forward push.
func recoveryLeg(heading, escape float64, cfg *Config) (act Action, ticks int, done bool) {
	err := normalizeDeg(escape - heading)
	switch {
	case math.Abs(err) > cfg.RecoveryAlignLarge:
		if err > 0 {
			return ActionRotateCCW, cfg.RecoveryTurnFast, false
		}
		return ActionRotateCW, cfg.RecoveryTurnFast, false
	case math.Abs(err) > cfg.RecoveryAlignSmall:
		if err > 0 {
			return ActionRotateCCW, cfg.RecoveryTurnSlow, false
		}
		return ActionRotateCW, cfg.RecoveryTurnSlow, false
	default:
		return ActionAdvance, cfg.RecoveryForward, true
	}
}
