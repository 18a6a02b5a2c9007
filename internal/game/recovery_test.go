package game

import (
	"math"
	"testing"
)

func TestStuckDetector_TripsAfterConsecutiveLowMoves(t *testing.T) {
	cfg := DefaultConfig() // StuckMinMove 6, StuckTrigger 2
	var sd stuckDetector

	if sd.check(100, 100, &cfg) {
		t.Fatal("first sample only seeds the baseline")
	}
	if sd.check(101, 100, &cfg) {
		t.Fatal("one low sample must not trip")
	}
	if !sd.check(102, 100, &cfg) {
		t.Fatal("second consecutive low sample must trip")
	}
}

func TestStuckDetector_MovementResetsRun(t *testing.T) {
	cfg := DefaultConfig()
	var sd stuckDetector

	sd.check(100, 100, &cfg)
	sd.check(101, 100, &cfg) // low
	sd.check(120, 100, &cfg) // big move clears the run
	if sd.check(121, 100, &cfg) {
		t.Fatal("a single low sample after real movement must not trip")
	}
}

func TestEscapeHeading_PointsAwayFromWallCluster(t *testing.T) {
	cfg := DefaultConfig()
	// A solid slab to the right of the tank; everything else open.
	walls := []rect{{x: 330, y: 100, w: 100, h: 400}}
	h := escapeHeading(300, 300, walls, &cfg)
	// The densest blocked sector faces the slab (around 0 degrees), so the
	// escape must point into the open left half-plane.
	if math.Abs(normalizeDeg(h-180)) > 90 {
		t.Fatalf("escape heading %.0f does not point away from the slab", h)
	}
}

func TestEscapeHeading_FullyBoxedInStillDefinite(t *testing.T) {
	cfg := DefaultConfig()
	walls := []rect{{x: 200, y: 200, w: 200, h: 200}} // tank inside the slab
	h1 := escapeHeading(300, 300, walls, &cfg)
	h2 := escapeHeading(300, 300, walls, &cfg)
	if h1 != h2 {
		t.Fatalf("boxed-in escape heading must be deterministic: %.0f vs %.0f", h1, h2)
	}
	if h1 <= -180 || h1 > 180 {
		t.Fatalf("escape heading %.0f outside the normalized range", h1)
	}
}

func TestRecoveryLeg_Staging(t *testing.T) {
	cfg := DefaultConfig()

	// Large error: fast-timer rotation toward the escape heading.
	act, ticks, done := recoveryLeg(0, 120, &cfg)
	if act != ActionRotateCCW || ticks != cfg.RecoveryTurnFast || done {
		t.Fatalf("large positive error: got %v/%d/%v", act, ticks, done)
	}
	act, ticks, done = recoveryLeg(0, -120, &cfg)
	if act != ActionRotateCW || ticks != cfg.RecoveryTurnFast || done {
		t.Fatalf("large negative error: got %v/%d/%v", act, ticks, done)
	}

	// Moderate error: slower timer.
	act, ticks, done = recoveryLeg(0, 30, &cfg)
	if act != ActionRotateCCW || ticks != cfg.RecoveryTurnSlow || done {
		t.Fatalf("moderate error: got %v/%d/%v", act, ticks, done)
	}

	// Aligned: the long forward burst finishes the recovery.
	act, ticks, done = recoveryLeg(10, 12, &cfg)
	if act != ActionAdvance || ticks != cfg.RecoveryForward || !done {
		t.Fatalf("aligned: got %v/%d/%v", act, ticks, done)
	}
}
