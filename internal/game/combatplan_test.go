package game

import (
	"math"
	"testing"
)

func TestPlanCombat_ClearShotFires(t *testing.T) {
	cfg := DefaultConfig()
	self := Pose{X: 200, Y: 300, Heading: 0}
	target := TankSnapshot{ID: 1, X: 400, Y: 300}
	act, ok := planCombat(self, target, nil, true, &cfg)
	if !ok {
		t.Fatal("stationary target dead ahead inside range must be engageable")
	}
	if act != ActionFire {
		t.Fatalf("expected fire, got %v", act)
	}
}

func TestPlanCombat_CooldownHoldsAim(t *testing.T) {
	cfg := DefaultConfig()
	self := Pose{X: 200, Y: 300, Heading: 0}
	target := TankSnapshot{ID: 1, X: 400, Y: 300}
	act, ok := planCombat(self, target, nil, false, &cfg)
	if !ok || act != ActionHold {
		t.Fatalf("aligned but cooling down should hold, got %v ok=%v", act, ok)
	}
}

func TestPlanCombat_RotateSign(t *testing.T) {
	cfg := DefaultConfig()
	self := Pose{X: 300, Y: 300, Heading: 0}

	// Target above on screen: bearing is +90 in the CCW-positive convention.
	act, ok := planCombat(self, TankSnapshot{ID: 1, X: 300, Y: 150}, nil, true, &cfg)
	if !ok || act != ActionRotateCCW {
		t.Fatalf("target above should rotate counter-clockwise, got %v ok=%v", act, ok)
	}

	act, ok = planCombat(self, TankSnapshot{ID: 1, X: 300, Y: 450}, nil, true, &cfg)
	if !ok || act != ActionRotateCW {
		t.Fatalf("target below should rotate clockwise, got %v ok=%v", act, ok)
	}
}

func TestPlanCombat_OutOfRangeDefers(t *testing.T) {
	cfg := DefaultConfig()
	self := Pose{X: 100, Y: 300, Heading: 0}
	target := TankSnapshot{ID: 1, X: 100 + cfg.VisionRange + 50, Y: 300}
	if _, ok := planCombat(self, target, nil, true, &cfg); ok {
		t.Fatal("target beyond vision range must defer to chasing")
	}
}

func TestPlanCombat_BlockedLineDefers(t *testing.T) {
	cfg := DefaultConfig()
	self := Pose{X: 200, Y: 300, Heading: 0}
	target := TankSnapshot{ID: 1, X: 400, Y: 300}
	walls := []rect{{x: 290, y: 250, w: 20, h: 100}}
	if _, ok := planCombat(self, target, walls, true, &cfg); ok {
		t.Fatal("wall across the firing line must defer to chasing")
	}
}

func TestLeadPoint_ProjectsAndClamps(t *testing.T) {
	cfg := DefaultConfig()
	self := Pose{X: 100, Y: 300}
	target := TankSnapshot{ID: 1, X: 300, Y: 300, VX: 2, VY: 0}

	d := dist(self.X, self.Y, target.X, target.Y)
	x, y := leadPoint(self, target, d, &cfg)
	want := 300 + 2*(d/cfg.BulletSpeed)
	if math.Abs(x-want) > 1e-9 || y != 300 {
		t.Fatalf("lead = (%.1f,%.1f), want (%.1f,300)", x, y, want)
	}

	// A fast target near the edge projects outside the arena; the aim point
	// must stay inside the clamp band.
	target = TankSnapshot{ID: 1, X: 560, Y: 300, VX: 10, VY: 0}
	x, _ = leadPoint(self, target, dist(self.X, self.Y, target.X, target.Y), &cfg)
	if x > float64(cfg.ArenaWidth)-float64(cfg.TankSize) {
		t.Fatalf("lead point escaped the arena clamp: x=%.1f", x)
	}
}

func TestSimulateShot_SingleBounceOffWall(t *testing.T) {
	cfg := DefaultConfig()
	// Firing up-right into the underside of a horizontal wall; the reflection
	// flips only the vertical velocity and carries the bullet down-right onto
	// the target. The target is nowhere near the outbound leg.
	self := Pose{X: 200, Y: 300, Heading: 45}
	walls := []rect{{x: 100, y: 100, w: 400, h: 20}}
	target := TankSnapshot{ID: 1, X: 451, Y: 194}
	if !simulateShot(self, target, walls, &cfg) {
		t.Fatal("one ricochet onto the target should land")
	}
}

func TestSimulateShot_BounceBudgetExhausted(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxBounces = 0
	self := Pose{X: 200, Y: 300, Heading: 45}
	walls := []rect{{x: 100, y: 100, w: 400, h: 20}}
	target := TankSnapshot{ID: 1, X: 451, Y: 194}
	if simulateShot(self, target, walls, &cfg) {
		t.Fatal("with no bounce budget the ricochet shot must be a miss")
	}
}
