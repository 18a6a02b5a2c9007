package game

import (
	"math"
	"testing"
)

func TestSimulatePrimitive_FreezesOnCollision(t *testing.T) {
	cfg := DefaultConfig()
	walls := BorderWalls(cfg)
	// Facing the right border from close by: the advance must collide and
	// the pose must freeze short of the wall.
	pose := Pose{X: 570, Y: 300, Heading: 0}
	res := simulatePrimitive(pose, MotionPrimitive{
		Name:  "advance",
		Steps: []PrimitiveStep{{ActionAdvance, 8}},
	}, walls, &cfg)
	if !res.collided {
		t.Fatal("trajectory into a wall must be flagged collided")
	}
	if res.end.X+float64(cfg.TankSize)/2 > float64(cfg.ArenaWidth-10) {
		t.Fatalf("frozen pose leaked into the wall: x=%.1f", res.end.X)
	}
	if len(res.samples) != 8 {
		t.Fatalf("simulation must continue after collision, got %d samples", len(res.samples))
	}
}

func TestSimulatePrimitive_RotationOnly(t *testing.T) {
	cfg := DefaultConfig()
	pose := Pose{X: 300, Y: 300, Heading: 0}
	res := simulatePrimitive(pose, MotionPrimitive{
		Name:  "spin_ccw",
		Steps: []PrimitiveStep{{ActionRotateCCW, 6}},
	}, BorderWalls(cfg), &cfg)
	if res.end.X != 300 || res.end.Y != 300 {
		t.Fatal("pure rotation must not move the tank")
	}
	want := 6 * cfg.TurnRate
	if math.Abs(res.end.Heading-want) > 1e-9 {
		t.Fatalf("expected heading %.1f got %.1f", want, res.end.Heading)
	}
}

func TestSelectAction_GoalAheadPicksAdvance(t *testing.T) {
	cfg := DefaultConfig()
	walls := BorderWalls(cfg)
	pose := Pose{X: 100, Y: 300, Heading: 0}
	act, idx := selectAction(pose, 400, 300, nil, walls, nil, &cfg)
	if act != ActionAdvance {
		t.Fatalf("open field, goal dead ahead: expected advance, got %s (primitive %d)", act, idx)
	}
}

func TestSelectAction_Deterministic(t *testing.T) {
	cfg := DefaultConfig()
	walls := DefaultLayout(cfg)
	pose := Pose{X: 80, Y: 80, Heading: 37}
	bullets := []BulletSnapshot{{X: 160, Y: 90, VX: -5, VY: 0, Owner: 1}}
	_, i1 := selectAction(pose, 500, 500, nil, walls, bullets, &cfg)
	_, i2 := selectAction(pose, 500, 500, nil, walls, bullets, &cfg)
	if i1 != i2 {
		t.Fatalf("identical inputs picked different primitives: %d vs %d", i1, i2)
	}
}

func TestSelectAction_AvoidsWallAhead(t *testing.T) {
	cfg := DefaultConfig()
	walls := append(BorderWalls(cfg), rect{x: 280, y: 250, w: 20, h: 100})
	// Wall directly ahead, goal on its far side.
	pose := Pose{X: 240, Y: 300, Heading: 0}
	_, idx := selectAction(pose, 500, 300, nil, walls, nil, &cfg)
	res := simulatePrimitive(pose, cfg.Catalog[idx], walls, &cfg)
	if res.collided {
		t.Fatalf("chosen primitive %q collides although collision-free options exist",
			cfg.Catalog[idx].Name)
	}
}

func TestSelectAction_AvoidsIncomingBullet(t *testing.T) {
	cfg := DefaultConfig()
	walls := BorderWalls(cfg)
	pose := Pose{X: 300, Y: 300, Heading: 0}
	// Bullet flying straight at the tank from ahead; the goal sits behind it.
	bullets := []BulletSnapshot{{X: 350, Y: 300, VX: -cfg.BulletSpeed, VY: 0, Owner: 1}}
	act, _ := selectAction(pose, 500, 300, nil, walls, bullets, &cfg)
	if act == ActionAdvance {
		t.Fatal("local planner advanced straight into the bullet's line")
	}
}
