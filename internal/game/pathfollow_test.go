package game

import (
	"math"
	"testing"
)

func TestAdvancePath_EmptyPath(t *testing.T) {
	_, _, _, ok := advancePath(nil, 100, 100, 20, 60)
	if ok {
		t.Fatal("empty path must yield no steering point")
	}
}

func TestAdvancePath_PrunesArrivedWaypoints(t *testing.T) {
	path := [][2]float64{{105, 100}, {200, 100}, {300, 100}}
	pruned, _, _, ok := advancePath(path, 100, 100, 20, 60)
	if !ok {
		t.Fatal("expected a steering point")
	}
	if len(pruned) != 2 {
		t.Fatalf("head within arrival distance should be dropped, got %d waypoints", len(pruned))
	}
	if pruned[0] != [2]float64{200, 100} {
		t.Fatalf("unexpected head after pruning: %v", pruned[0])
	}
}

func TestAdvancePath_InterpolatesAtExactArcLength(t *testing.T) {
	path := [][2]float64{{200, 100}, {300, 100}}
	_, tx, ty, ok := advancePath(path, 100, 100, 20, 60)
	if !ok {
		t.Fatal("expected a steering point")
	}
	// 60 pixels along the straight line from (100,100) toward (200,100).
	if math.Abs(tx-160) > 1e-9 || math.Abs(ty-100) > 1e-9 {
		t.Fatalf("expected (160,100) got (%.2f,%.2f)", tx, ty)
	}
}

func TestAdvancePath_CrossesSegmentBoundary(t *testing.T) {
	path := [][2]float64{{140, 100}, {140, 200}}
	_, tx, ty, ok := advancePath(path, 100, 100, 20, 60)
	if !ok {
		t.Fatal("expected a steering point")
	}
	// 40 px to the first waypoint, 20 more down the second segment.
	if math.Abs(tx-140) > 1e-9 || math.Abs(ty-120) > 1e-9 {
		t.Fatalf("expected (140,120) got (%.2f,%.2f)", tx, ty)
	}
}

func TestAdvancePath_ShortPathReturnsEnd(t *testing.T) {
	path := [][2]float64{{130, 100}}
	_, tx, ty, ok := advancePath(path, 100, 100, 20, 500)
	if !ok {
		t.Fatal("expected a steering point")
	}
	if tx != 130 || ty != 100 {
		t.Fatalf("look-ahead longer than the path should return its end, got (%.1f,%.1f)", tx, ty)
	}
}

func TestAdvancePath_AllWaypointsConsumed(t *testing.T) {
	path := [][2]float64{{105, 100}, {110, 102}}
	_, _, _, ok := advancePath(path, 100, 100, 20, 60)
	if ok {
		t.Fatal("path fully inside the arrival radius must yield no steering point")
	}
}
