package game

import "math"

// rect is an axis-aligned wall rectangle in pixel coordinates.
type rect struct {
	x int
	y int
	w int
	h int
}

// normalizeDeg wraps an angle in degrees to (-180, 180].
func normalizeDeg(a float64) float64 {
	a = math.Mod(a, 360)
	if a > 180 {
		a -= 360
	} else if a <= -180 {
		a += 360
	}
	return a
}

// headingToDeg returns the heading in degrees from (ax,ay) toward (bx,by).
// Zero points along +X; positive angles turn counter-clockwise on screen
// (the Y axis points down, so the sine component is negated).
func headingToDeg(ax, ay, bx, by float64) float64 {
	return normalizeDeg(math.Atan2(-(by-ay), bx-ax) * 180 / math.Pi)
}

// headingVector returns the unit movement vector for a heading in degrees.
func headingVector(deg float64) (float64, float64) {
	rad := deg * math.Pi / 180
	return math.Cos(rad), -math.Sin(rad)
}

func dist(ax, ay, bx, by float64) float64 {
	return math.Hypot(bx-ax, by-ay)
}

// aabbOverlapsRect reports whether the box (minX,minY)-(maxX,maxY) overlaps r.
func aabbOverlapsRect(minX, minY, maxX, maxY float64, r rect) bool {
	return minX < float64(r.x+r.w) && maxX > float64(r.x) &&
		minY < float64(r.y+r.h) && maxY > float64(r.y)
}

// pointInRect reports whether (px,py) lies inside r.
func pointInRect(px, py float64, r rect) bool {
	return px >= float64(r.x) && px <= float64(r.x+r.w) &&
		py >= float64(r.y) && py <= float64(r.y+r.h)
}

// pointRectDist returns the distance from (px,py) to the closest point of r.
// Zero when the point is inside.
func pointRectDist(px, py float64, r rect) float64 {
	dx := math.Max(math.Max(float64(r.x)-px, 0), px-float64(r.x+r.w))
	dy := math.Max(math.Max(float64(r.y)-py, 0), py-float64(r.y+r.h))
	return math.Hypot(dx, dy)
}

// HasLineOfSight returns true if a straight line from (ax,ay) to (bx,by)
// does not intersect any wall rectangle. Uses simple ray-vs-AABB tests.
func HasLineOfSight(ax, ay, bx, by float64, walls []rect) bool {
	for _, w := range walls {
		if rayIntersectsAABB(ax, ay, bx, by,
			float64(w.x), float64(w.y),
			float64(w.x+w.w), float64(w.y+w.h)) {
			return false
		}
	}
	return true
}

// rayAABBHitT returns the first segment parameter t in [0,1] where the line
// from (ox,oy)->(ex,ey) enters the AABB. The bool is false when no hit exists.
func rayAABBHitT(ox, oy, ex, ey, minX, minY, maxX, maxY float64) (float64, bool) {
	dx := ex - ox
	dy := ey - oy

	tMin := 0.0
	tMax := 1.0

	// Check X slab
	if math.Abs(dx) < 1e-12 {
		if ox < minX || ox > maxX {
			return 0, false
		}
	} else {
		invD := 1.0 / dx
		t1 := (minX - ox) * invD
		t2 := (maxX - ox) * invD
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}

	// Check Y slab
	if math.Abs(dy) < 1e-12 {
		if oy < minY || oy > maxY {
			return 0, false
		}
	} else {
		invD := 1.0 / dy
		t1 := (minY - oy) * invD
		t2 := (maxY - oy) * invD
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}

	if tMax < 0 || tMin > 1 {
		return 0, false
	}

	if tMin < 0 {
		tMin = 0
	}
	if tMin > 1 {
		return 0, false
	}

	return tMin, true
}

// rayIntersectsAABB checks if the line segment from (ox,oy)->(ex,ey)
// intersects the axis-aligned bounding box defined by (minX,minY)-(maxX,maxY).
func rayIntersectsAABB(ox, oy, ex, ey, minX, minY, maxX, maxY float64) bool {
	_, hit := rayAABBHitT(ox, oy, ex, ey, minX, minY, maxX, maxY)
	return hit
}
