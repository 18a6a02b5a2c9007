package game

// PrimitiveStep is one timed action inside a motion primitive.
type PrimitiveStep struct {
	Act   Action
	Ticks int
}

// MotionPrimitive is a short fixed sequence of timed actions used as a
// candidate trajectory by the local planner. The catalog is static
// configuration data, not per-instance state.
type MotionPrimitive struct {
	Name  string
	Steps []PrimitiveStep
}

// TotalTicks returns the simulated horizon of the primitive.
func (m MotionPrimitive) TotalTicks() int {
	n := 0
	for _, s := range m.Steps {
		n += s.Ticks
	}
	return n
}

// DefaultCatalog returns the stock primitive set. Order matters: ties in the
// local planner resolve to the earliest entry, so the plain advance stays the
// default when nothing distinguishes the candidates.
//
// The weave pairs correct heading while still moving, which avoids the
// stop-and-rotate jitter a pure spin produces when the goal sits slightly
// off axis.
func DefaultCatalog() []MotionPrimitive {
	return []MotionPrimitive{
		{Name: "advance", Steps: []PrimitiveStep{{ActionAdvance, 8}}},
		{Name: "reverse", Steps: []PrimitiveStep{{ActionReverse, 8}}},
		{Name: "spin_ccw", Steps: []PrimitiveStep{{ActionRotateCCW, 6}}},
		{Name: "spin_cw", Steps: []PrimitiveStep{{ActionRotateCW, 6}}},
		{Name: "veer_ccw", Steps: []PrimitiveStep{{ActionRotateCCW, 3}, {ActionAdvance, 6}}},
		{Name: "veer_cw", Steps: []PrimitiveStep{{ActionRotateCW, 3}, {ActionAdvance, 6}}},
		{Name: "swing_ccw", Steps: []PrimitiveStep{{ActionRotateCCW, 6}, {ActionAdvance, 4}}},
		{Name: "swing_cw", Steps: []PrimitiveStep{{ActionRotateCW, 6}, {ActionAdvance, 4}}},
		{Name: "weave_ccw", Steps: []PrimitiveStep{{ActionRotateCCW, 2}, {ActionAdvance, 3}, {ActionRotateCCW, 2}, {ActionAdvance, 3}}},
		{Name: "weave_cw", Steps: []PrimitiveStep{{ActionRotateCW, 2}, {ActionAdvance, 3}, {ActionRotateCW, 2}, {ActionAdvance, 3}}},
	}
}
