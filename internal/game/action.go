package game

// Action is one discrete control output of the decision core. Exactly one is
// emitted per tick.
type Action int

const (
	ActionHold Action = iota
	ActionAdvance
	ActionReverse
	ActionRotateCW  // heading decreases (clockwise on screen)
	ActionRotateCCW // heading increases
	ActionFire
)

func (a Action) String() string {
	switch a {
	case ActionHold:
		return "hold"
	case ActionAdvance:
		return "advance"
	case ActionReverse:
		return "reverse"
	case ActionRotateCW:
		return "rotate_cw"
	case ActionRotateCCW:
		return "rotate_ccw"
	case ActionFire:
		return "fire"
	default:
		return "unknown"
	}
}
