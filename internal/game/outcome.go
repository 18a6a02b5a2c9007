package game

import "strings"

// MatchOutcome classifies how a headless match ended.
type MatchOutcome int

const (
	OutcomeTimeout MatchOutcome = iota
	OutcomePlayerWin
	OutcomeBotWin
)

func (o MatchOutcome) String() string {
	switch o {
	case OutcomePlayerWin:
		return "p1_win"
	case OutcomeBotWin:
		return "bot_win"
	case OutcomeTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// MatchSummary condenses one finished match into the counters the headless
// reporter prints and tests assert on. Tick markers are -1 when the event
// never happened.
type MatchSummary struct {
	Outcome MatchOutcome
	Winner  string
	Ticks   int

	StateChanges   int
	PathRecomputes int
	Fires          int
	StuckEvents    int
	DodgeEntries   int

	FirstFireTick  int
	FirstStuckTick int
}

// SummarizeMatch derives the summary from the finished world and its log.
func SummarizeMatch(w *World, log *DecisionLog) MatchSummary {
	over, winner := w.Over()
	s := MatchSummary{
		Winner:         winner,
		Ticks:          w.Tick(),
		StateChanges:   log.CountCategory("state", "change"),
		PathRecomputes: log.CountCategory("path", "recompute"),
		Fires:          log.CountCategory("combat", "fire"),
		StuckEvents:    log.CountCategory("recovery", "stuck"),
		FirstFireTick:  -1,
		FirstStuckTick: -1,
	}

	switch {
	case !over:
		s.Outcome = OutcomeTimeout
		s.Winner = "draw"
	case winner == "p1":
		s.Outcome = OutcomePlayerWin
	default:
		s.Outcome = OutcomeBotWin
	}

	for _, e := range log.Entries() {
		switch {
		case e.Category == "combat" && e.Key == "fire" && s.FirstFireTick < 0:
			s.FirstFireTick = e.Tick
		case e.Category == "recovery" && e.Key == "stuck" && s.FirstStuckTick < 0:
			s.FirstStuckTick = e.Tick
		case e.Category == "state" && e.Key == "change" &&
			strings.HasSuffix(e.Value, "→ "+StateDodging.String()):
			s.DodgeEntries++
		}
	}
	return s
}
