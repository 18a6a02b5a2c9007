package game

import (
	"fmt"
	"strings"
)

// debugReportTail is how many decision-log entries the report includes.
const debugReportTail = 40

// DebugReport formats a snapshot of the bot's decision state plus the recent
// decision-log timeline. The game binds this to a key and copies it to the
// clipboard so a misbehaving round can be pasted straight into a bug report.
func DebugReport(w *World, b *Bot) string {
	var sb strings.Builder
	sb.WriteString("--- tankduel debug report ---\n")
	fmt.Fprintf(&sb, "tick=%d strategy=%s buffer=%d cell=%d\n",
		w.Tick(), w.Config().Strategy, w.Config().BufferRadius, w.Config().CellSize)

	for i := 0; i < 2; i++ {
		t := w.Tank(i)
		x, y := t.Pos()
		fmt.Fprintf(&sb, "%-4s pos=(%.0f,%.0f) heading=%.0f alive=%v\n",
			t.Label(), x, y, t.Heading(), t.Alive())
	}

	fmt.Fprintf(&sb, "state=%s primitive=%d path_len=%d",
		b.State(), b.LastPrimitive(), len(b.Path()))
	if lx, ly, ok := b.LookAhead(); ok {
		fmt.Fprintf(&sb, " lookahead=(%.0f,%.0f)", lx, ly)
	}
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "bullets=%d\n", len(w.Bullets()))
	for _, bl := range w.Bullets() {
		s := bl.Snapshot()
		fmt.Fprintf(&sb, "  owner=%d pos=(%.0f,%.0f) vel=(%.1f,%.1f) bounces=%d safe=%d\n",
			s.Owner, s.X, s.Y, s.VX, s.VY, s.Bounces, s.SafeFrames)
	}

	sb.WriteString("\n== recent decisions ==\n")
	sb.WriteString(w.Log().Tail(debugReportTail))
	return sb.String()
}
