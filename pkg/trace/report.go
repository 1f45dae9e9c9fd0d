package trace

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/muesli/termenv"

	"github.com/IlikeChooros/go-minimax/pkg/minimax"
)

const (
	// Number of candidates listed by default
	DefaultTop = 3
)

type Options struct {
	// Number of best candidates listed, <= 0 lists all of them
	Top int

	// Colour profile, termenv.Ascii renders plain text
	Profile termenv.Profile

	// Cumulative statistics of the game so far, optional
	Session *Session
}

func DefaultOptions() *Options {
	return &Options{
		Top:     DefaultTop,
		Profile: termenv.Ascii,
	}
}

// Human readable outcome label
func OutcomeLabel(o minimax.Outcome) string {
	switch o {
	case minimax.OutcomeWin:
		return "forced win"
	case minimax.OutcomeLoss:
		return "forced loss"
	case minimax.OutcomeDraw:
		return "draw"
	}
	return "heuristic"
}

// Cell in 1-based row/column form, e.g. "row 1, col 3"
func CellLabel(position, gridSize int) string {
	if gridSize <= 0 {
		return fmt.Sprintf("cell %d", position)
	}
	return fmt.Sprintf("row %d, col %d", position/gridSize+1, position%gridSize+1)
}

type styles struct {
	profile termenv.Profile
}

func (s styles) outcome(o minimax.Outcome, text string) string {
	style := s.profile.String(text)
	switch o {
	case minimax.OutcomeWin:
		style = style.Foreground(s.profile.Color("2"))
	case minimax.OutcomeLoss:
		style = style.Foreground(s.profile.Color("1"))
	case minimax.OutcomeDraw:
		style = style.Foreground(s.profile.Color("3"))
	}
	return style.String()
}

func (s styles) bold(text string) string {
	return s.profile.String(text).Bold().String()
}

func (s styles) faint(text string) string {
	return s.profile.String(text).Faint().String()
}

// Multi-line report of a single search. A nil 'td' means the move came from
// the opening shortcut, no search was made.
func Report(td *minimax.ThinkingData, opts *Options) string {
	if opts == nil {
		opts = DefaultOptions()
	}
	st := styles{profile: opts.Profile}
	builder := strings.Builder{}

	if td == nil {
		builder.WriteString(st.bold("Opening move"))
		builder.WriteString(": random corner, no search performed\n")
		writeSession(&builder, opts.Session)
		return builder.String()
	}

	fmt.Fprintf(&builder, "%s: %s (cell %d)\n",
		st.bold("Move"), CellLabel(td.Move, td.GridSize), td.Move)
	fmt.Fprintf(&builder, "Outcome: %s, score %d\n",
		st.outcome(td.Outcome, OutcomeLabel(td.Outcome)), td.Score)

	pruning := "off"
	if td.AlphaBeta {
		pruning = "on"
	}
	mode := td.Mode.String()
	if td.Mode == minimax.SearchDepthLimited {
		mode = fmt.Sprintf("%s (depth %d)", mode, td.DepthLimit)
	}
	fmt.Fprintf(&builder, "Search: %s, alpha-beta %s, %s vs %s\n", mode, pruning, td.AI, td.Human)
	fmt.Fprintf(&builder, "Time: %s\n", formatDuration(td.Elapsed))
	fmt.Fprintf(&builder, "Stats: nodes %d, prunes %d, max depth %d, pruned candidates %d/%d, nodes/ms %.0f\n",
		td.Nodes, td.Prunes, td.MaxDepth, td.PrunedCandidates(), len(td.Evaluations),
		NodesPerMs(td.Nodes, td.Elapsed))
	fmt.Fprintf(&builder, "Terminals: wins %d, losses %d, draws %d\n",
		td.Terminals.Wins, td.Terminals.Losses, td.Terminals.Draws)

	if len(td.Pv) > 0 {
		fmt.Fprintf(&builder, "Pv: %s\n", formatLine(td.Pv))
	}

	writeSession(&builder, opts.Session)

	top := TopMoves(td, opts.Top)
	if len(top) == 0 {
		return builder.String()
	}

	builder.WriteString("Top moves:\n")
	for i, e := range top {
		line := fmt.Sprintf("%2d. %-16s score %4d  %-11s nodes %-7d depth %d",
			i+1, CellLabel(e.Position, td.GridSize), e.Score, OutcomeLabel(e.Outcome), e.Nodes, e.MaxDepth)
		switch {
		case e.Position == td.Move:
			line = st.bold(line + "  <- chosen")
		case e.Pruned:
			line += st.faint("  (pruned)")
		}
		builder.WriteString("  ")
		builder.WriteString(line)
		builder.WriteByte('\n')
	}

	return builder.String()
}

func writeSession(builder *strings.Builder, session *Session) {
	if session == nil || session.Searches+session.Openings == 0 {
		return
	}
	fmt.Fprintf(builder, "Session: searches %d, openings %d, nodes %d, prunes %d, time %s\n",
		session.Searches, session.Openings, session.Nodes, session.Prunes, formatDuration(session.Elapsed))
}

// Best 'n' root candidates, by score descending, ties in exploration order.
// n <= 0 returns all of them.
func TopMoves(td *minimax.ThinkingData, n int) []minimax.MoveEvaluation {
	if td == nil {
		return nil
	}

	sorted := slices.Clone(td.Evaluations)
	slices.SortStableFunc(sorted, func(a, b minimax.MoveEvaluation) int {
		return b.Score - a.Score
	})

	if n > 0 && n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

func NodesPerMs(nodes int, elapsed time.Duration) float64 {
	ms := float64(elapsed) / float64(time.Millisecond)
	if ms <= 0 {
		return 0
	}
	return float64(nodes) / ms
}

func formatDuration(d time.Duration) string {
	return fmt.Sprintf("%.3fms", float64(d)/float64(time.Millisecond))
}

func formatLine(line []int) string {
	parts := make([]string, len(line))
	for i, m := range line {
		parts[i] = fmt.Sprint(m)
	}
	return strings.Join(parts, " ")
}
