package minimax

import (
	"time"

	"github.com/IlikeChooros/go-minimax/pkg/board"
)

type Outcome int

const (
	// Score comes from the heuristic, nothing is proven
	OutcomeUnknown Outcome = iota
	OutcomeWin
	OutcomeLoss
	OutcomeDraw
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLoss:
		return "loss"
	case OutcomeDraw:
		return "draw"
	}
	return "unknown"
}

// Classify a score from the ai's perspective
func Classify(score int) Outcome {
	switch {
	case score > OutcomeThreshold:
		return OutcomeWin
	case score < -OutcomeThreshold:
		return OutcomeLoss
	case score == DrawScore:
		return OutcomeDraw
	}
	return OutcomeUnknown
}

type SearchMode int

const (
	SearchExact SearchMode = iota
	SearchDepthLimited
)

func (m SearchMode) String() string {
	if m == SearchDepthLimited {
		return "depth-limited"
	}
	return "exact"
}

// Statistics of a single root candidate move
type MoveEvaluation struct {
	Position      int
	Score         int
	Outcome       Outcome
	Pruned        bool // at least one cutoff happened in this subtree
	PruneDepth    int  // depth of the first cutoff, 0 if none
	Prunes        int  // number of cutoffs in this subtree
	Nodes         int  // nodes visited under this candidate
	MaxDepth      int  // deepest ply reached under this candidate
	FullyExplored bool // no cutoff happened, every line was searched
	Line          []int
}

// Terminal positions reached during the search, from the ai's perspective
type TerminalCounts struct {
	Wins   int
	Losses int
	Draws  int
}

func (tc TerminalCounts) Total() int {
	return tc.Wins + tc.Losses + tc.Draws
}

// Result of one search: the chosen move and everything that led to it.
// Treat it as read-only once returned.
type ThinkingData struct {
	Move        int
	Score       int
	Outcome     Outcome
	Evaluations []MoveEvaluation // in exploration order
	Nodes       int
	Prunes      int
	MaxDepth    int
	Terminals   TerminalCounts
	Elapsed     time.Duration
	Pv          []int // principal variation, starts with Move

	Mode       SearchMode
	AlphaBeta  bool
	DepthLimit int // 0 for the exact search
	GridSize   int
	AI         board.Player
	Human      board.Player
}

// Evaluation of the chosen move
func (td *ThinkingData) Chosen() (MoveEvaluation, bool) {
	for _, e := range td.Evaluations {
		if e.Position == td.Move {
			return e, true
		}
	}
	return MoveEvaluation{}, false
}

// Number of root candidates with at least one cutoff
func (td *ThinkingData) PrunedCandidates() int {
	n := 0
	for _, e := range td.Evaluations {
		if e.Pruned {
			n++
		}
	}
	return n
}

// Result of the facade: either a searched move, or the opening shortcut
type Decision struct {
	Move     int
	Opening  bool          // chosen by the opening heuristic, Thinking is nil
	Thinking *ThinkingData // nil for opening moves
}
