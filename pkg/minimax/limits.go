package minimax

import (
	"encoding/json"
	"strings"

	"github.com/IlikeChooros/go-minimax/pkg/eval"
)

type Limits struct {
	// Maximum search depth in plies, 0 means search until terminal positions (exact)
	Depth     int
	AlphaBeta bool
	TieBreak  TieBreakPolicy
	// Leaf evaluation for depth-limited searches, nil means eval.Evaluate
	Evaluate eval.EvaluateFunc `json:"-"`
}

func (l Limits) String() string {
	builder := strings.Builder{}
	_ = json.NewEncoder(&builder).Encode(l)
	return strings.TrimSpace(builder.String())
}

const (
	DefaultDepthLimit int = 0
)

func DefaultLimits() *Limits {
	return &Limits{
		Depth:     DefaultDepthLimit,
		AlphaBeta: true,
		TieBreak:  TieBreakFirst,
	}
}

// Default limits for given grid size, 4x4 boards get a depth limit
func DefaultLimitsFor(gridSize int) *Limits {
	limits := DefaultLimits()
	if gridSize >= DepthLimitedGridSize {
		limits.SetDepth(DefaultDepthLimited)
	}
	return limits
}

// Set the maximum depth of the search, 0 for an exact search
func (l *Limits) SetDepth(depth int) *Limits {
	l.Depth = max(0, depth)
	return l
}

// Enable or disable alpha-beta pruning
func (l *Limits) SetAlphaBeta(enabled bool) *Limits {
	l.AlphaBeta = enabled
	return l
}

func (l *Limits) SetTieBreak(policy TieBreakPolicy) *Limits {
	l.TieBreak = policy
	return l
}

// Set custom leaf evaluation, used only by depth-limited searches
func (l *Limits) SetEvaluate(f eval.EvaluateFunc) *Limits {
	l.Evaluate = f
	return l
}

func (l *Limits) Exact() bool {
	return l.Depth == 0
}

func (l *Limits) Clone() *Limits {
	clone := *l
	return &clone
}
