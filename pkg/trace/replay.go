package trace

import (
	"github.com/IlikeChooros/go-minimax/pkg/minimax"
)

type StepKind int

const (
	// Candidate searched without any cutoff
	StepConsidered StepKind = iota
	// Candidate whose subtree was cut at least once
	StepPruned
	// The move the engine played
	StepChosen
)

func (k StepKind) String() string {
	switch k {
	case StepPruned:
		return "pruned"
	case StepChosen:
		return "chosen"
	}
	return "considered"
}

// Single step of the search playback, one per root candidate
type ReplayStep struct {
	Index      int // position in exploration order
	Position   int
	Row        int // 0-based
	Col        int // 0-based
	Kind       StepKind
	Score      int
	Outcome    minimax.Outcome
	Nodes      int
	Depth      int // max depth reached under the candidate
	PruneDepth int // depth of the first cutoff, 0 if none
	Line       []int
}

// Root candidates in exploration order, ready for step-by-step playback.
// The chosen move is tagged StepChosen even if its subtree was pruned.
// Returns an empty slice for a nil 'td' (opening move).
func ReplaySteps(td *minimax.ThinkingData) []ReplayStep {
	if td == nil {
		return []ReplayStep{}
	}

	steps := make([]ReplayStep, 0, len(td.Evaluations))
	for i, e := range td.Evaluations {
		kind := StepConsidered
		switch {
		case e.Position == td.Move:
			kind = StepChosen
		case e.Pruned:
			kind = StepPruned
		}

		step := ReplayStep{
			Index:      i,
			Position:   e.Position,
			Kind:       kind,
			Score:      e.Score,
			Outcome:    e.Outcome,
			Nodes:      e.Nodes,
			Depth:      e.MaxDepth,
			PruneDepth: e.PruneDepth,
			Line:       e.Line,
		}
		if td.GridSize > 0 {
			step.Row, step.Col = e.Position/td.GridSize, e.Position%td.GridSize
		}
		steps = append(steps, step)
	}

	return steps
}
