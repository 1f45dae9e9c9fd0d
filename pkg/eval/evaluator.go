package eval

import (
	"github.com/IlikeChooros/go-minimax/pkg/board"
	"github.com/IlikeChooros/go-minimax/pkg/rules"
)

// Largest absolute value a heuristic score may have once it enters the search.
// Proven outcomes are classified with |score| > 50, heuristic leaves must stay below that.
const HeuristicLimit = 49

// Bound keeps scores up to this magnitude unchanged and squeezes the rest into
// (HeuristicLinear, HeuristicLimit)
const (
	HeuristicLinear = 40
	heuristicKnee   = 120
	heuristicCap    = 1 << 40
)

// Signature of a static evaluation function, scores are from the ai's point of view
type EvaluateFunc func(b board.Board, ai, human board.Player, gridSize int) int

// Static evaluation of a non-terminal position, winLength == gridSize.
//
// Every line with only ai marks adds 10^(count-1), every line with only human marks
// subtracts 10^(count-1), mixed and empty lines are worth nothing.
func Evaluate(b board.Board, ai, human board.Player, gridSize int) int {
	return EvaluateLength(b, ai, human, gridSize)
}

// Same as Evaluate, with an explicit win length
func EvaluateLength(b board.Board, ai, human board.Player, winLength int) int {
	lines, err := rules.Lines(b.Size(), winLength)
	if err != nil {
		return 0
	}
	return evaluateLines(b, ai, human, lines)
}

func evaluateLines(b board.Board, ai, human board.Player, lines []rules.Line) int {
	score := 0
	for _, line := range lines {
		aiCount, humanCount := 0, 0
		for _, idx := range line {
			switch b.At(idx) {
			case ai:
				aiCount++
			case human:
				humanCount++
			}
		}

		switch {
		case aiCount > 0 && humanCount > 0:
			// dead line
		case aiCount > 0:
			score += pow10(aiCount - 1)
		case humanCount > 0:
			score -= pow10(humanCount - 1)
		}
	}
	return score
}

// Map a heuristic score into [-HeuristicLimit, HeuristicLimit] without changing
// the order of scores: small values pass through, larger ones approach the limit.
func Bound(score int) int {
	if score >= -HeuristicLinear && score <= HeuristicLinear {
		return score
	}

	// Distance past the linear range, capped so custom evaluations can't overflow
	over := heuristicCap
	if score > -heuristicCap && score < heuristicCap {
		over = max(score, -score) - HeuristicLinear
	}
	span := HeuristicLimit - HeuristicLinear
	bounded := HeuristicLinear + span*over/(over+heuristicKnee)
	if score < 0 {
		return -bounded
	}
	return bounded
}

func pow10(n int) int {
	v := 1
	for range n {
		v *= 10
	}
	return v
}
