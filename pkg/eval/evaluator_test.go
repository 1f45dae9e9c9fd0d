package eval

import (
	"math"
	"testing"

	"github.com/IlikeChooros/go-minimax/pkg/board"
)

func TestEvaluateEmptyBoard(t *testing.T) {
	for _, size := range []int{3, 4} {
		if score := Evaluate(board.New(size), board.X, board.O, size); score != 0 {
			t.Errorf("size %d: empty board should be 0, got %d", size, score)
		}
	}
}

func TestEvaluateLines(t *testing.T) {
	cases := []struct {
		notation string
		want     int
	}{
		// centre: row, column and both diagonals -> 4 * 10^0
		{"3/1x1/3", 4},
		// corner: row, column, diagonal
		{"x2/3/3", 3},
		// x corner + o centre: 3 lines of o only, corner lines through the centre are dead
		{"x2/1o1/3", 2 - 3},
		// two x in row 0: row 0 = 10, cols 0,1 = 1 each, diagonal = 1
		{"xx1/3/3", 10 + 1 + 1 + 1},
		// symmetric position cancels out
		{"x1o/3/3", 0},
	}

	for _, c := range cases {
		b := board.MustFromNotation(c.notation)
		if got := Evaluate(b, board.X, board.O, 3); got != c.want {
			t.Errorf("%s: Evaluate = %d, want %d", c.notation, got, c.want)
		}
		// The score flips sign with perspective
		if got := Evaluate(b, board.O, board.X, 3); got != -c.want {
			t.Errorf("%s: mirrored Evaluate = %d, want %d", c.notation, got, -c.want)
		}
	}
}

func TestEvaluateIdempotent(t *testing.T) {
	b := board.MustFromNotation("x3/1o2/2x1/o3")
	first := Evaluate(b, board.X, board.O, 4)
	for range 10 {
		if got := Evaluate(b, board.X, board.O, 4); got != first {
			t.Fatalf("Evaluate not idempotent: %d != %d", got, first)
		}
	}
}

func TestEvaluate4x4ThreeInLine(t *testing.T) {
	// Three in a row on an open 4-line is worth 10^2
	b := board.MustFromNotation("xxx1/4/4/4")
	got := Evaluate(b, board.X, board.O, 4)
	// row 0 = 100, cols 0..2 = 1 each, main diagonal = 1
	if want := 100 + 3 + 1; got != want {
		t.Errorf("Evaluate = %d, want %d", got, want)
	}
}

func TestBoundKeepsHeuristicInsideOutcomeThreshold(t *testing.T) {
	// Raw values can exceed the proven-outcome threshold on 4x4 boards
	b := board.MustFromNotation("xxx1/xx2/x3/4")
	raw := Evaluate(b, board.X, board.O, 4)
	if raw <= 50 {
		t.Fatalf("expected a large raw score, got %d", raw)
	}

	for _, score := range []int{raw, -raw, 0, 49, -49, 50, -50, 1000} {
		bounded := Bound(score)
		if bounded > HeuristicLimit || bounded < -HeuristicLimit {
			t.Errorf("Bound(%d) = %d escapes the limit", score, bounded)
		}
		if bounded >= 50 || bounded <= -50 {
			t.Errorf("Bound(%d) = %d reaches the outcome threshold", score, bounded)
		}
	}

	if Bound(12) != 12 || Bound(-7) != -7 {
		t.Error("Bound should not change values inside the limit")
	}
}

func TestBoundPreservesOrder(t *testing.T) {
	// Strong positions must stay comparable once bounded
	if Bound(99) >= Bound(100) {
		t.Errorf("Bound(99) = %d, Bound(100) = %d, expected strictly increasing", Bound(99), Bound(100))
	}
	if Bound(-99) <= Bound(-100) {
		t.Errorf("Bound(-99) = %d, Bound(-100) = %d, expected strictly decreasing", Bound(-99), Bound(-100))
	}
	if Bound(HeuristicLinear) != HeuristicLinear || Bound(-HeuristicLinear) != -HeuristicLinear {
		t.Error("values inside the linear range should pass through")
	}

	prev := Bound(-5000)
	for score := -4999; score <= 5000; score++ {
		bounded := Bound(score)
		if bounded < prev {
			t.Fatalf("Bound(%d) = %d < Bound(%d) = %d", score, bounded, score-1, prev)
		}
		if bounded != -Bound(-score) {
			t.Fatalf("Bound(%d) = %d is not symmetric", score, bounded)
		}
		prev = bounded
	}

	for _, score := range []int{math.MaxInt, math.MinInt, math.MaxInt32, -math.MaxInt32} {
		if bounded := Bound(score); bounded > HeuristicLimit || bounded < -HeuristicLimit {
			t.Errorf("Bound(%d) = %d escapes the limit", score, bounded)
		}
	}
}
