package board

import (
	"errors"
	"slices"
	"testing"
)

func TestNewBoardIsEmpty(t *testing.T) {
	for _, size := range []int{3, 4} {
		b := New(size)
		if b.Len() != size*size {
			t.Fatalf("size %d: expected %d cells, got %d", size, size*size, b.Len())
		}
		if len(b.EmptyCells()) != b.Len() {
			t.Fatalf("size %d: expected all cells empty, got %v", size, b.EmptyCells())
		}
		if b.IsFull() || !b.IsBlank() {
			t.Fatalf("size %d: new board reported full=%v blank=%v", size, b.IsFull(), b.IsBlank())
		}
		if b.Turn() != X {
			t.Fatalf("size %d: X should move first, got %v", size, b.Turn())
		}
	}
}

func TestPlaceIsCopyOnWrite(t *testing.T) {
	b := New(3)
	next, err := b.Place(4, X)
	if err != nil {
		t.Fatal(err)
	}

	if !b.IsEmpty(4) {
		t.Error("Place modified the original board")
	}
	if next.At(4) != X {
		t.Errorf("expected X at 4, got %v", next.At(4))
	}
	if next.Turn() != O {
		t.Errorf("expected O to move, got %v", next.Turn())
	}
}

func TestPlaceOccupied(t *testing.T) {
	b := MustFromNotation("x2/3/3")
	_, err := b.Place(0, O)

	var occupied *OccupiedCellError
	if !errors.As(err, &occupied) {
		t.Fatalf("expected OccupiedCellError, got %v", err)
	}
	if occupied.Index != 0 || occupied.By != X {
		t.Errorf("unexpected error contents: %+v", occupied)
	}
}

func TestPlaceInvalid(t *testing.T) {
	b := New(3)
	if _, err := b.Place(9, X); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
	if _, err := b.Place(-1, X); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
	if _, err := b.Place(0, None); !errors.Is(err, ErrInvalidPlayer) {
		t.Errorf("expected ErrInvalidPlayer, got %v", err)
	}
}

func TestEmptyCellsAscending(t *testing.T) {
	b := MustFromNotation("x1o/1x1/o2")
	want := []int{1, 3, 5, 7, 8}
	if got := b.EmptyCells(); !slices.Equal(got, want) {
		t.Errorf("EmptyCells() = %v, want %v", got, want)
	}
	if got := b.Occupied(X); !slices.Equal(got, []int{0, 4}) {
		t.Errorf("Occupied(X) = %v", got)
	}
}

func TestIsFull(t *testing.T) {
	if !MustFromNotation("xox/oxo/oxo").IsFull() {
		t.Error("expected full board")
	}
	if MustFromNotation("xox/oxo/ox1").IsFull() {
		t.Error("expected non-full board")
	}
}

func TestNotationRoundTrip(t *testing.T) {
	notations := []string{
		"3/3/3",
		"xo1/1x1/2o",
		"xxx/ooo/xox",
		"4/1xo1/4/o2x",
	}

	for _, n := range notations {
		b, err := FromNotation(n)
		if err != nil {
			t.Fatalf("%s: %v", n, err)
		}
		if got := b.Notation(); got != n {
			t.Errorf("Notation() = %s, want %s", got, n)
		}
		if again := MustFromNotation(b.Notation()); !again.Equal(b) {
			t.Errorf("%s: board changed after a round trip", n)
		}
	}

	if New(3).Equal(New(4)) {
		t.Error("boards of different sizes compare equal")
	}
}

func TestInvalidNotation(t *testing.T) {
	for _, n := range []string{"", "3/3", "4/3/3", "xq1/3/3", "xxxx/3/3"} {
		if _, err := FromNotation(n); !errors.Is(err, ErrInvalidNotation) {
			t.Errorf("%q: expected ErrInvalidNotation, got %v", n, err)
		}
	}
}

func TestFromCells(t *testing.T) {
	cells := []Player{X, O, None, None, X, None, None, None, O}
	b, err := FromCells(3, cells)
	if err != nil {
		t.Fatal(err)
	}
	if b.Notation() != "xo1/1x1/2o" {
		t.Errorf("unexpected notation %s", b.Notation())
	}

	cells[0] = O
	if b.At(0) != X {
		t.Error("FromCells should copy the input")
	}

	if _, err := FromCells(3, cells[:5]); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("expected ErrInvalidSize, got %v", err)
	}
}

func TestRowCol(t *testing.T) {
	b := New(4)
	r, c := b.RowCol(6)
	if r != 1 || c != 2 {
		t.Errorf("RowCol(6) = (%d, %d)", r, c)
	}
	if b.Index(r, c) != 6 {
		t.Errorf("Index(%d, %d) = %d", r, c, b.Index(r, c))
	}
}

func TestParsePlayer(t *testing.T) {
	if p, err := ParsePlayer("X"); err != nil || p != X {
		t.Errorf("ParsePlayer(X) = %v, %v", p, err)
	}
	if p, err := ParsePlayer("o"); err != nil || p != O {
		t.Errorf("ParsePlayer(o) = %v, %v", p, err)
	}
	if _, err := ParsePlayer("z"); !errors.Is(err, ErrInvalidPlayer) {
		t.Errorf("expected ErrInvalidPlayer, got %v", err)
	}
}
