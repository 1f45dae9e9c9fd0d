package board

import (
	"errors"
	"fmt"
	"strings"
)

type Player uint8

const (
	None Player = 0
	X    Player = 1
	O    Player = 2
)

// The other mark, None stays None
func (p Player) Opponent() Player {
	switch p {
	case X:
		return O
	case O:
		return X
	}
	return None
}

func (p Player) Valid() bool {
	return p == X || p == O
}

func (p Player) String() string {
	switch p {
	case X:
		return "X"
	case O:
		return "O"
	}
	return "."
}

// Parse a player mark, case insensitive ('x', 'X', 'o', 'O')
func ParsePlayer(s string) (Player, error) {
	switch strings.ToLower(s) {
	case "x":
		return X, nil
	case "o":
		return O, nil
	}
	return None, fmt.Errorf("%w: %q", ErrInvalidPlayer, s)
}

var (
	ErrOutOfRange    = errors.New("cell index out of range")
	ErrInvalidSize   = errors.New("invalid board size")
	ErrInvalidPlayer = errors.New("invalid player mark")
)

// Returned by Place when the target cell already holds a mark
type OccupiedCellError struct {
	Index int
	By    Player
}

func (e *OccupiedCellError) Error() string {
	return fmt.Sprintf("cell %d is already occupied by %s", e.Index, e.By)
}

// Square grid of cells, stored row-major. The zero value is not usable, use New.
// A Board is a value: every mutation goes through Place, which returns a copy.
type Board struct {
	size  int
	cells []Player
}

// Create an empty size x size board
func New(size int) Board {
	if size <= 0 {
		panic(fmt.Sprintf("board.New: invalid size %d", size))
	}
	return Board{size: size, cells: make([]Player, size*size)}
}

// Create a board from given cells (copied), len(cells) must be size*size
func FromCells(size int, cells []Player) (Board, error) {
	if size <= 0 || len(cells) != size*size {
		return Board{}, fmt.Errorf("%w: %d cells for size %d", ErrInvalidSize, len(cells), size)
	}
	b := New(size)
	for i, c := range cells {
		if c != None && !c.Valid() {
			return Board{}, fmt.Errorf("%w at cell %d", ErrInvalidPlayer, i)
		}
		b.cells[i] = c
	}
	return b, nil
}

// Edge length of the board
func (b Board) Size() int { return b.size }

// Number of cells (size^2)
func (b Board) Len() int { return len(b.cells) }

func (b Board) InRange(index int) bool {
	return index >= 0 && index < len(b.cells)
}

// Mark at given index, None if empty or out of range
func (b Board) At(index int) Player {
	if !b.InRange(index) {
		return None
	}
	return b.cells[index]
}

func (b Board) IsEmpty(index int) bool {
	return b.InRange(index) && b.cells[index] == None
}

// Indices of all empty cells, ascending
func (b Board) EmptyCells() []int {
	empty := make([]int, 0, len(b.cells))
	for i, c := range b.cells {
		if c == None {
			empty = append(empty, i)
		}
	}
	return empty
}

func (b Board) IsFull() bool {
	for _, c := range b.cells {
		if c == None {
			return false
		}
	}
	return true
}

// True when no mark was placed yet
func (b Board) IsBlank() bool {
	for _, c := range b.cells {
		if c != None {
			return false
		}
	}
	return true
}

// Indices occupied by given player, ascending
func (b Board) Occupied(p Player) []int {
	occupied := make([]int, 0, len(b.cells))
	for i, c := range b.cells {
		if c == p {
			occupied = append(occupied, i)
		}
	}
	return occupied
}

func (b Board) Count(p Player) int {
	n := 0
	for _, c := range b.cells {
		if c == p {
			n++
		}
	}
	return n
}

// Player to move, assuming X started the game
func (b Board) Turn() Player {
	if b.Count(X) > b.Count(O) {
		return O
	}
	return X
}

// Copy of the cells
func (b Board) Cells() []Player {
	cells := make([]Player, len(b.cells))
	copy(cells, b.cells)
	return cells
}

func (b Board) Clone() Board {
	return Board{size: b.size, cells: b.Cells()}
}

// Place 'mark' at 'index' and return the new board, the receiver is never modified
func (b Board) Place(index int, mark Player) (Board, error) {
	if !mark.Valid() {
		return b, fmt.Errorf("%w: %v", ErrInvalidPlayer, mark)
	}
	if !b.InRange(index) {
		return b, fmt.Errorf("%w: %d", ErrOutOfRange, index)
	}
	if b.cells[index] != None {
		return b, &OccupiedCellError{Index: index, By: b.cells[index]}
	}

	next := b.Clone()
	next.cells[index] = mark
	return next, nil
}

// Convert cell index to (row, column), both 0-based
func (b Board) RowCol(index int) (int, int) {
	return index / b.size, index % b.size
}

// Convert (row, column) to cell index
func (b Board) Index(row, col int) int {
	return row*b.size + col
}

func (b Board) Equal(other Board) bool {
	if b.size != other.size || len(b.cells) != len(other.cells) {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Multi-line grid representation
//
//	X | . | O
//	---------
//	. | X | .
//	---------
//	. | . | .
func (b Board) String() string {
	builder := strings.Builder{}
	sep := strings.Repeat("-", b.size*4-3)
	for row := range b.size {
		if row > 0 {
			builder.WriteString(sep)
			builder.WriteByte('\n')
		}
		for col := range b.size {
			if col > 0 {
				builder.WriteString(" | ")
			}
			builder.WriteString(b.cells[b.Index(row, col)].String())
		}
		builder.WriteByte('\n')
	}
	return builder.String()
}
