package board

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidNotation = errors.New("invalid board notation")

// String notation of the board, much like the FEN of a chessboard.
// Rows are separated by '/', marks are written as 'x' or 'o' and a run
// of empty cells is written as its length:
//
//	x | o |
//	------------
//	  | x |
//	------------
//	  |   | o
//
// is written as:
//
//	xo1/1x1/2o
func (b Board) Notation() string {
	builder := strings.Builder{}

	for row := range b.size {
		counter := 0
		for col := range b.size {
			switch piece := b.cells[b.Index(row, col)]; piece {
			case X, O:
				if counter > 0 {
					builder.WriteString(fmt.Sprintf("%d", counter))
					counter = 0
				}
				builder.WriteString(strings.ToLower(piece.String()))
			default:
				counter++
			}
		}

		if counter > 0 {
			builder.WriteString(fmt.Sprintf("%d", counter))
		}

		if row != b.size-1 {
			builder.WriteByte('/')
		}
	}

	return builder.String()
}

// Parse the board from the notation, the size is the number of rows.
// Every row must describe exactly 'size' cells.
func FromNotation(notation string) (Board, error) {
	notation = strings.TrimSpace(notation)
	if notation == "" {
		return Board{}, fmt.Errorf("%w: empty string", ErrInvalidNotation)
	}

	rows := strings.Split(notation, "/")
	size := len(rows)
	b := New(size)

	for r, row := range rows {
		col := 0
		for _, ch := range row {
			switch {
			case ch >= '1' && ch <= '9':
				col += int(ch - '0')
			case ch == 'x' || ch == 'X':
				if col < size {
					b.cells[b.Index(r, col)] = X
				}
				col++
			case ch == 'o' || ch == 'O':
				if col < size {
					b.cells[b.Index(r, col)] = O
				}
				col++
			default:
				return Board{}, fmt.Errorf("%w: unexpected character %q in row %d", ErrInvalidNotation, ch, r+1)
			}
		}

		if col != size {
			return Board{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidNotation, r+1, col, size)
		}
	}

	return b, nil
}

// Same as FromNotation, but panics on error. Meant for tests and constants.
func MustFromNotation(notation string) Board {
	b, err := FromNotation(notation)
	if err != nil {
		panic(err)
	}
	return b
}
