package rules

import (
	"github.com/IlikeChooros/go-minimax/pkg/board"
)

// Outcome of a finished game, created only when a terminal condition is detected
type GameResult struct {
	Winner board.Player // None for a draw
	Line   Line         // winning cells, nil for a draw
	Draw   bool
}

func (r GameResult) String() string {
	if r.Draw {
		return "draw"
	}
	return r.Winner.String() + " wins"
}

// Check if 'player' completed a full row, column or diagonal (winLength == gridSize).
// The first matching line in generation order is reported.
func CheckWin(b board.Board, player board.Player, gridSize int) (GameResult, bool) {
	return CheckWinLength(b, player, gridSize)
}

// Check if 'player' has 'winLength' marks in a row anywhere on the board
func CheckWinLength(b board.Board, player board.Player, winLength int) (GameResult, bool) {
	if !player.Valid() {
		return GameResult{}, false
	}

	lines, err := Lines(b.Size(), winLength)
	if err != nil {
		return GameResult{}, false
	}

	occupied := make([]bool, b.Len())
	for _, idx := range b.Occupied(player) {
		occupied[idx] = true
	}

	for _, line := range lines {
		if containsAll(occupied, line) {
			winning := make(Line, len(line))
			copy(winning, line)
			return GameResult{Winner: player, Line: winning}, true
		}
	}

	return GameResult{}, false
}

// Allocation-free check on raw cells, used by the search on its private board
func HasWon(cells []board.Player, player board.Player, lines []Line) bool {
	for _, line := range lines {
		won := true
		for _, idx := range line {
			if cells[idx] != player {
				won = false
				break
			}
		}
		if won {
			return true
		}
	}
	return false
}

func containsAll(occupied []bool, line Line) bool {
	for _, idx := range line {
		if !occupied[idx] {
			return false
		}
	}
	return true
}

// True iff every cell is occupied. This alone does not tell a draw from a win
// on the last move, call CheckWin for both players first.
func CheckDraw(b board.Board) bool {
	return b.IsFull()
}

// Ordered terminal check: X win, O win, then full board (draw)
func Terminal(b board.Board, winLength int) (GameResult, bool) {
	for _, p := range [...]board.Player{board.X, board.O} {
		if result, ok := CheckWinLength(b, p, winLength); ok {
			return result, true
		}
	}

	if CheckDraw(b) {
		return GameResult{Draw: true}, true
	}

	return GameResult{}, false
}
