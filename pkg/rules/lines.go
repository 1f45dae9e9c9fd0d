package rules

import (
	"errors"
	"fmt"
	"sync"
)

// Ordered cell indices, that if fully occupied by one player, win the game
type Line []int

var ErrInvalidLineSpec = errors.New("invalid line specification")

type lineKey struct {
	gridSize  int
	winLength int
}

// Memoized lines, keyed by (gridSize, winLength)
var _linesCache sync.Map

// Generate every winning line of 'winLength' consecutive cells on a gridSize x gridSize board.
//
// Order: for each index i, the windows of row i, then the windows of column i;
// after that all down-right diagonal windows and finally all down-left diagonal windows.
// With winLength == gridSize this gives row0, col0, row1, col1, ..., diagonal, anti-diagonal,
// 2*gridSize + 2 lines in total.
func GenerateLines(gridSize, winLength int) ([]Line, error) {
	if gridSize <= 0 || winLength <= 0 || winLength > gridSize {
		return nil, fmt.Errorf("%w: gridSize=%d winLength=%d", ErrInvalidLineSpec, gridSize, winLength)
	}

	windows := gridSize - winLength + 1
	lines := make([]Line, 0, LineCount(gridSize, winLength))

	for i := range gridSize {
		// Horizontal windows in row i
		for start := range windows {
			line := make(Line, winLength)
			for k := range winLength {
				line[k] = i*gridSize + start + k
			}
			lines = append(lines, line)
		}
		// Vertical windows in column i
		for start := range windows {
			line := make(Line, winLength)
			for k := range winLength {
				line[k] = (start+k)*gridSize + i
			}
			lines = append(lines, line)
		}
	}

	// Down-right diagonals
	for row := range windows {
		for col := range windows {
			line := make(Line, winLength)
			for k := range winLength {
				line[k] = (row+k)*gridSize + col + k
			}
			lines = append(lines, line)
		}
	}

	// Down-left diagonals
	for row := range windows {
		for col := winLength - 1; col < gridSize; col++ {
			line := make(Line, winLength)
			for k := range winLength {
				line[k] = (row+k)*gridSize + col - k
			}
			lines = append(lines, line)
		}
	}

	return lines, nil
}

// Number of lines GenerateLines produces for valid arguments
func LineCount(gridSize, winLength int) int {
	windows := gridSize - winLength + 1
	if windows <= 0 || winLength <= 0 {
		return 0
	}
	return 2*gridSize*windows + 2*windows*windows
}

// Memoized version of GenerateLines, the returned slice is shared and must not be modified
func Lines(gridSize, winLength int) ([]Line, error) {
	key := lineKey{gridSize, winLength}
	if cached, ok := _linesCache.Load(key); ok {
		return cached.([]Line), nil
	}

	lines, err := GenerateLines(gridSize, winLength)
	if err != nil {
		return nil, err
	}

	actual, _ := _linesCache.LoadOrStore(key, lines)
	return actual.([]Line), nil
}

// Same as Lines, but panics on invalid arguments
func MustLines(gridSize, winLength int) []Line {
	lines, err := Lines(gridSize, winLength)
	if err != nil {
		panic(err)
	}
	return lines
}
