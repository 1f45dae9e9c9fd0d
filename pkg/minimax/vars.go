package minimax

import (
	"errors"
	"time"
)

// Score scale, proven outcomes are symmetric around DrawScore
const (
	WinScore  int = 100
	LossScore int = -100
	DrawScore int = 0

	// |score| above this value is a proven win/loss, heuristic leaves never reach it
	OutcomeThreshold int = 50
)

// Grid sizes the engine knows how to search
const (
	ExactGridSize        = 3
	DepthLimitedGridSize = 4

	// Default depth limit used for 4x4 boards
	DefaultDepthLimited = 3
)

const (
	_infinity = 1 << 30
)

type SeedGeneratorFnType func() int64

var SeedGeneratorFn SeedGeneratorFnType = func() int64 {
	return time.Now().UnixNano()
}

// Set custom seed generator function for random number generators of new engines,
// by default uses current time in nanoseconds
func SetSeedGeneratorFn(f SeedGeneratorFnType) {
	if f != nil {
		SeedGeneratorFn = f
	}
}

type TieBreakPolicy int

const (
	// Pick the first of the equally scored root moves, in enumeration order
	TieBreakFirst TieBreakPolicy = iota

	// Pick uniformly at random among the equally scored root moves,
	// uses the engine's seeded random source
	TieBreakRandom
)

func (p TieBreakPolicy) String() string {
	if p == TieBreakRandom {
		return "random"
	}
	return "first"
}

var (
	ErrUnsupportedGridSize = errors.New("unsupported grid size")
	ErrTerminalPosition    = errors.New("position is already terminal")
	ErrInvalidPlayers      = errors.New("invalid ai/human players")
	ErrBoardSize           = errors.New("board size doesn't match the grid size")
	ErrInvalidDepth        = errors.New("invalid depth limit")
)
