package minimax

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/rs/zerolog"

	"github.com/IlikeChooros/go-minimax/pkg/board"
	"github.com/IlikeChooros/go-minimax/pkg/rules"
)

// Move selector: picks the search strategy by grid size and applies the opening heuristic.
// Safe for concurrent use, every call gets its own board copy, search context and a
// snapshot of the limits and listener taken when the call starts.
type Engine struct {
	mu       sync.Mutex // guards limits, listener, logger and rand
	limits   *Limits
	listener *StatsListener
	logger   zerolog.Logger
	rand     *rand.Rand
}

// Create new engine, nil limits means DefaultLimits
func NewEngine(limits *Limits) *Engine {
	if limits == nil {
		limits = DefaultLimits()
	}
	return &Engine{
		limits:   limits,
		listener: &StatsListener{},
		logger:   zerolog.Nop(),
		rand:     rand.New(rand.NewSource(SeedGeneratorFn())),
	}
}

// Copy of the engine with cloned limits, the same listener callbacks and logger,
// and its own random source seeded from this engine's one
func (e *Engine) Clone() *Engine {
	e.mu.Lock()
	defer e.mu.Unlock()

	listener := *e.listener
	return &Engine{
		limits:   e.limits.Clone(),
		listener: &listener,
		logger:   e.logger,
		rand:     rand.New(rand.NewSource(e.rand.Int63())),
	}
}

func (e *Engine) SetLimits(limits *Limits) {
	if limits == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.limits = limits
	e.logger.Debug().Str("limits", limits.String()).Msg("set-limits")
}

// Current limits, modify them through SetLimits while searches may be running
func (e *Engine) Limits() *Limits {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.limits
}

func (e *Engine) SetListener(listener StatsListener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	*e.listener = listener
}

// The engine's listener, for in-place configuration before searching.
// Use SetListener while searches may be running.
func (e *Engine) StatsListener() *StatsListener {
	return e.listener
}

func (e *Engine) ResetListener() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listener.OnDepth(nil).OnRootMove(nil).OnStop(nil)
}

func (e *Engine) SetLogger(logger zerolog.Logger) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.logger = logger
}

// Reseed the random source used by the opening move and random tie-breaks
func (e *Engine) SetSeed(seed int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rand = rand.New(rand.NewSource(seed))
}

// Best move for 'ai' in given position.
//
// On an empty board with 'ai' to move (X) the search is skipped and a random corner is
// played (Decision.Opening), otherwise 3x3 boards are searched exactly (unless Limits.Depth is set) and
// 4x4 boards with a depth limit (Limits.Depth or DefaultDepthLimited).
func (e *Engine) BestMove(b board.Board, ai board.Player) (Decision, error) {
	gridSize := b.Size()
	if !ai.Valid() {
		return Decision{}, fmt.Errorf("%w: ai=%v", ErrInvalidPlayers, ai)
	}
	if gridSize != ExactGridSize && gridSize != DepthLimitedGridSize {
		return Decision{}, fmt.Errorf("%w: %d", ErrUnsupportedGridSize, gridSize)
	}
	if result, ok := rules.Terminal(b, gridSize); ok {
		return Decision{}, fmt.Errorf("%w: %s", ErrTerminalPosition, result)
	}

	opts := e.options(ai, gridSize)
	if b.IsBlank() && b.Turn() == ai {
		move := e.openingMove(b)
		opts.logger.Debug().Int("move", move).Msg("opening-move")
		return Decision{Move: move, Opening: true}, nil
	}

	td, err := runSearch(b, opts)
	if err != nil {
		return Decision{}, err
	}
	return Decision{Move: td.Move, Thinking: td}, nil
}

// Same as BestMove, but runs the search on a separate goroutine and gives up
// when 'ctx' is done. The abandoned search runs to completion and its result is discarded.
func (e *Engine) BestMoveContext(ctx context.Context, b board.Board, ai board.Player) (Decision, error) {
	if err := ctx.Err(); err != nil {
		return Decision{}, err
	}

	type result struct {
		decision Decision
		err      error
	}

	done := make(chan result, 1)
	go func() {
		decision, err := e.BestMove(b.Clone(), ai)
		done <- result{decision, err}
	}()

	select {
	case <-ctx.Done():
		return Decision{}, ctx.Err()
	case r := <-done:
		return r.decision, r.err
	}
}

func (e *Engine) options(ai board.Player, gridSize int) searchOptions {
	e.mu.Lock()
	defer e.mu.Unlock()

	limits := *e.limits
	depth := limits.Depth
	if gridSize >= DepthLimitedGridSize && depth == 0 {
		depth = DefaultDepthLimited
	}

	listener := *e.listener
	opts := searchOptions{
		ai:        ai,
		human:     ai.Opponent(),
		gridSize:  gridSize,
		maxDepth:  depth,
		alphaBeta: limits.AlphaBeta,
		evaluate:  limits.Evaluate,
		tieBreak:  limits.TieBreak,
		listener:  &listener,
		logger:    e.logger,
	}

	if limits.TieBreak == TieBreakRandom {
		// Each search gets its own source, derived from the engine's one
		opts.rand = rand.New(rand.NewSource(e.rand.Int63()))
	}

	return opts
}

// Random corner, or any random empty cell if no corner is free
func (e *Engine) openingMove(b board.Board) int {
	size := b.Size()
	corners := []int{0, size - 1, size * (size - 1), size*size - 1}

	candidates := make([]int, 0, len(corners))
	for _, c := range corners {
		if b.IsEmpty(c) {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		candidates = b.EmptyCells()
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return candidates[e.rand.Intn(len(candidates))]
}
