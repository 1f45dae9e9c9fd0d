package minimax

import (
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/IlikeChooros/go-minimax/pkg/board"
	"github.com/IlikeChooros/go-minimax/pkg/eval"
	"github.com/IlikeChooros/go-minimax/pkg/rules"
)

// Everything a single search needs, filled by the facade or the standalone functions
type searchOptions struct {
	ai        board.Player
	human     board.Player
	gridSize  int
	maxDepth  int // 0 = exact
	alphaBeta bool
	evaluate  eval.EvaluateFunc
	tieBreak  TieBreakPolicy
	rand      *rand.Rand
	listener  *StatsListener
	logger    zerolog.Logger
}

// Search state: a private board, mutated in place with make/undo
type searcher struct {
	searchOptions
	cells []board.Player
	lines []rules.Line
	ctx   *searchContext
}

// Exact minimax search for a 3x3 board, returns the best move for 'ai' and the thinking data.
// Ties are broken by picking the first best move.
func FindBestMove(b board.Board, ai, human board.Player, gridSize int, useAlphaBetaPruning bool) (int, *ThinkingData, error) {
	td, err := runSearch(b, searchOptions{
		ai:        ai,
		human:     human,
		gridSize:  gridSize,
		alphaBeta: useAlphaBetaPruning,
		tieBreak:  TieBreakFirst,
		logger:    zerolog.Nop(),
	})
	if err != nil {
		return -1, nil, err
	}
	return td.Move, td, nil
}

// Depth-limited minimax search, at 'maxDepth' plies the position is scored by 'evaluateFn'
// (eval.Evaluate if nil), clamped with eval.Bound. Valid for 3x3 and 4x4 boards.
func FindBestMoveDepthLimited(b board.Board, ai, human board.Player, gridSize, maxDepth int,
	useAlphaBetaPruning bool, evaluateFn eval.EvaluateFunc,
) (int, *ThinkingData, error) {
	if maxDepth <= 0 {
		return -1, nil, fmt.Errorf("%w: %d", ErrInvalidDepth, maxDepth)
	}

	td, err := runSearch(b, searchOptions{
		ai:        ai,
		human:     human,
		gridSize:  gridSize,
		maxDepth:  maxDepth,
		alphaBeta: useAlphaBetaPruning,
		evaluate:  evaluateFn,
		tieBreak:  TieBreakFirst,
		logger:    zerolog.Nop(),
	})
	if err != nil {
		return -1, nil, err
	}
	return td.Move, td, nil
}

func validate(b board.Board, opts searchOptions) error {
	if !opts.ai.Valid() || !opts.human.Valid() || opts.ai == opts.human {
		return fmt.Errorf("%w: ai=%v human=%v", ErrInvalidPlayers, opts.ai, opts.human)
	}

	exact := opts.maxDepth == 0
	switch {
	case exact && opts.gridSize != ExactGridSize:
		return fmt.Errorf("%w: exact search supports only %dx%d, got %d",
			ErrUnsupportedGridSize, ExactGridSize, ExactGridSize, opts.gridSize)
	case !exact && opts.gridSize != ExactGridSize && opts.gridSize != DepthLimitedGridSize:
		return fmt.Errorf("%w: %d", ErrUnsupportedGridSize, opts.gridSize)
	}

	if b.Size() != opts.gridSize {
		return fmt.Errorf("%w: board is %dx%d, grid size %d", ErrBoardSize, b.Size(), b.Size(), opts.gridSize)
	}

	if result, ok := rules.Terminal(b, opts.gridSize); ok {
		return fmt.Errorf("%w: %s", ErrTerminalPosition, result)
	}

	return nil
}

// Root-level orchestration: search every empty cell and pick the best one
func runSearch(b board.Board, opts searchOptions) (*ThinkingData, error) {
	if err := validate(b, opts); err != nil {
		return nil, err
	}

	if opts.evaluate == nil {
		opts.evaluate = eval.Evaluate
	}

	s := &searcher{
		searchOptions: opts,
		cells:         b.Cells(),
		lines:         rules.MustLines(opts.gridSize, opts.gridSize),
		ctx:           newSearchContext(b.Len(), opts.listener),
	}
	ctx := s.ctx

	bestScore := -_infinity
	ties := make([]int, 0, b.Len()) // indices into ctx.evaluations

	for _, move := range b.EmptyCells() {
		nodesBefore, prunesBefore := ctx.nodes, ctx.prunes

		ctx.evaluations = append(ctx.evaluations, MoveEvaluation{Position: move})
		ctx.current = &ctx.evaluations[len(ctx.evaluations)-1]

		s.cells[move] = s.ai
		score := s.search(s.human, 1, -_infinity, _infinity)
		s.cells[move] = board.None

		ctx.updatePv(0, move)
		current := ctx.current
		current.Score = score
		current.Outcome = Classify(score)
		current.Nodes = ctx.nodes - nodesBefore
		current.Prunes = ctx.prunes - prunesBefore
		current.FullyExplored = !current.Pruned
		current.Line = ctx.line(0)
		ctx.current = nil

		s.logger.Debug().
			Int("move", move).
			Int("score", score).
			Str("outcome", current.Outcome.String()).
			Int("nodes", current.Nodes).
			Int("prunes", current.Prunes).
			Int("maxdepth", current.MaxDepth).
			Msg("root-move")

		switch {
		case score > bestScore:
			bestScore = score
			ties = append(ties[:0], len(ctx.evaluations)-1)
		case score == bestScore:
			ties = append(ties, len(ctx.evaluations)-1)
		}

		invoke(ctx.listener.onRootMove, ctx.toListenerStats)
	}

	chosen := ctx.evaluations[s.pickTie(ties)]

	td := &ThinkingData{
		Move:        chosen.Position,
		Score:       chosen.Score,
		Outcome:     chosen.Outcome,
		Evaluations: ctx.evaluations,
		Nodes:       ctx.nodes,
		Prunes:      ctx.prunes,
		MaxDepth:    ctx.maxDepth,
		Terminals:   ctx.terminals,
		Elapsed:     ctx.timer.Elapsed(),
		Pv:          chosen.Line,
		Mode:        SearchExact,
		AlphaBeta:   opts.alphaBeta,
		DepthLimit:  opts.maxDepth,
		GridSize:    opts.gridSize,
		AI:          opts.ai,
		Human:       opts.human,
	}
	if opts.maxDepth > 0 {
		td.Mode = SearchDepthLimited
	}

	s.logger.Info().
		Int("move", td.Move).
		Int("score", td.Score).
		Int("nodes", td.Nodes).
		Int("prunes", td.Prunes).
		Ints("pv", td.Pv).
		Dur("elapsed", td.Elapsed).
		Msg("best-move")

	invoke(ctx.listener.onStop, func() ListenerSearchStats {
		stats := ctx.toListenerStats()
		stats.Thinking = td
		return stats
	})

	return td, nil
}

func (s *searcher) pickTie(ties []int) int {
	if s.tieBreak == TieBreakRandom && len(ties) > 1 && s.rand != nil {
		return ties[s.rand.Intn(len(ties))]
	}
	return ties[0]
}

// Minimax with optional alpha-beta pruning, 'player' is the side to move at 'depth' plies
// from the root. Scores are from the ai's perspective.
func (s *searcher) search(player board.Player, depth, alpha, beta int) int {
	ctx := s.ctx
	ctx.visit(depth)

	if rules.HasWon(s.cells, s.ai, s.lines) {
		ctx.terminals.Wins++
		return WinScore - depth
	}
	if rules.HasWon(s.cells, s.human, s.lines) {
		ctx.terminals.Losses++
		return LossScore + depth
	}

	// Collect empty cells, ascending
	var buffer [DepthLimitedGridSize * DepthLimitedGridSize]int
	moves := buffer[:0]
	for i, c := range s.cells {
		if c == board.None {
			moves = append(moves, i)
		}
	}

	if len(moves) == 0 {
		ctx.terminals.Draws++
		return DrawScore
	}

	if s.maxDepth > 0 && depth >= s.maxDepth {
		return eval.Bound(s.evaluate(s.position(), s.ai, s.human, s.gridSize))
	}

	maximizing := player == s.ai
	best := _infinity
	if maximizing {
		best = -_infinity
	}
	opponent := player.Opponent()

	for i, move := range moves {
		s.cells[move] = player
		score := s.search(opponent, depth+1, alpha, beta)
		s.cells[move] = board.None

		if (maximizing && score > best) || (!maximizing && score < best) {
			best = score
			ctx.updatePv(depth, move)
		}

		if !s.alphaBeta {
			continue
		}

		if maximizing {
			alpha = max(alpha, best)
		} else {
			beta = min(beta, best)
		}

		if beta <= alpha {
			// Count only cutoffs that actually skip siblings
			if i < len(moves)-1 {
				ctx.prune(depth)
			}
			break
		}
	}

	return best
}

// Snapshot of the private board, for the evaluation function
func (s *searcher) position() board.Board {
	b, err := board.FromCells(s.gridSize, s.cells)
	if err != nil {
		panic(err)
	}
	return b
}
