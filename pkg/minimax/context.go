package minimax

// Mutable accumulator of one top-level search call. Created when the call starts,
// dropped when it returns, never shared between calls.
type searchContext struct {
	nodes     int
	prunes    int
	maxDepth  int
	terminals TerminalCounts

	// Evaluation record of the root move currently being searched
	current     *MoveEvaluation
	evaluations []MoveEvaluation

	// Triangular principal variation table, pv[ply][:pvLen[ply]] is the best line from 'ply'
	pv    [][]int
	pvLen []int

	listener *StatsListener
	timer    *_Timer
}

func newSearchContext(cells int, listener *StatsListener) *searchContext {
	ctx := &searchContext{
		evaluations: make([]MoveEvaluation, 0, cells),
		pv:          make([][]int, cells+2),
		pvLen:       make([]int, cells+2),
		listener:    listener,
		timer:       _NewTimer(),
	}
	for i := range ctx.pv {
		ctx.pv[i] = make([]int, cells+1)
	}
	if ctx.listener == nil {
		ctx.listener = &StatsListener{}
	}
	return ctx
}

// Called on every node entered
func (ctx *searchContext) visit(depth int) {
	ctx.nodes++
	ctx.pvLen[depth] = 0

	if depth > ctx.maxDepth {
		ctx.maxDepth = depth
		invoke(ctx.listener.onDepth, ctx.toListenerStats)
	}

	if ctx.current != nil && depth > ctx.current.MaxDepth {
		ctx.current.MaxDepth = depth
	}
}

// Record a cutoff at given depth, for the current root candidate
func (ctx *searchContext) prune(depth int) {
	ctx.prunes++
	if ctx.current == nil {
		return
	}
	if !ctx.current.Pruned {
		ctx.current.Pruned = true
		ctx.current.PruneDepth = depth
	}
}

// Best line at 'depth' becomes 'move' followed by the best line of the child
func (ctx *searchContext) updatePv(depth, move int) {
	child := depth + 1
	ctx.pv[depth][0] = move
	n := copy(ctx.pv[depth][1:], ctx.pv[child][:ctx.pvLen[child]])
	ctx.pvLen[depth] = n + 1
}

func (ctx *searchContext) line(depth int) []int {
	line := make([]int, ctx.pvLen[depth])
	copy(line, ctx.pv[depth][:ctx.pvLen[depth]])
	return line
}
