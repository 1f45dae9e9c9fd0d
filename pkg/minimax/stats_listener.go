package minimax

type ListenerSearchStats struct {
	Nodes    int
	Prunes   int
	Maxdepth int
	TimeMs   int
	// Root candidates evaluated so far, must not be modified
	Evaluations []MoveEvaluation
	// Set only in the 'OnStop' callback
	Thinking *ThinkingData
}

func (ctx *searchContext) toListenerStats() ListenerSearchStats {
	return ListenerSearchStats{
		Nodes:       ctx.nodes,
		Prunes:      ctx.prunes,
		Maxdepth:    ctx.maxDepth,
		TimeMs:      ctx.timer.Deltatime(),
		Evaluations: ctx.evaluations,
	}
}

// Listener function callback, will recieve current search statistics
type ListenerFunc func(ListenerSearchStats)

type StatsListener struct {
	// called when 'max depth' increases
	onDepth ListenerFunc

	// called after every root candidate is fully searched
	onRootMove ListenerFunc

	// called when the search ends, with the final thinking data
	onStop ListenerFunc
}

func NewStatsListener() StatsListener {
	return StatsListener{}
}

// Attach new on max depth change callback, it's called from the search loop,
// so keep it cheap
func (listener *StatsListener) OnDepth(onDepth ListenerFunc) *StatsListener {
	listener.onDepth = onDepth
	return listener
}

// Attach callback invoked after each root move is evaluated,
// the last element of 'Evaluations' is the move that just finished
func (listener *StatsListener) OnRootMove(onRootMove ListenerFunc) *StatsListener {
	listener.onRootMove = onRootMove
	return listener
}

// Attach 'on search end' callback, makes 'Thinking' available in the stats
func (listener *StatsListener) OnStop(onStop ListenerFunc) *StatsListener {
	listener.onStop = onStop
	return listener
}

// Merge two listeners, callbacks of both are invoked (this one first)
func (listener StatsListener) Chain(other StatsListener) StatsListener {
	return StatsListener{
		onDepth:    chain(listener.onDepth, other.onDepth),
		onRootMove: chain(listener.onRootMove, other.onRootMove),
		onStop:     chain(listener.onStop, other.onStop),
	}
}

func chain(a, b ListenerFunc) ListenerFunc {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(stats ListenerSearchStats) {
		a(stats)
		b(stats)
	}
}

func invoke(f ListenerFunc, stats func() ListenerSearchStats) {
	if f != nil {
		f(stats())
	}
}
