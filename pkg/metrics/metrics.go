package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/IlikeChooros/go-minimax/pkg/minimax"
)

const (
	namespace = "tictactoe"
)

// Prometheus collectors of the engine's search statistics.
// Safe for concurrent use, a single recorder may observe many engines.
type Recorder struct {
	searches  *prometheus.CounterVec
	nodes     *prometheus.CounterVec
	prunes    *prometheus.CounterVec
	outcomes  *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	maxDepth  *prometheus.HistogramVec
	openings  prometheus.Counter
	games     *prometheus.CounterVec
	gameMoves prometheus.Histogram
}

// Create a recorder registering its collectors in 'reg',
// nil means prometheus.DefaultRegisterer
func NewRecorder(reg prometheus.Registerer) *Recorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Recorder{
		// Labels: mode (exact, depth-limited), pruning (on, off)
		searches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "searches_total",
			Help:      "Total searches by mode and pruning",
		}, []string{"mode", "pruning"}),

		nodes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "nodes_total",
			Help:      "Total nodes visited by the search",
		}, []string{"mode", "pruning"}),

		prunes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "prunes_total",
			Help:      "Total alpha-beta cutoffs",
		}, []string{"mode", "pruning"}),

		// Labels: outcome (win, loss, draw, unknown) of the chosen move
		outcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "outcomes_total",
			Help:      "Outcome classification of the chosen moves",
		}, []string{"outcome"}),

		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "search_duration_seconds",
			Help:      "Search duration in seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{"mode"}),

		maxDepth: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "max_depth",
			Help:      "Deepest ply reached by a search",
			Buckets:   prometheus.LinearBuckets(1, 1, 16),
		}, []string{"mode"}),

		openings: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "opening_moves_total",
			Help:      "Moves chosen by the opening shortcut, without a search",
		}),

		// Labels: result (x, o, draw)
		games: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "arena",
			Name:      "games_total",
			Help:      "Finished self-play games by result",
		}, []string{"result"}),

		gameMoves: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "arena",
			Name:      "game_moves",
			Help:      "Number of moves in a finished game",
			Buckets:   prometheus.LinearBuckets(5, 1, 12),
		}),
	}
}

func pruningLabel(alphaBeta bool) string {
	if alphaBeta {
		return "on"
	}
	return "off"
}

// Record a finished search
func (r *Recorder) ObserveSearch(td *minimax.ThinkingData) {
	if td == nil {
		return
	}

	mode, pruning := td.Mode.String(), pruningLabel(td.AlphaBeta)
	r.searches.WithLabelValues(mode, pruning).Inc()
	r.nodes.WithLabelValues(mode, pruning).Add(float64(td.Nodes))
	r.prunes.WithLabelValues(mode, pruning).Add(float64(td.Prunes))
	r.outcomes.WithLabelValues(td.Outcome.String()).Inc()
	r.duration.WithLabelValues(mode).Observe(td.Elapsed.Seconds())
	r.maxDepth.WithLabelValues(mode).Observe(float64(td.MaxDepth))
}

// Record a facade decision, opening moves have no thinking data
func (r *Recorder) ObserveDecision(d minimax.Decision) {
	if d.Opening {
		r.openings.Inc()
		return
	}
	r.ObserveSearch(d.Thinking)
}

// Record a finished game, 'result' is "x", "o" or "draw"
func (r *Recorder) ObserveGame(result string, moves int) {
	r.games.WithLabelValues(result).Inc()
	r.gameMoves.Observe(float64(moves))
}

// Listener feeding every finished search into the recorder,
// chain it with other listeners with minimax.StatsListener.Chain
func (r *Recorder) Listener() minimax.StatsListener {
	listener := minimax.NewStatsListener()
	listener.OnStop(func(stats minimax.ListenerSearchStats) {
		r.ObserveSearch(stats.Thinking)
	})
	return listener
}

// HTTP handler exposing the metrics of 'g' in the text format
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
