package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IlikeChooros/go-minimax/pkg/board"
	"github.com/IlikeChooros/go-minimax/pkg/minimax"
)

func newTestRecorder(t *testing.T) (*Recorder, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	return NewRecorder(reg), reg
}

// TestRecorder_ListenerObservesSearch verifies engine searches reach the counters.
func TestRecorder_ListenerObservesSearch(t *testing.T) {
	recorder, _ := newTestRecorder(t)

	engine := minimax.NewEngine(nil)
	engine.SetListener(recorder.Listener())

	decision, err := engine.BestMove(board.MustFromNotation("xx1/oo1/3"), board.X)
	require.NoError(t, err)
	td := decision.Thinking
	require.NotNil(t, td)

	assert.Equal(t, 1.0, testutil.ToFloat64(recorder.searches.WithLabelValues("exact", "on")))
	assert.Equal(t, float64(td.Nodes), testutil.ToFloat64(recorder.nodes.WithLabelValues("exact", "on")))
	assert.Equal(t, float64(td.Prunes), testutil.ToFloat64(recorder.prunes.WithLabelValues("exact", "on")))
	assert.Equal(t, 1.0, testutil.ToFloat64(recorder.outcomes.WithLabelValues("win")))
}

// TestRecorder_ObserveDecision verifies openings are counted apart from searches.
func TestRecorder_ObserveDecision(t *testing.T) {
	recorder, _ := newTestRecorder(t)
	engine := minimax.NewEngine(nil)

	opening, err := engine.BestMove(board.New(3), board.X)
	require.NoError(t, err)
	recorder.ObserveDecision(opening)

	searched, err := engine.BestMove(board.MustFromNotation("x3/1o2/4/4"), board.X)
	require.NoError(t, err)
	recorder.ObserveDecision(searched)

	assert.Equal(t, 1.0, testutil.ToFloat64(recorder.openings))
	assert.Equal(t, 1.0, testutil.ToFloat64(recorder.searches.WithLabelValues("depth-limited", "on")))
	assert.Equal(t, 0.0, testutil.ToFloat64(recorder.searches.WithLabelValues("exact", "on")))
}

// TestRecorder_ObserveGame verifies arena results are counted.
func TestRecorder_ObserveGame(t *testing.T) {
	recorder, _ := newTestRecorder(t)

	recorder.ObserveGame("draw", 9)
	recorder.ObserveGame("draw", 9)
	recorder.ObserveGame("x", 7)

	assert.Equal(t, 2.0, testutil.ToFloat64(recorder.games.WithLabelValues("draw")))
	assert.Equal(t, 1.0, testutil.ToFloat64(recorder.games.WithLabelValues("x")))
	assert.Equal(t, 0.0, testutil.ToFloat64(recorder.games.WithLabelValues("o")))
	assert.Equal(t, 1, testutil.CollectAndCount(recorder.gameMoves))
}

// TestRecorder_NilThinking verifies a nil search result is ignored.
func TestRecorder_NilThinking(t *testing.T) {
	recorder, reg := newTestRecorder(t)
	recorder.ObserveSearch(nil)

	count, err := testutil.GatherAndCount(reg, "tictactoe_engine_searches_total")
	require.NoError(t, err)
	assert.Zero(t, count)
}

// TestHandler verifies the metrics endpoint serves the registry.
func TestHandler(t *testing.T) {
	recorder, reg := newTestRecorder(t)
	recorder.ObserveGame("o", 8)

	server := httptest.NewServer(Handler(reg))
	defer server.Close()

	resp, err := server.Client().Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `tictactoe_arena_games_total{result="o"} 1`)
}
