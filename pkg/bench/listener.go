package bench

import (
	"github.com/rs/zerolog"
)

// Arena progress callbacks, called concurrently from the worker goroutines
type ListenerLike interface {
	OnMoveMade(info VersusWorkerInfo)
	OnFinishedGame(info VersusWorkerInfo, record GameRecord)
	OnFinishedWork(info VersusWorkerInfo)
	Summary(summary VersusSummaryInfo)
}

// Does nothing
type DefaultListener struct{}

func (DefaultListener) OnMoveMade(VersusWorkerInfo)                 {}
func (DefaultListener) OnFinishedGame(VersusWorkerInfo, GameRecord) {}
func (DefaultListener) OnFinishedWork(VersusWorkerInfo)             {}
func (DefaultListener) Summary(VersusSummaryInfo)                   {}

// Writes arena progress to a zerolog logger
type LogListener struct {
	DefaultListener
	logger zerolog.Logger
}

func NewLogListener(logger zerolog.Logger) *LogListener {
	return &LogListener{logger: logger}
}

func (l *LogListener) OnFinishedGame(info VersusWorkerInfo, record GameRecord) {
	l.logger.Info().
		Str("game", record.ID.String()).
		Int("worker", info.WorkerID).
		Int("game-num", info.FinishedGames).
		Ints("moves", record.Moves).
		Str("winner", record.ResultName()).
		Str("result", record.Result.String()).
		Bool("p1-first", record.P1WentFirst).
		Msg("game-finished")
}

func (l *LogListener) OnFinishedWork(info VersusWorkerInfo) {
	l.logger.Debug().
		Int("worker", info.WorkerID).
		Int("games", info.FinishedGames).
		Int("p1-wins", info.P1Wins).
		Int("p2-wins", info.P2Wins).
		Int("draws", info.Draws).
		Msg("worker-finished")
}

func (l *LogListener) Summary(summary VersusSummaryInfo) {
	l.logger.Info().
		Int("games", summary.TotalGames).
		Int("p1-wins", summary.P1Wins).
		Int("p2-wins", summary.P2Wins).
		Int("draws", summary.Draws).
		Int("first-to-move-wins", summary.FirstToMoveWins).
		Int("second-to-move-wins", summary.SecondToMoveWins).
		Msg("arena-summary")
}
