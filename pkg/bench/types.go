package bench

import (
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/IlikeChooros/go-minimax/pkg/board"
	"github.com/IlikeChooros/go-minimax/pkg/rules"
)

type VersusMatchResult int

const (
	VersusPl1Win VersusMatchResult = 1
	VersusPl2Win VersusMatchResult = -1
	VersusDraw   VersusMatchResult = 0
)

func (r VersusMatchResult) String() string {
	switch r {
	case VersusPl1Win:
		return "player1"
	case VersusPl2Win:
		return "player2"
	}
	return "draw"
}

type VersusArenaStats struct {
	p1Wins           uint32
	p2Wins           uint32
	draws            uint32
	firstToMoveWins  uint32
	secondToMoveWins uint32
	openings         uint32
	searches         uint32
}

func (vas *VersusArenaStats) Total() int {
	return vas.P1Wins() + vas.P2Wins() + vas.Draws()
}

func (vas *VersusArenaStats) P1Wins() int {
	return int(atomic.LoadUint32(&vas.p1Wins))
}

func (vas *VersusArenaStats) P2Wins() int {
	return int(atomic.LoadUint32(&vas.p2Wins))
}

func (vas *VersusArenaStats) Draws() int {
	return int(atomic.LoadUint32(&vas.draws))
}

func (vas *VersusArenaStats) FirstToMoveWins() int {
	return int(atomic.LoadUint32(&vas.firstToMoveWins))
}

func (vas *VersusArenaStats) SecondToMoveWins() int {
	return int(atomic.LoadUint32(&vas.secondToMoveWins))
}

// Moves played by the opening shortcut
func (vas *VersusArenaStats) Openings() int {
	return int(atomic.LoadUint32(&vas.openings))
}

// Moves chosen by a search
func (vas *VersusArenaStats) Searches() int {
	return int(atomic.LoadUint32(&vas.searches))
}

func (vas *VersusArenaStats) add(record GameRecord) {
	switch record.Result {
	case VersusPl1Win:
		atomic.AddUint32(&vas.p1Wins, 1)
	case VersusPl2Win:
		atomic.AddUint32(&vas.p2Wins, 1)
	default:
		atomic.AddUint32(&vas.draws, 1)
	}

	if !record.Outcome.Draw {
		if record.Outcome.Winner == board.X {
			atomic.AddUint32(&vas.firstToMoveWins, 1)
		} else {
			atomic.AddUint32(&vas.secondToMoveWins, 1)
		}
	}
}

// Single finished game
type GameRecord struct {
	ID          uuid.UUID
	WorkerID    int
	Moves       []int
	P1WentFirst bool
	Outcome     rules.GameResult
	Result      VersusMatchResult
}

// Result name used in metrics and logs: "x", "o" or "draw"
func (r GameRecord) ResultName() string {
	if r.Outcome.Draw || !r.Outcome.Winner.Valid() {
		return "draw"
	}
	if r.Outcome.Winner == board.X {
		return "x"
	}
	return "o"
}

type VersusWorkerInfo struct {
	WorkerID      int
	NGames        int
	FinishedGames int
	GameID        uuid.UUID
	GameMoveNum   int
	Moves         []int
	P1Wins        int
	P2Wins        int
	Draws         int
}

type VersusSummaryInfo struct {
	TotalGames       int    `json:"total_games"`
	P1Wins           int    `json:"player1_wins"`
	P2Wins           int    `json:"player2_wins"`
	FirstToMoveWins  int    `json:"first_to_move_wins"`
	SecondToMoveWins int    `json:"second_to_move_wins"`
	Draws            int    `json:"draws"`
	Openings         int    `json:"openings"`
	Searches         int    `json:"searches"`
	Workers          int    `json:"workers"`
	P1Name           string `json:"player1_name"`
	P2Name           string `json:"player2_name"`
}

// maps a game outcome to which engine won, given player assignments
func toAgentResult(outcome rules.GameResult, p1WentFirst bool) VersusMatchResult {
	if outcome.Draw || !outcome.Winner.Valid() {
		return VersusDraw
	}

	if p1WentFirst == (outcome.Winner == board.X) {
		return VersusPl1Win
	}
	return VersusPl2Win
}
