package bench

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/IlikeChooros/go-minimax/pkg/board"
	"github.com/IlikeChooros/go-minimax/pkg/minimax"
	"github.com/IlikeChooros/go-minimax/pkg/rules"
)

/*
Arena benchmark subpackage, plays a series of games between two engine
configurations, on a pool of worker goroutines.
*/

var ErrInvalidSetup = errors.New("invalid arena setup")

type VersusArena struct {
	VersusArenaStats
	Player1  *minimax.Engine
	Player2  *minimax.Engine
	P1Name   string
	P2Name   string
	NGames   int
	NWorkers int
	Size     int

	// Called for every move an engine makes, from the worker goroutines
	OnDecision func(minimax.Decision)

	mu      sync.Mutex
	records []GameRecord
}

func NewVersusArena(player1, player2 *minimax.Engine) *VersusArena {
	return &VersusArena{
		Player1:  player1,
		Player2:  player2,
		P1Name:   "player1",
		P2Name:   "player2",
		NGames:   100,
		NWorkers: 2,
		Size:     minimax.ExactGridSize,
	}
}

func (va *VersusArena) Setup(nGames, nWorkers, size int) *VersusArena {
	va.NGames = nGames
	va.NWorkers = nWorkers
	va.Size = size
	return va
}

// Finished games, in completion order
func (va *VersusArena) Records() []GameRecord {
	va.mu.Lock()
	defer va.mu.Unlock()
	return append([]GameRecord(nil), va.records...)
}

func (va *VersusArena) validate() error {
	switch {
	case va.Player1 == nil || va.Player2 == nil:
		return fmt.Errorf("%w: both engines are required", ErrInvalidSetup)
	case va.NGames < 1:
		return fmt.Errorf("%w: games must be >= 1, got %d", ErrInvalidSetup, va.NGames)
	case va.NWorkers < 1:
		return fmt.Errorf("%w: workers must be >= 1, got %d", ErrInvalidSetup, va.NWorkers)
	case va.Size != minimax.ExactGridSize && va.Size != minimax.DepthLimitedGridSize:
		return fmt.Errorf("%w: %v", ErrInvalidSetup, minimax.ErrUnsupportedGridSize)
	}
	return nil
}

// Play all games and wait for the workers. On cancellation returns the context's
// error together with the summary of the games finished so far.
func (va *VersusArena) Run(ctx context.Context, listener ListenerLike) (VersusSummaryInfo, error) {
	if err := va.validate(); err != nil {
		return VersusSummaryInfo{}, err
	}
	if listener == nil {
		listener = DefaultListener{}
	}

	group, gctx := errgroup.WithContext(ctx)

	// Equally distributed work between the workers
	nWorkers := min(va.NWorkers, va.NGames)
	nGames := va.NGames / nWorkers
	rest := va.NGames % nWorkers
	for i := range nWorkers {
		games := nGames
		if rest > 0 {
			games++
			rest--
		}

		// Clone the engines, so every worker has its own random source
		p1 := va.Player1.Clone()
		p2 := va.Player2.Clone()
		seed := minimax.SeedGeneratorFn() + int64(i)

		group.Go(func() error {
			return va.worker(gctx, i, games, seed, listener, p1, p2)
		})
	}

	err := group.Wait()
	summary := va.summary(nWorkers)
	listener.Summary(summary)
	return summary, err
}

func (va *VersusArena) summary(workers int) VersusSummaryInfo {
	return VersusSummaryInfo{
		TotalGames:       va.Total(),
		P1Wins:           va.P1Wins(),
		P2Wins:           va.P2Wins(),
		FirstToMoveWins:  va.FirstToMoveWins(),
		SecondToMoveWins: va.SecondToMoveWins(),
		Draws:            va.Draws(),
		Openings:         va.Openings(),
		Searches:         va.Searches(),
		Workers:          workers,
		P1Name:           va.P1Name,
		P2Name:           va.P2Name,
	}
}

func (va *VersusArena) worker(ctx context.Context, id, nGames int, seed int64,
	listener ListenerLike, p1, p2 *minimax.Engine,
) error {
	r := rand.New(rand.NewSource(seed))
	local := VersusWorkerInfo{WorkerID: id, NGames: nGames}

	for range nGames {
		p1First := r.Intn(2) == 0
		first, second := p1, p2
		if !p1First {
			first, second = p2, p1
		}

		record, err := va.playGame(ctx, first, second, listener, &local)
		if err != nil {
			return err
		}
		record.P1WentFirst = p1First
		record.Result = toAgentResult(record.Outcome, p1First)

		va.VersusArenaStats.add(record)
		va.mu.Lock()
		va.records = append(va.records, record)
		va.mu.Unlock()

		local.FinishedGames++
		switch record.Result {
		case VersusPl1Win:
			local.P1Wins++
		case VersusPl2Win:
			local.P2Wins++
		default:
			local.Draws++
		}
		listener.OnFinishedGame(local, record)
	}

	listener.OnFinishedWork(local)
	return nil
}

func (va *VersusArena) playGame(ctx context.Context, first, second *minimax.Engine,
	listener ListenerLike, info *VersusWorkerInfo,
) (GameRecord, error) {
	record := GameRecord{
		ID:       uuid.New(),
		WorkerID: info.WorkerID,
		Moves:    make([]int, 0, va.Size*va.Size),
	}
	info.GameID = record.ID

	b := board.New(va.Size)
	turn := board.X
	engines := [2]*minimax.Engine{first, second}

	for ply := 0; ; ply++ {
		if result, ok := rules.Terminal(b, va.Size); ok {
			record.Outcome = result
			return record, nil
		}

		decision, err := engines[ply%2].BestMoveContext(ctx, b, turn)
		if err != nil {
			return record, fmt.Errorf("game %s, move %d: %w", record.ID, ply+1, err)
		}

		if decision.Opening {
			atomic.AddUint32(&va.openings, 1)
		} else {
			atomic.AddUint32(&va.searches, 1)
		}
		if va.OnDecision != nil {
			va.OnDecision(decision)
		}

		if b, err = b.Place(decision.Move, turn); err != nil {
			return record, err
		}
		record.Moves = append(record.Moves, decision.Move)
		turn = turn.Opponent()

		// Progress carries the arena-wide results
		progress := *info
		progress.Moves = record.Moves
		progress.GameMoveNum = len(record.Moves)
		progress.P1Wins, progress.P2Wins, progress.Draws = va.P1Wins(), va.P2Wins(), va.Draws()
		listener.OnMoveMade(progress)
	}
}
