package main

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/IlikeChooros/go-minimax/pkg/board"
	"github.com/IlikeChooros/go-minimax/pkg/rules"
	"github.com/IlikeChooros/go-minimax/pkg/trace"
)

var errBadInput = errors.New("expected 'row col' (1-based) or a cell index")

func newPlayCmd(a *app) *cobra.Command {
	flags := &engineFlags{}
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game against the engine on stdin/stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.apply(cmd, &a.config); err != nil {
				return err
			}
			return a.play(cmd)
		},
	}
	flags.register(cmd)
	return cmd
}

func (a *app) play(cmd *cobra.Command) error {
	cfg := a.config
	out := cmd.OutOrStdout()
	in := bufio.NewScanner(cmd.InOrStdin())

	ai, err := cfg.AIPlayer()
	if err != nil {
		return err
	}
	engine := cfg.NewEngine(a.logger)
	session := trace.Session{}
	size := cfg.Game.Size

	b := board.New(size)
	turn := board.X
	fmt.Fprintf(out, "You play %v, the engine plays %v. Enter moves as 'row col' or a cell index.\n", ai.Opponent(), ai)

	for {
		fmt.Fprintf(out, "\n%s\n", b)
		if result, ok := rules.Terminal(b, size); ok {
			fmt.Fprintf(out, "Game over: %s\n", result)
			return nil
		}

		var move int
		if turn == ai {
			decision, err := engine.BestMoveContext(cmd.Context(), b, ai)
			if err != nil {
				return err
			}
			session = session.Add(decision.Thinking)
			move = decision.Move

			fmt.Fprintf(out, "Engine plays %s\n", trace.CellLabel(move, size))
			fmt.Fprint(out, trace.Report(decision.Thinking, &trace.Options{
				Top:     cfg.Report.Top,
				Profile: cfg.Profile(),
				Session: &session,
			}))
		} else {
			fmt.Fprintf(out, "%v to move: ", turn)
			if !in.Scan() {
				fmt.Fprintln(out, "\nbye")
				return in.Err()
			}

			move, err = parseMove(in.Text(), b)
			if err != nil {
				fmt.Fprintln(out, err)
				continue
			}
		}

		next, err := b.Place(move, turn)
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		b = next
		turn = turn.Opponent()
	}
}

// Parse 'row col' (1-based) or a 0-based cell index
func parseMove(text string, b board.Board) (int, error) {
	fields := strings.Fields(text)
	numbers := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return -1, fmt.Errorf("%w: %q", errBadInput, text)
		}
		numbers = append(numbers, n)
	}

	var index int
	switch len(numbers) {
	case 1:
		index = numbers[0]
	case 2:
		row, col := numbers[0]-1, numbers[1]-1
		if row < 0 || col < 0 || row >= b.Size() || col >= b.Size() {
			return -1, fmt.Errorf("%w: %d %d", board.ErrOutOfRange, numbers[0], numbers[1])
		}
		index = b.Index(row, col)
	default:
		return -1, fmt.Errorf("%w: %q", errBadInput, text)
	}

	if !b.InRange(index) {
		return -1, fmt.Errorf("%w: %d", board.ErrOutOfRange, index)
	}
	return index, nil
}
