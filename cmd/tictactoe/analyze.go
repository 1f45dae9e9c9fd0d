package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IlikeChooros/go-minimax/pkg/board"
	"github.com/IlikeChooros/go-minimax/pkg/trace"
)

func newAnalyzeCmd(a *app) *cobra.Command {
	flags := &engineFlags{}
	var notation string
	var replay bool

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Search a single position and print the report",
		Example: `  tictactoe analyze --board xx1/1o1/3 --ai o
  tictactoe analyze --board x3/1o2/4/4 --depth 4 --top 0 --replay`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := board.FromNotation(notation)
			if err != nil {
				return err
			}

			// Board size and side to move come from the position
			a.config.Game.Size = b.Size()
			if !cmd.Flags().Changed("ai") {
				a.config.Game.AI = b.Turn().String()
			}
			if cmd.Flags().Changed("replay") {
				a.config.Report.Replay = replay
			}
			if err := flags.apply(cmd, &a.config); err != nil {
				return err
			}
			if cmd.Flags().Changed("size") && flags.size != b.Size() {
				return fmt.Errorf("--size %d doesn't match the %dx%d board", flags.size, b.Size(), b.Size())
			}
			return a.analyze(cmd, b)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&notation, "board", "", "position, e.g. xx1/1o1/3")
	cmd.Flags().BoolVar(&replay, "replay", false, "print the replay steps")
	_ = cmd.MarkFlagRequired("board")
	return cmd
}

func (a *app) analyze(cmd *cobra.Command, b board.Board) error {
	cfg := a.config
	out := cmd.OutOrStdout()

	ai, err := cfg.AIPlayer()
	if err != nil {
		return err
	}

	decision, err := cfg.NewEngine(a.logger).BestMoveContext(cmd.Context(), b, ai)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s\n\n", b)
	fmt.Fprint(out, trace.Report(decision.Thinking, &trace.Options{
		Top:     cfg.Report.Top,
		Profile: cfg.Profile(),
	}))
	if decision.Opening {
		fmt.Fprintf(out, "Engine plays %s\n", trace.CellLabel(decision.Move, b.Size()))
	}

	if !cfg.Report.Replay {
		return nil
	}

	steps := trace.ReplaySteps(decision.Thinking)
	if len(steps) == 0 {
		return nil
	}
	fmt.Fprintln(out, "Replay:")
	for _, s := range steps {
		fmt.Fprintf(out, "  %d. cell %-2d (%d,%d) %-10s score %4d  %-11s nodes %-7d depth %d\n",
			s.Index+1, s.Position, s.Row+1, s.Col+1, s.Kind, s.Score, trace.OutcomeLabel(s.Outcome), s.Nodes, s.Depth)
	}
	return nil
}
