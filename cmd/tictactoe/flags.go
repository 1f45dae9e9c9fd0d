package main

import (
	"github.com/spf13/cobra"

	"github.com/IlikeChooros/go-minimax/pkg/config"
)

// Engine and report flags shared by the commands, applied over the config
// only when set on the command line
type engineFlags struct {
	size    int
	depth   int
	noPrune bool
	ai      string
	tie     string
	seed    int64
	top     int
	color   bool
}

func (f *engineFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.IntVar(&f.size, "size", 3, "board size, 3 or 4")
	flags.IntVar(&f.depth, "depth", 0, "search depth limit in plies, 0 = exact on 3x3")
	flags.BoolVar(&f.noPrune, "no-prune", false, "disable alpha-beta pruning")
	flags.StringVar(&f.ai, "ai", "o", "engine's mark, x or o")
	flags.StringVar(&f.tie, "tie", "first", "tie-break between equal moves, first or random")
	flags.Int64Var(&f.seed, "seed", 0, "seed of the engine's random source, 0 = time based")
	flags.IntVar(&f.top, "top", 3, "number of candidate moves listed in reports, 0 = all")
	flags.BoolVar(&f.color, "color", false, "colour the reports")
}

func (f *engineFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("size") {
		cfg.Game.Size = f.size
	}
	if flags.Changed("depth") {
		cfg.Engine.Depth = f.depth
	}
	if flags.Changed("no-prune") {
		cfg.Engine.AlphaBeta = !f.noPrune
	}
	if flags.Changed("ai") {
		cfg.Game.AI = f.ai
	}
	if flags.Changed("tie") {
		cfg.Engine.TieBreak = f.tie
	}
	if flags.Changed("seed") {
		cfg.Engine.Seed = f.seed
	}
	if flags.Changed("top") {
		cfg.Report.Top = f.top
	}
	if flags.Changed("color") {
		cfg.Report.Color = f.color
	}
	return cfg.Validate()
}
