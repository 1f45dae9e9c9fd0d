package main

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/IlikeChooros/go-minimax/pkg/config"
)

// Shared state of the commands, filled by the root's PersistentPreRunE
type app struct {
	configPath string
	logLevel   string

	config config.Config
	logger zerolog.Logger
	// Log output, stderr unless replaced by tests
	logOut io.Writer
}

func newRootCmd() *cobra.Command {
	a := &app{logOut: os.Stderr}

	root := &cobra.Command{
		Use:   "tictactoe",
		Short: "Tic-Tac-Toe minimax engine with search reports",
		Long: `Plays 3x3 Tic-Tac-Toe perfectly (exact minimax) and 4x4 with a
depth-limited search, printing how every decision was reached.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")

	root.AddCommand(
		newPlayCmd(a),
		newAnalyzeCmd(a),
		newArenaCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}

	a.config = cfg
	a.logger = zerolog.New(zerolog.ConsoleWriter{Out: a.logOut, TimeFormat: time.TimeOnly}).
		Level(level).
		With().
		Timestamp().
		Logger()
	return nil
}
