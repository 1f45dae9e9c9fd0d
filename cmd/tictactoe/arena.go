package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/IlikeChooros/go-minimax/pkg/bench"
	"github.com/IlikeChooros/go-minimax/pkg/metrics"
	"github.com/IlikeChooros/go-minimax/pkg/minimax"
)

func newArenaCmd(a *app) *cobra.Command {
	flags := &engineFlags{}
	var games, workers int
	var metricsAddr, opponent string

	cmd := &cobra.Command{
		Use:   "arena",
		Short: "Play engine vs engine games and print the summary",
		Long: `Plays a series of self-play games on worker goroutines. The first engine
uses the configured limits, the second one the --opponent preset:
  same      identical limits
  no-prune  pruning disabled
  shallow   depth limit of 1 ply`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("games") {
				a.config.Arena.Games = games
			}
			if cmd.Flags().Changed("workers") {
				a.config.Arena.Workers = workers
			}
			if cmd.Flags().Changed("metrics-addr") {
				a.config.Arena.MetricsAddr = metricsAddr
			}
			if err := flags.apply(cmd, &a.config); err != nil {
				return err
			}
			return a.arena(cmd, opponent)
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVar(&games, "games", 100, "number of games")
	cmd.Flags().IntVar(&workers, "workers", 4, "number of worker goroutines")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve prometheus metrics on this address, e.g. :2112")
	cmd.Flags().StringVar(&opponent, "opponent", "same", "second engine preset: same, no-prune, shallow")
	return cmd
}

func opponentLimits(preset string, limits *minimax.Limits) (*minimax.Limits, error) {
	switch preset {
	case "same":
		return limits.Clone(), nil
	case "no-prune":
		return limits.Clone().SetAlphaBeta(false), nil
	case "shallow":
		return limits.Clone().SetDepth(1), nil
	}
	return nil, fmt.Errorf("unknown opponent preset %q", preset)
}

// Arena listener logging the games and feeding the game metrics
type arenaListener struct {
	*bench.LogListener
	recorder *metrics.Recorder
}

func (l arenaListener) OnFinishedGame(info bench.VersusWorkerInfo, record bench.GameRecord) {
	l.LogListener.OnFinishedGame(info, record)
	l.recorder.ObserveGame(record.ResultName(), len(record.Moves))
}

func (a *app) arena(cmd *cobra.Command, preset string) error {
	cfg := a.config
	ctx := cmd.Context()

	p2Limits, err := opponentLimits(preset, cfg.Limits())
	if err != nil {
		return err
	}

	p1 := cfg.NewEngine(a.logger)
	p2 := minimax.NewEngine(p2Limits)
	p2.SetLogger(a.logger)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	recorder := metrics.NewRecorder(reg)

	if cfg.Arena.MetricsAddr != "" {
		server := &http.Server{
			Addr:              cfg.Arena.MetricsAddr,
			Handler:           metricsMux(reg),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				a.logger.Error().Err(err).Str("addr", server.Addr).Msg("metrics-server")
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			_ = server.Shutdown(shutdownCtx)
		}()
		a.logger.Info().Str("addr", server.Addr).Msg("serving metrics")
	}

	arena := bench.NewVersusArena(p1, p2).Setup(cfg.Arena.Games, cfg.Arena.Workers, cfg.Game.Size)
	arena.P1Name, arena.P2Name = "engine", preset
	arena.OnDecision = recorder.ObserveDecision

	summary, err := arena.Run(ctx, arenaListener{
		LogListener: bench.NewLogListener(a.logger),
		recorder:    recorder,
	})

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	if encodeErr := encoder.Encode(summary); encodeErr != nil {
		return encodeErr
	}
	return err
}

func metricsMux(reg *prometheus.Registry) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler(reg))
	return mux
}
