package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"blackjack/counting"
	"blackjack/experiments"
	"blackjack/meta"
	"blackjack/report"
	"blackjack/store"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := meta.Load(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatal().Err(err).Msg("blackjack failed")
	}
}

func run(ctx context.Context, cfg meta.Config) error {
	table, err := loadTable(cfg.StrategiesFile)
	if err != nil {
		return err
	}

	if cfg.DumpStrategies != "" {
		return dumpTable(table, cfg.DumpStrategies)
	}

	var db *store.DB
	if cfg.DatabaseURL != "" {
		if db, err = openStore(ctx, cfg); err != nil {
			return err
		}
		defer db.Close()
	}

	if cfg.Replay {
		latest, err := db.LatestReport(ctx)
		if err != nil {
			return err
		}
		log.Info().Msgf("replaying run started %s", latest.StartTime.Format(time.RFC3339))
		return report.Serve(ctx, cfg.Serve, latest)
	}

	var sinks []experiments.Sink
	if cfg.OutDir != "" {
		sinks = append(sinks, experiments.FileSink{Root: cfg.OutDir})
	}
	if db != nil {
		sinks = append(sinks, db)
	}

	comparison := experiments.NewComparison(table, experiments.Config{
		Sessions:   cfg.Sessions,
		Window:     cfg.Window,
		Decks:      cfg.Decks,
		Target:     cfg.Target,
		MinDepth:   cfg.MinDepth,
		Workers:    cfg.Workers,
		Seed:       cfg.Seed,
		Strategies: cfg.Strategies,
	}, sinks...)
	log.Info().Msgf("Running comparison %+v", comparison.Config())

	result, err := comparison.Run(ctx)
	if err != nil {
		return err
	}
	for i, standing := range result.Standings() {
		log.Info().Msgf("%2d. %-12s %.4f%%", i+1, standing.Strategy, standing.WinRate)
	}
	log.Info().Msgf("Finished comparison in %s", result.EndTime.Sub(result.StartTime).Round(time.Millisecond))

	if cfg.Serve != "" {
		return report.Serve(ctx, cfg.Serve, result)
	}
	return nil
}

func loadTable(path string) (counting.Table, error) {
	if path == "" {
		return counting.DefaultTable(), nil
	}
	return counting.LoadTableFile(path)
}

func dumpTable(table counting.Table, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := table.Write(f); err != nil {
		return err
	}
	log.Info().Msgf("Wrote %d strategies to %s", table.Len(), path)
	return nil
}

func openStore(ctx context.Context, cfg meta.Config) (*store.DB, error) {
	ctx, cancel := context.WithTimeout(ctx, meta.STORE_TIMEOUT)
	defer cancel()

	db, err := store.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}

	if cfg.Retention > 0 {
		pruned, err := db.Prune(ctx, time.Now().Add(-cfg.Retention))
		if err != nil {
			db.Close()
			return nil, err
		}
		log.Info().Msgf("Pruned %d stored runs older than %s", pruned, cfg.Retention)
	}
	return db, nil
}
