package store

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"strconv"
	"time"

	"blackjack/experiments"
	"blackjack/experiments/metrics"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

//go:embed schema.sql
var schema embed.FS

// ErrNoRuns is returned when the database holds no comparison run yet.
var ErrNoRuns = errors.New("no stored runs")

type DB struct{ *pgxpool.Pool }

func Open(ctx context.Context, dsn string) (*DB, error) {
	p, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return &DB{p}, nil
}

func (db *DB) Close()                         { db.Pool.Close() }
func (db *DB) Ping(ctx context.Context) error { return db.Pool.Ping(ctx) }

func (db *DB) Migrate(ctx context.Context) error {
	sqlBytes, err := schema.ReadFile("schema.sql")
	if err != nil {
		return err
	}
	_, err = db.Exec(ctx, string(sqlBytes))
	return err
}

// Save stores a whole report in one transaction.
func (db *DB) Save(ctx context.Context, r *experiments.Report) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var runID int64
	err = tx.QueryRow(ctx, `
		INSERT INTO runs(started_at, ended_at, sessions, window_rounds, decks, target, min_depth, seed, strategies)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING id
	`, r.StartTime, r.EndTime, r.Config.Sessions, r.Config.Window, r.Config.Decks, r.Config.Target,
		r.Config.MinDepth, strconv.FormatUint(r.Config.Seed, 10), r.Order).Scan(&runID)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	var seriesRows [][]any
	for _, name := range r.Order {
		for _, p := range r.Series[name] {
			seriesRows = append(seriesRows, []any{runID, p.Strategy, p.Session, p.Rounds, p.Wins, p.Losses, p.Draws, p.WinRate})
		}
	}
	_, err = tx.CopyFrom(ctx, pgx.Identifier{"strategy_series"},
		[]string{"run_id", "strategy", "session", "rounds", "wins", "losses", "draws", "win_rate"},
		pgx.CopyFromRows(seriesRows))
	if err != nil {
		return fmt.Errorf("failed to copy strategy series: %w", err)
	}

	sessionRows := make([][]any, len(r.Sessions))
	for i, s := range r.Sessions {
		sessionRows[i] = []any{runID, s.Strategy, s.Session, s.Rounds, s.Wins, s.Losses, s.Draws,
			s.CardsDealt, s.RunningCount, s.TrueCount, s.Duration.Microseconds()}
	}
	_, err = tx.CopyFrom(ctx, pgx.Identifier{"session_records"},
		[]string{"run_id", "strategy", "session", "rounds", "wins", "losses", "draws", "cards_dealt", "running_count", "true_count", "duration_us"},
		pgx.CopyFromRows(sessionRows))
	if err != nil {
		return fmt.Errorf("failed to copy session records: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit run: %w", err)
	}
	log.Info().Int64("run", runID).Msg("stored results in database")
	return nil
}

// LatestReport rebuilds the most recent run's report. Session records are not loaded.
func (db *DB) LatestReport(ctx context.Context) (*experiments.Report, error) {
	r := &experiments.Report{Series: map[string][]metrics.SeriesRecord{}}

	var runID int64
	var seed string
	err := db.QueryRow(ctx, `
		SELECT id, started_at, ended_at, sessions, window_rounds, decks, target, min_depth, seed, strategies
		  FROM runs
		 ORDER BY id DESC
		 LIMIT 1
	`).Scan(&runID, &r.StartTime, &r.EndTime, &r.Config.Sessions, &r.Config.Window, &r.Config.Decks,
		&r.Config.Target, &r.Config.MinDepth, &seed, &r.Order)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoRuns
		}
		return nil, err
	}
	if r.Config.Seed, err = strconv.ParseUint(seed, 10, 64); err != nil {
		return nil, fmt.Errorf("run %d has a malformed seed: %w", runID, err)
	}
	r.Config.Strategies = r.Order

	rows, err := db.Query(ctx, `
		SELECT strategy, session, rounds, wins, losses, draws, win_rate
		  FROM strategy_series
		 WHERE run_id = $1
		 ORDER BY strategy, session
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var p metrics.SeriesRecord
		if err := rows.Scan(&p.Strategy, &p.Session, &p.Rounds, &p.Wins, &p.Losses, &p.Draws, &p.WinRate); err != nil {
			return nil, err
		}
		r.Series[p.Strategy] = append(r.Series[p.Strategy], p)
	}
	return r, rows.Err()
}

// Prune deletes runs older than the cutoff and reports how many went.
func (db *DB) Prune(ctx context.Context, before time.Time) (int64, error) {
	tag, err := db.Exec(ctx, `DELETE FROM runs WHERE created_at < $1`, before)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
