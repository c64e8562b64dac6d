package experiments

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"time"

	"blackjack/counting"
	"blackjack/engine"
	"blackjack/experiments/metrics"
	"blackjack/player"
	"blackjack/utils"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultSessions = 1000 // Per strategy
	DefaultWindow   = 10   // Trailing rounds scored per session
)

type Config struct {
	Sessions   int      `json:"sessions"`
	Window     int      `json:"window"`
	Decks      int      `json:"decks"`
	Target     int      `json:"target"`
	MinDepth   int      `json:"minDepth"`
	Workers    int      `json:"workers"`    // Strategies simulated at once
	Seed       uint64   `json:"seed"`       // 0 picks a seed from the clock
	Strategies []string `json:"strategies"` // Empty runs every strategy in the table
}

// Sink receives the finished report of a comparison run.
type Sink interface {
	Save(ctx context.Context, report *Report) error
}

// Comparison plays many independent shoe sessions per counting strategy.
type Comparison struct {
	table counting.Table
	cfg   Config
	sinks []Sink
}

func NewComparison(table counting.Table, cfg Config, sinks ...Sink) *Comparison {
	if cfg.Sessions <= 0 {
		cfg.Sessions = DefaultSessions
	}
	if cfg.Window <= 0 {
		cfg.Window = DefaultWindow
	}
	if cfg.Decks <= 0 {
		cfg.Decks = engine.DefaultDecks
	}
	if cfg.Target <= 0 {
		cfg.Target = player.DefaultTarget
	}
	if cfg.MinDepth <= 0 {
		cfg.MinDepth = engine.MinShoeDepth
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	if len(cfg.Strategies) == 0 {
		cfg.Strategies = table.Names()
	}

	return &Comparison{table: table, cfg: cfg, sinks: sinks}
}

func (c *Comparison) Config() Config {
	return c.cfg
}

// Run simulates every strategy and hands the report to each sink.
func (c *Comparison) Run(ctx context.Context) (*Report, error) {
	strategies := make([]counting.Strategy, len(c.cfg.Strategies))
	for i, name := range c.cfg.Strategies {
		s, err := c.table.Lookup(name)
		if err != nil {
			return nil, err
		}
		strategies[i] = s
	}

	// Shuffle the play order and derive one seed per strategy
	master := rand.New(rand.NewSource(c.cfg.Seed))
	master.Shuffle(len(strategies), func(i, j int) {
		strategies[i], strategies[j] = strategies[j], strategies[i]
	})
	seeds := make([]uint64, len(strategies))
	for i := range seeds {
		seeds[i] = master.Uint64()
	}

	report := &Report{
		Config:    c.cfg,
		StartTime: time.Now().UTC(),
		Series:    make(map[string][]metrics.SeriesRecord, len(strategies)),
	}
	for _, s := range strategies {
		report.Order = append(report.Order, s.Name)
	}

	log.Info().Msgf("starting comparison of %d strategies with %d sessions each...", len(strategies), c.cfg.Sessions)

	series := make([][]metrics.SeriesRecord, len(strategies))
	sessions := make([][]metrics.SessionRecord, len(strategies))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.cfg.Workers)
	for i, s := range strategies {
		i, s := i, s
		g.Go(func() error {
			var err error
			series[i], sessions[i], err = c.runStrategy(gctx, s, seeds[i])
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, s := range strategies {
		report.Series[s.Name] = series[i]
		report.Sessions = append(report.Sessions, sessions[i]...)
	}
	report.EndTime = time.Now().UTC()

	log.Info().Msgf("completed comparison in %s", report.EndTime.Sub(report.StartTime))

	for _, sink := range c.sinks {
		if err := sink.Save(ctx, report); err != nil {
			return report, fmt.Errorf("failed to save report: %w", err)
		}
	}
	return report, nil
}

func (c *Comparison) runStrategy(ctx context.Context, s counting.Strategy, seed uint64) ([]metrics.SeriesRecord, []metrics.SessionRecord, error) {
	log.Info().Msgf("starting %s strategy...", s.Name)

	session := engine.NewSession(
		engine.WithDecks(c.cfg.Decks),
		engine.WithTarget(c.cfg.Target),
		engine.WithMinDepth(c.cfg.MinDepth),
		engine.WithRand(rand.New(rand.NewSource(seed))),
		engine.WithMetrics(),
	)

	series := make([]metrics.SeriesRecord, 0, c.cfg.Sessions)
	records := make([]metrics.SessionRecord, 0, c.cfg.Sessions)
	scored, good := 0, 0
	for i := 1; i <= c.cfg.Sessions; i++ {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		result, err := session.Run(s)
		if err != nil {
			return nil, nil, fmt.Errorf("%s session %d: %w", s.Name, i, err)
		}

		wins, losses, draws := engine.Tally(utils.Last(result.Outcomes, c.cfg.Window))
		scored += wins + losses + draws
		good += wins + draws
		series = append(series, metrics.SeriesRecord{
			Strategy: s.Name,
			Session:  i,
			Rounds:   wins + losses + draws,
			Wins:     wins,
			Losses:   losses,
			Draws:    draws,
			WinRate:  winRate(good, scored),
		})
		records = append(records, metrics.SessionRecord{
			Strategy:      s.Name,
			Session:       i,
			RunningCount:  result.Count.Running,
			TrueCount:     result.Count.True,
			SessionMetric: result.Metric,
		})
	}

	log.Info().Msgf("completed %s strategy at %.4f%%", s.Name, series[len(series)-1].WinRate)
	return series, records, nil
}

// winRate is the percentage of good rounds, rounded to four decimals.
func winRate(good, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(good)/float64(total)*100*1e4) / 1e4
}
