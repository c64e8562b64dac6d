package experiments

import (
	"context"
	"sort"
	"time"

	"blackjack/experiments/metrics"

	"github.com/rs/zerolog/log"
)

// Report is the outcome of a comparison run.
type Report struct {
	Config    Config                            `json:"config"`
	Order     []string                          `json:"order"` // Strategies in play order
	StartTime time.Time                         `json:"startTime"`
	EndTime   time.Time                         `json:"endTime"`
	Series    map[string][]metrics.SeriesRecord `json:"series"`
	Sessions  []metrics.SessionRecord           `json:"-"`
}

// Standing is a strategy's final cumulative win rate.
type Standing struct {
	Strategy string  `json:"strategy"`
	WinRate  float64 `json:"winRate"`
	Sessions int     `json:"sessions"`
}

// Standings ranks the strategies by final win rate, best first.
func (r *Report) Standings() []Standing {
	standings := make([]Standing, 0, len(r.Series))
	for name, series := range r.Series {
		s := Standing{Strategy: name, Sessions: len(series)}
		if len(series) > 0 {
			s.WinRate = series[len(series)-1].WinRate
		}
		standings = append(standings, s)
	}
	sort.Slice(standings, func(i, j int) bool {
		if standings[i].WinRate != standings[j].WinRate {
			return standings[i].WinRate > standings[j].WinRate
		}
		return standings[i].Strategy < standings[j].Strategy
	})
	return standings
}

// SeriesFor returns the cumulative win-rate series of one strategy.
func (r *Report) SeriesFor(strategy string) ([]metrics.SeriesRecord, bool) {
	series, ok := r.Series[strategy]
	return series, ok
}

func (r *Report) Strategies() []string {
	return r.Order
}

// Setup summarizes the run for result files.
func (r *Report) Setup() metrics.Setup {
	return metrics.Setup{
		Sessions:   r.Config.Sessions,
		Window:     r.Config.Window,
		Decks:      r.Config.Decks,
		Target:     r.Config.Target,
		MinDepth:   r.Config.MinDepth,
		Workers:    r.Config.Workers,
		Seed:       r.Config.Seed,
		Strategies: r.Order,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		Duration:   r.EndTime.Sub(r.StartTime),
	}
}

// FileSink writes each report into a fresh timestamped folder under Root.
type FileSink struct {
	Root string
}

func (f FileSink) Save(_ context.Context, r *Report) error {
	writer, err := metrics.NewWriter(f.Root)
	if err != nil {
		return err
	}
	if err := writer.WriteSetup(r.Setup()); err != nil {
		return err
	}

	var series []metrics.SeriesRecord
	for _, name := range r.Order {
		series = append(series, r.Series[name]...)
	}
	if err := writer.WriteSeries(series); err != nil {
		return err
	}
	if err := writer.WriteSessions(r.Sessions); err != nil {
		return err
	}

	log.Info().Msgf("stored results in %s", writer.Dir())
	return nil
}
