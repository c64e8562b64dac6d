package engine

import (
	"fmt"
	"time"

	"blackjack/counting"
	"blackjack/experiments/metrics"
	"blackjack/game"
	"blackjack/player"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(s *Session)

// Session plays rounds from one shoe until it runs low.
type Session struct {
	decks    int
	target   int
	minDepth int
	rng      *rand.Rand
	metrics  metrics.Collector
}

// SessionResult holds the ordered round outcomes of one shoe and the count it ended on.
type SessionResult struct {
	Outcomes []RoundOutcome
	Rounds   int
	Count    counting.State
	Metric   metrics.SessionMetric
}

func WithDecks(decks int) Option {
	return func(s *Session) {
		if decks > 0 {
			s.decks = decks
		}
	}
}

func WithTarget(target int) Option {
	return func(s *Session) {
		if target > 0 {
			s.target = target
		}
	}
}

func WithMinDepth(depth int) Option {
	return func(s *Session) {
		if depth > 0 {
			s.minDepth = depth
		}
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(s *Session) {
		if rng != nil {
			s.rng = rng
		}
	}
}

func WithMetrics() Option {
	return func(s *Session) {
		s.metrics = metrics.NewCollector()
	}
}

func NewSession(options ...Option) *Session {
	s := &Session{ // Default values
		decks:    DefaultDecks,
		target:   player.DefaultTarget,
		minDepth: MinShoeDepth,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	if s.minDepth < 4 {
		panic("minimum shoe depth must cover the deal")
	}
	return s
}

// Run shuffles a fresh shoe and plays it out with strategy.
func (s *Session) Run(strategy counting.Strategy) (SessionResult, error) {
	return s.RunShoe(game.NewShoe(s.decks, s.rng), strategy)
}

// RunShoe plays rounds from shoe while at least the minimum depth remains.
// The count starts at zero and is carried from each round into the next.
func (s *Session) RunShoe(shoe *game.Shoe, strategy counting.Strategy) (SessionResult, error) {
	result := SessionResult{}
	count := counting.State{}

	s.metrics.Start(shoe.Remaining())
	for shoe.Remaining() >= s.minDepth {
		outcome, err := PlayRound(shoe, count, strategy, s.target)
		if err != nil {
			return result, fmt.Errorf("round %d: %w", result.Rounds+1, err)
		}
		result.Outcomes = append(result.Outcomes, outcome)
		result.Rounds++
		count = outcome.Count
		s.metrics.AddRound(outcome.Counts())
	}
	result.Count = count
	result.Metric = s.metrics.Complete(shoe.Remaining())

	log.Debug().
		Str("strategy", strategy.Name).
		Int("rounds", result.Rounds).
		Float64("running_count", count.Running).
		Int("cards_left", shoe.Remaining()).
		Msg("session complete")
	return result, nil
}

// Totals sums the outcomes of the session.
func (r SessionResult) Totals() (wins, losses, draws int) {
	return Tally(r.Outcomes)
}

// Tally sums a run of outcomes.
func Tally(outcomes []RoundOutcome) (wins, losses, draws int) {
	for _, o := range outcomes {
		w, l, d := o.Counts()
		wins += w
		losses += l
		draws += d
	}
	return wins, losses, draws
}
