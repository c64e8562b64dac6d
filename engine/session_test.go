package engine

import (
	"testing"

	"blackjack/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestSessionRunShoe(t *testing.T) {
	t.Run("threads the count across rounds", func(t *testing.T) {
		hiLo := mustStrategy(t, "Hi-Lo")
		shoe := game.NewStackedShoe(
			game.Ace, game.King, game.Ten, game.Nine, // natural win
			game.Ace, game.King, game.Ace, game.Queen, // both natural
		)
		session := NewSession(WithMinDepth(4), WithMetrics())

		got, err := session.RunShoe(shoe, hiLo)
		require.NoError(t, err)
		require.Equal(t, 2, got.Rounds)
		require.Equal(t, Win, got.Outcomes[0].Result)
		require.Equal(t, Draw, got.Outcomes[1].Result)
		require.Equal(t, -3.0, got.Outcomes[0].Count.Running)
		require.Equal(t, -7.0, got.Count.Running)
		require.Equal(t, 2, got.Metric.Rounds)
		require.Equal(t, 8, got.Metric.CardsDealt)
	})

	t.Run("stops before the shoe runs low", func(t *testing.T) {
		hiLo := mustStrategy(t, "Hi-Lo")
		shoe := game.NewStackedShoe(game.Ace, game.King, game.Ten, game.Nine, game.Two, game.Three)
		session := NewSession(WithMinDepth(6))

		got, err := session.RunShoe(shoe, hiLo)
		require.NoError(t, err)
		require.Equal(t, 1, got.Rounds)
		require.Equal(t, 2, shoe.Remaining())
	})

	t.Run("panics when the minimum depth cannot cover a deal", func(t *testing.T) {
		require.Panics(t, func() {
			NewSession(WithMinDepth(3))
		})
	})
}

func TestSessionRun(t *testing.T) {
	t.Run("never exhausts a shoe", func(t *testing.T) {
		for _, name := range []string{"Hi-Lo", "Halves", "Double It", "No Strategy"} {
			strategy := mustStrategy(t, name)
			for seed := uint64(1); seed <= 50; seed++ {
				session := NewSession(WithRand(rand.New(rand.NewSource(seed))), WithMetrics())

				got, err := session.Run(strategy)
				require.NoError(t, err, "strategy=%s seed=%d", name, seed)
				require.Equal(t, got.Rounds, len(got.Outcomes))
				require.Greater(t, got.Rounds, 20)

				wins, losses, draws := got.Totals()
				require.Equal(t, got.Rounds, wins+losses+draws)
				require.Equal(t, wins, got.Metric.Wins)
				require.LessOrEqual(t, got.Metric.CardsDealt, DefaultDecks*game.DeckSize)
				require.Greater(t, got.Metric.CardsDealt, DefaultDecks*game.DeckSize-MinShoeDepth)
			}
		}
	})

	t.Run("same seed replays the same session", func(t *testing.T) {
		hiLo := mustStrategy(t, "Hi-Lo")
		a, err := NewSession(WithRand(rand.New(rand.NewSource(7)))).Run(hiLo)
		require.NoError(t, err)
		b, err := NewSession(WithRand(rand.New(rand.NewSource(7)))).Run(hiLo)
		require.NoError(t, err)
		require.Equal(t, a.Outcomes, b.Outcomes)
	})

	t.Run("house edge persists without counting", func(t *testing.T) {
		if testing.Short() {
			t.Skip("long simulation")
		}
		none := mustStrategy(t, "No Strategy")
		rng := rand.New(rand.NewSource(2021))

		rounds, wins, draws := 0, 0, 0
		for i := 0; i < 1000; i++ {
			got, err := NewSession(WithRand(rng)).Run(none)
			require.NoError(t, err)
			w, _, d := got.Totals()
			rounds += got.Rounds
			wins += w
			draws += d
		}

		winRate := float64(wins) / float64(rounds)
		require.Less(t, winRate, 0.5, "Player should win less than half the rounds")
		require.InDelta(t, 0.5, float64(wins+draws)/float64(rounds), 0.1)
	})
}
