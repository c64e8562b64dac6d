package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestNewShoe(t *testing.T) {
	t.Run("holds four of each rank per deck", func(t *testing.T) {
		shoe := NewShoe(6, rand.New(rand.NewSource(1)))
		require.Equal(t, 6*DeckSize, shoe.Remaining())

		counts := map[Rank]int{}
		for _, c := range shoe.cards {
			counts[c]++
		}
		require.Len(t, counts, NumRanks)
		for r, n := range counts {
			require.Equal(t, 4*6, n, "rank %s", r)
		}
	})

	t.Run("same seed gives the same order", func(t *testing.T) {
		a := NewShoe(2, rand.New(rand.NewSource(42)))
		b := NewShoe(2, rand.New(rand.NewSource(42)))
		require.Equal(t, a.cards, b.cards)
	})

	t.Run("panics without decks", func(t *testing.T) {
		require.Panics(t, func() {
			NewShoe(0, rand.New(rand.NewSource(1)))
		})
	})
}

func TestShoeDraw(t *testing.T) {
	t.Run("draws from the top in order", func(t *testing.T) {
		shoe := NewStackedShoe(Ace, King, Ten, Nine)

		got, err := shoe.Draw(2)
		require.NoError(t, err)
		require.Equal(t, []Rank{Ace, King}, got)
		require.Equal(t, 2, shoe.Remaining())

		next, err := shoe.Next()
		require.NoError(t, err)
		require.Equal(t, Ten, next)
		require.Equal(t, 1, shoe.Remaining())
	})

	t.Run("fails when exhausted", func(t *testing.T) {
		shoe := NewStackedShoe(Two)

		_, err := shoe.Draw(2)
		require.ErrorIs(t, err, ErrExhaustedShoe)
		require.Equal(t, 1, shoe.Remaining(), "Failed draw should not consume cards")

		_, err = shoe.Next()
		require.NoError(t, err)
		_, err = shoe.Next()
		require.ErrorIs(t, err, ErrExhaustedShoe)
	})
}

func TestParseRank(t *testing.T) {
	for _, r := range Ranks() {
		got, err := ParseRank(r.String())
		require.NoError(t, err)
		require.Equal(t, r, got)
	}

	_, err := ParseRank("1")
	require.Error(t, err)
}
